package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/reviewgym/reviewgym/internal/catalog"
	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}

	switch s.mode {
	case modeLoading:
		return renderLoading(width)
	case modeQuitConfirm:
		return renderQuitConfirm(width)
	case modeReview:
		return s.renderReview(width, height)
	case modeScorecard:
		return s.renderScorecard(width)
	case modeReflect:
		return s.renderReflect(width)
	case modeSealed:
		return s.renderSealed(width)
	}
	return ""
}

// renderReview shows the code under review plus the finding entry form.
func (s *DrillScreen) renderReview(width, height int) string {
	if s.view == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.view.Title))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  level %d", s.view.Language, s.view.Difficulty))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n")

	// Code listing, truncated to leave room for the form.
	reserved := 7 + len(s.findings)
	b.WriteString(renderListing(s.view.PromptText, width, height-reserved))
	b.WriteString("\n")

	// Findings recorded so far.
	if len(s.findings) > 0 {
		for i, f := range s.findings {
			line := fmt.Sprintf("  %d. [%s/%s] %s — %s", i+1, f.Category, f.Severity, f.Location, f.Description)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(truncate(line, width-2)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(theme.Hint.Render("  No findings yet. Clean code is a valid answer too."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + s.input.View())
	b.WriteString("\n")

	if s.inputErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.inputErr))
	} else {
		b.WriteString(theme.Hint.Render("  Empty line submits the attempt."))
	}

	return b.String()
}

// renderListing renders the code under review inside a bordered block.
func renderListing(text string, width, maxLines int) string {
	lines := strings.Split(text, "\n")
	if maxLines < 4 {
		maxLines = 4
	}
	if len(lines) > maxLines {
		hidden := len(lines) - maxLines
		lines = lines[:maxLines]
		lines = append(lines, fmt.Sprintf("… (+%d more lines)", hidden))
	}
	for i, l := range lines {
		lines[i] = truncate(l, width-8)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(max(width-6, 10)).
		MarginLeft(2).
		Render(strings.Join(lines, "\n"))
}

// renderScorecard shows the comparison result for the round.
func (s *DrillScreen) renderScorecard(width int) string {
	card := s.card
	if card == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Scorecard"))
	b.WriteString("\n\n")

	metrics := fmt.Sprintf("precision %.0f%%   recall %.0f%%   f1 %.0f%%",
		card.Precision*100, card.Recall*100, card.F1*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(metrics))
	b.WriteString("\n\n")

	writeGroup := func(label string, style lipgloss.Style, lines []string) {
		if len(lines) == 0 {
			return
		}
		b.WriteString(style.Render("  " + label))
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(truncate("    "+l, width-2)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var found []string
	for _, pair := range card.TruePositives {
		found = append(found, describeFinding(pair.Truth))
	}
	var missed []string
	for _, f := range card.FalseNegatives {
		missed = append(missed, describeFinding(f))
	}
	var alarms []string
	for _, f := range card.FalsePositives {
		alarms = append(alarms, describeFinding(f))
	}

	writeGroup(fmt.Sprintf("Found (%d)", card.TP()), theme.Found, found)
	writeGroup(fmt.Sprintf("Missed (%d)", card.FN()), theme.Missed, missed)
	writeGroup(fmt.Sprintf("False alarms (%d)", card.FP()), theme.FalseAlarm, alarms)

	if len(card.TrapHits) > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf(
			"  %d of the false alarms were planted decoys.", len(card.TrapHits))))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to reflect on the round..."))

	return b.String()
}

func describeFinding(f finding.Finding) string {
	return fmt.Sprintf("[%s/%s] %s — %s", catalog.Label(f.Category), f.Severity, f.Location, f.Description)
}

func (s *DrillScreen) renderReflect(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Reflect"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("What did this round teach you about how you review?"))
	b.WriteString("\n\n")
	b.WriteString("  " + s.input.View())
	b.WriteString("\n\n")

	if s.reflectErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.reflectErr))
	}

	return b.String()
}

func (s *DrillScreen) renderSealed(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).Bold(true).
		Render(fmt.Sprintf("Round %d sealed", s.sealed.Index+1)))
	b.WriteString("\n\n")

	switch {
	case s.levelTo > s.levelFrom:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("Difficulty up: level %d → %d", s.levelFrom, s.levelTo)))
		b.WriteString("\n\n")
	case s.levelTo < s.levelFrom:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(fmt.Sprintf("Stepping back: level %d → %d", s.levelFrom, s.levelTo)))
		b.WriteString("\n\n")
	}

	if s.advice != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Secondary).Bold(true).
			Render(s.advice.Headline))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(s.advice.Detail)))
		b.WriteString("\n\n")
	}

	if s.llmNote != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("Coach: "+s.llmNote.Headline))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.TextDim).Render(s.llmNote.Detail)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter for the next challenge, Esc to end the session."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render("End the session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Sealed rounds are already saved. The current round is discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing the next challenge...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func truncate(s string, width int) string {
	if width <= 1 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
