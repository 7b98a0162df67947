package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/reviewgym/reviewgym/internal/catalog"
	"github.com/reviewgym/reviewgym/internal/router"
	"github.com/reviewgym/reviewgym/internal/screen"
	"github.com/reviewgym/reviewgym/internal/store"
	"github.com/reviewgym/reviewgym/internal/ui/layout"
	"github.com/reviewgym/reviewgym/internal/ui/theme"
)

type historyLoadedMsg struct {
	Rounds []store.RoundRecord
	Err    error
}

// HistoryScreen lists sealed rounds, newest last, with expandable
// scorecard details.
type HistoryScreen struct {
	eventRepo store.EventRepo
	rounds    []store.RoundRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rounds, err := s.eventRepo.RecentRounds(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Rounds: rounds}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rounds = msg.Rounds
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rounds) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Start a drill!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.rounds {
		dateStr := rec.Timestamp.Format("Jan 02, 2006")

		var f1 float64
		if rec.Scorecard != nil {
			f1 = rec.Scorecard.F1
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  round %d  level %d  f1 %.0f%%",
			prefix, dateStr, rec.RoundIndex+1, rec.Difficulty, f1*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderRoundDetail(rec, width))
		}
	}

	return b.String()
}

func renderRoundDetail(rec store.RoundRecord, width int) string {
	var b strings.Builder

	card := rec.Scorecard
	if card != nil {
		detail := fmt.Sprintf("    found %d  missed %d  false alarms %d  precision %.0f%%  recall %.0f%%",
			card.TP(), card.FN(), card.FP(), card.Precision*100, card.Recall*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
		b.WriteString("\n")
	}

	if len(rec.CategoryTags) > 0 {
		labels := make([]string, len(rec.CategoryTags))
		for i, c := range rec.CategoryTags {
			labels[i] = catalog.Label(c)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).
				Render("    "+strings.Join(labels, ", "))))
		b.WriteString("\n")
	}

	if rec.Reflection != "" {
		refl := rec.Reflection
		if len(refl) > 100 {
			refl = refl[:100] + "…"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    “"+refl+"”")))
		b.WriteString("\n")
	}

	return b.String()
}
