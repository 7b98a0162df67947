package stats

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/reviewgym/reviewgym/internal/catalog"
	"github.com/reviewgym/reviewgym/internal/coverage"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/router"
	"github.com/reviewgym/reviewgym/internal/screen"
	"github.com/reviewgym/reviewgym/internal/store"
	"github.com/reviewgym/reviewgym/internal/ui/components"
	"github.com/reviewgym/reviewgym/internal/ui/layout"
	"github.com/reviewgym/reviewgym/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats      []coverage.CategoryStat
	Trajectory []int // difficulty per round, oldest first
	Err        error
}

// StatsScreen shows category coverage and the difficulty trajectory,
// rebuilt from the round event log.
type StatsScreen struct {
	eventRepo  store.EventRepo
	stats      []coverage.CategoryStat
	trajectory []int
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.RecentRounds(context.Background(), 0)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		rounds := make([]history.Round, len(records))
		trajectory := make([]int, len(records))
		for i, rec := range records {
			rounds[i] = rec.Round()
			trajectory[i] = rec.Difficulty
		}

		tracker := coverage.New(coverage.DefaultConfig())
		snapshot := tracker.Snapshot(history.Seed(rounds))

		return statsLoadedMsg{Stats: snapshot, Trajectory: trajectory}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.trajectory = msg.Trajectory
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Crunching the numbers...")
	}
	if len(s.trajectory) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Coverage shows up after your first drill.")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Category coverage"))
	b.WriteString("\n\n")

	barWidth := min(width-10, 60)
	labelWidth := 0
	for _, st := range s.stats {
		if l := len(catalog.Label(st.Category)); l > labelWidth {
			labelWidth = l
		}
	}

	for _, st := range s.stats {
		label := fmt.Sprintf("%-*s", labelWidth, catalog.Label(st.Category))

		if st.Status == coverage.StatusUntested {
			line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) +
				"  " + theme.Hint.Render("untested")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
			continue
		}

		bar := components.ProgressBar{
			Label:       label,
			Percent:     st.MeanRecall,
			ShowPercent: true,
			Width:       barWidth,
			FillColor:   statusColor(st.Status),
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("Difficulty trajectory"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTrajectory(s.trajectory, width)))
	b.WriteString("\n")

	return b.String()
}

func statusColor(status coverage.Status) color.Color {
	switch status {
	case coverage.StatusWeak:
		return theme.Error
	case coverage.StatusStrong:
		return theme.Success
	default:
		return theme.Secondary
	}
}

// renderTrajectory draws the per-round difficulty as a compact sparkline.
func renderTrajectory(levels []int, width int) string {
	marks := []string{"▁", "▂", "▄", "▆", "█"}

	shown := levels
	maxPoints := width - 12
	if maxPoints > 0 && len(shown) > maxPoints {
		shown = shown[len(shown)-maxPoints:]
	}

	var b strings.Builder
	for _, lvl := range shown {
		idx := lvl - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(marks) {
			idx = len(marks) - 1
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(marks[idx]))
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  now level %d", levels[len(levels)-1])))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
