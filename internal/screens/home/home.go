package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/reviewgym/reviewgym/internal/router"
	"github.com/reviewgym/reviewgym/internal/screen"
	"github.com/reviewgym/reviewgym/internal/screens/drill"
	"github.com/reviewgym/reviewgym/internal/screens/history"
	"github.com/reviewgym/reviewgym/internal/screens/stats"
	"github.com/reviewgym/reviewgym/internal/ui/components"
	"github.com/reviewgym/reviewgym/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	level       int
	roundsTotal int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Level and round counts come from the
// latest snapshot and the event log.
func New(deps drill.Deps) *HomeScreen {
	level := 1
	roundsTotal := 0
	ctx := context.Background()

	if deps.Snapshots != nil {
		if snap, _ := deps.Snapshots.Latest(ctx); snap != nil && snap.Data.Difficulty > 0 {
			level = snap.Data.Difficulty
		}
	}
	if deps.Events != nil {
		if n, err := deps.Events.RoundCount(ctx); err == nil {
			roundsTotal = n
		}
	}

	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(deps)}
			}
		}},
		{Label: "ROUND HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: "COVERAGE STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.Events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		level:       level,
		roundsTotal: roundsTotal,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Level reports the calibrated difficulty for the header.
func (h *HomeScreen) Level() int { return h.level }

// RoundsTotal reports the sealed round count for the header.
func (h *HomeScreen) RoundsTotal() int { return h.roundsTotal }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("ReviewGym"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Find the planted defects. Learn what you keep missing."))

	statsLine := fmt.Sprintf("Level %d   •   %d rounds sealed", h.level, h.roundsTotal)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(statsLine))

	menu := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Render(h.menu.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
