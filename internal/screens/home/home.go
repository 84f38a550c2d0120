package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hosthans/ids-wasteseparation/internal/feedback"
	"github.com/hosthans/ids-wasteseparation/internal/router"
	"github.com/hosthans/ids-wasteseparation/internal/screens/categories"
	"github.com/hosthans/ids-wasteseparation/internal/screens/history"
	"github.com/hosthans/ids-wasteseparation/internal/screens/intro"
	"github.com/hosthans/ids-wasteseparation/internal/screens/training"
	"github.com/hosthans/ids-wasteseparation/internal/store"
	"github.com/hosthans/ids-wasteseparation/internal/ui/components"
	"github.com/hosthans/ids-wasteseparation/internal/ui/theme"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	itemCount int
	attempts  store.AttemptStats
	haveStats bool
}

var _ router.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen wired to the catalog and the shared services.
func New(catalog waste.Catalog, eventRepo store.EventRepo, composer *feedback.Composer) *HomeScreen {
	var stats store.AttemptStats
	haveStats := false
	if eventRepo != nil {
		if s, err := eventRepo.AttemptTotals(context.Background()); err == nil {
			stats = s
			haveStats = true
		}
	}

	items := []components.MenuItem{
		{Label: "Training starten", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: training.New(catalog, eventRepo, composer)}
			}
		}},
		{Label: "Einführung", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: intro.New()}
			}
		}},
		{Label: "Kategorien", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: categories.New(catalog)}
			}
		}},
		{Label: "Verlauf", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "Beenden", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		itemCount: len(catalog),
		attempts:  stats,
		haveStats: haveStats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("♻  Recycling Trainer"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Lerne, Müll richtig zu trennen"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("%d Gegenstände im Katalog", h.itemCount)
	if h.haveStats && h.attempts.Total > 0 {
		pct := float64(h.attempts.Correct) / float64(h.attempts.Total) * 100
		statsLine += fmt.Sprintf("  ·  %d Antworten, %.0f%% richtig", h.attempts.Total, pct)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Start"
}
