package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hosthans/ids-wasteseparation/internal/feedback"
	"github.com/hosthans/ids-wasteseparation/internal/router"
	"github.com/hosthans/ids-wasteseparation/internal/screens/home"
	"github.com/hosthans/ids-wasteseparation/internal/screens/training"
	"github.com/hosthans/ids-wasteseparation/internal/store"
	"github.com/hosthans/ids-wasteseparation/internal/ui/layout"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Catalog   waste.Catalog
	EventRepo store.EventRepo
	Composer  *feedback.Composer
}

// AppModel is the root Bubble Tea model. It owns session presentation;
// individual screens own their slice of session state.
type AppModel struct {
	router *router.Router
	score  int
	total  int
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(home.New(opts.Catalog, opts.EventRepo, opts.Composer)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case training.ScoreChangedMsg:
		m.score = msg.Score
		m.total = msg.Total
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.score, m.total, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(router.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Zurück"},
				{Key: "Ctrl+C", Description: "Beenden"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigieren"},
				{Key: "Enter", Description: "Auswählen"},
				{Key: "Ctrl+C", Description: "Beenden"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
