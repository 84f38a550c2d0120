package categories

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hosthans/ids-wasteseparation/internal/router"
	"github.com/hosthans/ids-wasteseparation/internal/ui/layout"
	"github.com/hosthans/ids-wasteseparation/internal/ui/theme"
	"github.com/hosthans/ids-wasteseparation/internal/waste"
)

// CategoriesScreen lists every bin with the catalog items that belong in it.
type CategoriesScreen struct {
	bins   []string
	byBin  map[string][]string
	cursor int
}

var _ router.Screen = (*CategoriesScreen)(nil)
var _ router.KeyHintProvider = (*CategoriesScreen)(nil)

// New creates a CategoriesScreen from the catalog.
func New(catalog waste.Catalog) *CategoriesScreen {
	byBin := waste.Categorize(catalog)
	return &CategoriesScreen{
		bins:  waste.BinLabels(byBin),
		byBin: byBin,
	}
}

func (s *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (s *CategoriesScreen) Title() string {
	return "Kategorien"
}

func (s *CategoriesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigieren"},
		{Key: "Esc", Description: "Zurück"},
	}
}

func (s *CategoriesScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.bins)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s *CategoriesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Welcher Müll gehört in welche Tonne?"))
	b.WriteString("\n\n")

	for i, bin := range s.bins {
		prefix := "  "
		binStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		if i == s.cursor {
			prefix = "▸ "
			binStyle = binStyle.Foreground(theme.Primary)
		}

		items := s.byBin[bin]
		line := fmt.Sprintf("%s%s (%d)", prefix, bin, len(items))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, binStyle.Render(line)))
		b.WriteString("\n")

		if i == s.cursor {
			detail := "    (keine Gegenstände im Katalog)"
			if len(items) > 0 {
				detail = "    " + strings.Join(items, ", ")
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
