package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hosthans/ids-wasteseparation/internal/ui/theme"
)

// Checklist is a multi-select list: the learner toggles any subset of
// options before submitting.
type Checklist struct {
	Options []string
	Checked map[int]bool
	Cursor  int
}

// NewChecklist creates a checklist with nothing selected.
func NewChecklist(options []string) Checklist {
	return Checklist{
		Options: options,
		Checked: make(map[int]bool),
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling. Submission (enter) is left to
// the parent screen so it can reject empty selections.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		c.Checked[c.Cursor] = !c.Checked[c.Cursor]
	}

	return c, nil
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, opt := range c.Options {
		box := "[ ]"
		if c.Checked[i] {
			box = "[x]"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, opt)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case c.Checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Success).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// Selection returns the checked option indices in display order.
func (c Checklist) Selection() []int {
	var selected []int
	for i := range c.Options {
		if c.Checked[i] {
			selected = append(selected, i)
		}
	}
	return selected
}

// Clear unchecks everything and resets the cursor.
func (c *Checklist) Clear() {
	c.Checked = make(map[int]bool)
	c.Cursor = 0
}
