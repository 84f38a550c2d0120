package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestChecklistToggle(t *testing.T) {
	c := NewChecklist([]string{"Plastikmüll", "Papiermüll", "Biomüll"})

	c, _ = c.Update(tea.KeyPressMsg{Code: ' '})
	if !c.Checked[0] {
		t.Fatal("expected first option checked")
	}

	c, _ = c.Update(tea.KeyPressMsg{Code: ' '})
	if c.Checked[0] {
		t.Fatal("expected toggle back off")
	}
}

func TestChecklistNavigationBounds(t *testing.T) {
	c := NewChecklist([]string{"a", "b"})

	c, _ = c.Update(keyPress('k'))
	if c.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 at top", c.Cursor)
	}

	c, _ = c.Update(keyPress('j'))
	c, _ = c.Update(keyPress('j'))
	if c.Cursor != 1 {
		t.Errorf("cursor = %d, want 1 at bottom", c.Cursor)
	}
}

func TestChecklistSelection(t *testing.T) {
	c := NewChecklist([]string{"a", "b", "c"})

	c, _ = c.Update(tea.KeyPressMsg{Code: ' '}) // check a
	c, _ = c.Update(keyPress('j'))
	c, _ = c.Update(keyPress('j'))
	c, _ = c.Update(tea.KeyPressMsg{Code: ' '}) // check c

	sel := c.Selection()
	if len(sel) != 2 || sel[0] != 0 || sel[1] != 2 {
		t.Errorf("selection = %v, want [0 2]", sel)
	}

	c.Clear()
	if len(c.Selection()) != 0 || c.Cursor != 0 {
		t.Error("clear did not reset state")
	}
}

func TestChecklistView(t *testing.T) {
	c := NewChecklist([]string{"Plastikmüll", "Papiermüll"})
	c, _ = c.Update(tea.KeyPressMsg{Code: ' '})

	view := c.View()
	if !strings.Contains(view, "[x] Plastikmüll") {
		t.Errorf("view missing checked marker:\n%s", view)
	}
	if !strings.Contains(view, "[ ] Papiermüll") {
		t.Errorf("view missing unchecked marker:\n%s", view)
	}
}
