package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_CursorClamps(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c"})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("Selected = %d after up at top, want 0", m.Selected)
	}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(keyPress('j'))
	}
	if m.Selected != 2 {
		t.Errorf("Selected = %d after moving past bottom, want 2", m.Selected)
	}
}

func TestMultiChoice_RevealFreezesCursor(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c", "d"})
	m.Reveal(1, 3)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("Selected = %d after reveal, want 0", m.Selected)
	}
	view := m.View(40)
	if !strings.Contains(view, "4)  d  ✓") {
		t.Errorf("expected correct option marked, got:\n%s", view)
	}
	if !strings.Contains(view, "2)  b  ✗") {
		t.Errorf("expected chosen option marked wrong, got:\n%s", view)
	}
}

func TestMultiChoice_ViewNumbersOptions(t *testing.T) {
	m := NewMultiChoice([]string{"ละทิ้ง", "ต่อรอง"})
	view := m.View(40)
	for _, want := range []string{"1)  ละทิ้ง", "2)  ต่อรอง"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{12, 10, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		got := NewProgressBar("", tt.done, tt.total, 40).Fraction()
		if got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "one", Action: func() tea.Cmd { called = "one"; return nil }},
		{Label: "off2", Disabled: true},
		{Label: "two", Action: func() tea.Cmd { called = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if called != "two" {
		t.Errorf("called = %q, want two", called)
	}
}

func TestMenu_WrapsAndShortcuts(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "START", Shortcut: "s", Action: func() tea.Cmd { called = "start"; return nil }},
		{Label: "LOCKED", Shortcut: "l", Disabled: true},
		{Label: "EXIT", Shortcut: "q", Action: func() tea.Cmd { called = "exit"; return nil }},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("Selected = %d after up at top, want wrap to 2", m.Selected)
	}
	m, _ = m.Update(keyPress('j'))
	if m.Selected != 0 {
		t.Errorf("Selected = %d after down at bottom, want wrap to 0", m.Selected)
	}

	m, _ = m.Update(keyPress('l'))
	if called != "" || m.Selected != 0 {
		t.Errorf("disabled shortcut should do nothing, got called=%q selected=%d", called, m.Selected)
	}
	m, _ = m.Update(keyPress('q'))
	if called != "exit" || m.Selected != 2 {
		t.Errorf("called=%q selected=%d, want exit/2", called, m.Selected)
	}
}
