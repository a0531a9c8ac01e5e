package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sutticue/flashcard-game/internal/ui/theme"
)

// MenuItem is one button in a Menu. Shortcut, when set, activates the
// item directly from any cursor position.
type MenuItem struct {
	Label    string
	Shortcut string
	Action   func() tea.Cmd
	Disabled bool
}

var (
	menuPrev     = key.NewBinding(key.WithKeys("up", "k", "shift+tab"))
	menuNext     = key.NewBinding(key.WithKeys("down", "j", "tab"))
	menuActivate = key.NewBinding(key.WithKeys("enter", "space"))
)

// Menu is a vertical column of buttons. The cursor wraps and never rests
// on a disabled item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

// move steps the cursor by dir until it lands on an enabled item. With no
// enabled items the cursor stays where it is.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// Update handles keyboard navigation and activation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, menuPrev):
		m.move(-1)
	case key.Matches(kmsg, menuNext):
		m.move(1)
	case key.Matches(kmsg, menuActivate):
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if !item.Disabled && item.Shortcut != "" && kmsg.String() == item.Shortcut {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

// View renders the menu as a column of buttons width cells wide.
func (m Menu) View(width int) string {
	dim := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim)

	rows := make([]string, len(m.Items))
	for i, item := range m.Items {
		if item.Disabled {
			rows[i] = dim.Render(item.Label)
		} else {
			rows[i] = Button(item.Label, i == m.Selected, width)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
