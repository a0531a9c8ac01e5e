package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/sutticue/flashcard-game/internal/ui/layout"
)

type keyMap struct {
	Choose  key.Binding
	Up      key.Binding
	Down    key.Binding
	Submit  key.Binding
	Skip    key.Binding
	Next    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap(allowSkip bool) keyMap {
	km := keyMap{
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "Answer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "Down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Submit"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "Skip"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "enter", "space"),
			key.WithHelp("Enter", "Next"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("Esc", "Quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("Y", "End round"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("N", "Keep going"),
		),
	}
	km.Skip.SetEnabled(allowSkip)
	return km
}

// hints converts enabled bindings to footer hints.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
