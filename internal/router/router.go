// Package router keeps the stack of screens the app moves through:
// home, a running round, its results.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sutticue/flashcard-game/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen. The stack does not
// grow, so popping afterwards skips the replaced screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// HomeMsg unwinds the stack to its first screen.
type HomeMsg struct{}

// Push returns a command that opens s.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Pop returns a command that closes the current screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Replace returns a command that swaps the current screen for s.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Home returns a command that unwinds to the first screen.
func Home() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// Router owns the screen stack. The stack is never empty.
type Router struct {
	screens []screen.Screen
}

// New creates a Router whose bottom screen is root.
func New(root screen.Screen) *Router {
	return &Router{screens: []screen.Screen{root}}
}

// Active returns the screen on top of the stack.
func (r *Router) Active() screen.Screen {
	return r.screens[len(r.screens)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.screens)
}

// Update applies navigation messages and forwards everything else to the
// active screen. Screens that become active through Push or Replace get
// their Init command returned; screens revealed by Pop or Home keep their
// state and are not re-initialised.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	top := len(r.screens) - 1

	switch msg := msg.(type) {
	case PushScreenMsg:
		r.screens = append(r.screens, msg.Screen)
		return msg.Screen.Init()
	case ReplaceScreenMsg:
		r.screens[top] = msg.Screen
		return msg.Screen.Init()
	case PopScreenMsg:
		if top > 0 {
			r.screens = r.screens[:top]
		}
		return nil
	case HomeMsg:
		r.screens = r.screens[:1]
		return nil
	}

	next, cmd := r.screens[top].Update(msg)
	r.screens[top] = next
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
