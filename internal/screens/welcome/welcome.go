package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sutticue/flashcard-game/internal/router"
	"github.com/sutticue/flashcard-game/internal/screen"
	"github.com/sutticue/flashcard-game/internal/ui/components"
	"github.com/sutticue/flashcard-game/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	flipEvery    = 400 * time.Millisecond
	bannerAt     = 800 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// The two faces of the flashcard.
var cardFaces = [2]string{"hello", "สวัสดี"}

var howToPlay = []string{
	"Pick the Thai meaning of each word: 1-4 or ↑↓ + Enter",
	"S skips a word · Esc ends the round early",
	"Chain correct answers to build a 🔥 streak",
}

type tickMsg time.Time

// WelcomeScreen shows a short flashcard animation and the rules, then
// hands over to the home screen on any key.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned || w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.homeFactory())
}

// face returns the card side showing at the current time. The card
// settles on the English side once the animation is done.
func (w *WelcomeScreen) face() string {
	if w.elapsed >= totalDur {
		return cardFaces[0]
	}
	return cardFaces[int(w.elapsed/flipEvery)%2]
}

func (w *WelcomeScreen) View(width, height int) string {
	card := components.Card(theme.Word.Render(w.face()), 24)
	sections := []string{card}

	if w.elapsed >= bannerAt {
		sections = append(sections, "", components.Banner(width < 40), "")
		for _, line := range howToPlay {
			sections = append(sections, theme.Body.Render(line))
		}
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
