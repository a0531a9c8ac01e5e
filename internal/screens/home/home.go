package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/router"
	"github.com/sutticue/flashcard-game/internal/screen"
	"github.com/sutticue/flashcard-game/internal/screens/quiz"
	"github.com/sutticue/flashcard-game/internal/ui/components"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

// Options configures the home screen.
type Options struct {
	Words       *vocab.Repository
	Factory     quiz.Factory
	RoundLength int
	Strategy    string
	Log         *zap.Logger
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu  components.Menu
	stats deckStats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START ROUND", Shortcut: "s", Disabled: opts.Factory == nil, Action: func() tea.Cmd {
			return router.Push(quiz.New(opts.Factory, opts.Log))
		}},
		{Label: "EXIT", Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		stats: newDeckStats(opts),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 70
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderDeckStats(h.stats, cw, compact),
		h.menu.View(cw),
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
