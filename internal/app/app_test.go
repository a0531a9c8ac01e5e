package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sutticue/flashcard-game/internal/quizgen"
	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/router"
	"github.com/sutticue/flashcard-game/internal/screens/home"
	"github.com/sutticue/flashcard-game/internal/screens/quiz"
	"github.com/sutticue/flashcard-game/internal/screens/welcome"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	repo, err := vocab.NewRepository("test", []vocab.WordEntry{
		{Word: "abandon", Translation: "ละทิ้ง", Level: vocab.LevelB2},
		{Word: "bargain", Translation: "ต่อรอง", Level: vocab.LevelB2},
		{Word: "diminish", Translation: "ลดลง", Level: vocab.LevelB2},
		{Word: "ubiquitous", Translation: "พบได้ทั่วไป", Level: vocab.LevelC1},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return Options{
		Words:       repo,
		RoundLength: 10,
		SkipWelcome: true,
		Strategy:    quizgen.DistractorUniform,
		Factory: func() (*round.Controller, error) {
			gen, err := quizgen.New(repo.Words(), quizgen.DefaultConfig(), quizgen.NewSeededRand(3))
			if err != nil {
				return nil, err
			}
			return round.New(gen, round.DefaultConfig())
		},
	}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestApp_HomeView(t *testing.T) {
	m := newAppModel(testOptions(t))
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 32})

	content := m.render()
	for _, want := range []string{"WordQuiz", "Home", "START ROUND", "4 WORDS"} {
		if !strings.Contains(content, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(testOptions(t))
	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestApp_EscAtHomeDoesNothing(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command for Esc on the home screen")
	}
}

func TestApp_EscGoesToQuizScreen(t *testing.T) {
	m := newAppModel(testOptions(t))
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 32})

	// Start a round from the menu.
	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from START ROUND")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a push")
	}
	m, cmd = update(m, push)
	m, _ = update(m, cmd())

	if _, ok := m.router.Active().(*quiz.Screen); !ok {
		t.Fatalf("active screen is %T, want *quiz.Screen", m.router.Active())
	}
	if !strings.Contains(m.render(), "✓ 0/0") {
		t.Error("expected the round scoreboard in the header")
	}

	// Esc opens the quit dialog instead of popping.
	m, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("Esc should not pop an active round")
		}
	}
	if !strings.Contains(m.render(), "End this round?") {
		t.Error("expected the quit confirmation")
	}
}

func TestApp_WelcomeHandsOverToHome(t *testing.T) {
	opts := testOptions(t)
	opts.SkipWelcome = false
	m := newAppModel(opts)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 32})

	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active screen is %T, want *welcome.WelcomeScreen", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected the splash animation to start ticking")
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected a command from the keypress")
	}
	m, _ = update(m, cmd())

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("active screen is %T, want *home.HomeScreen", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
