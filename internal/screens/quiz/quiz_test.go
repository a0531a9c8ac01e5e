package quiz

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sutticue/flashcard-game/internal/quizgen"
	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/router"
	"github.com/sutticue/flashcard-game/internal/screens/summary"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

// stubSource always asks the same question; the answer is option 2.
type stubSource struct {
	options []string
}

func (s *stubSource) Next() (*quizgen.Question, error) {
	words := make([]string, len(s.options))
	for i := range words {
		words[i] = "w" + s.options[i]
	}
	words[1] = "ubiquitous"
	return &quizgen.Question{
		TargetWord:   "ubiquitous",
		Definition:   "seeming to be everywhere",
		Level:        vocab.LevelC1,
		Options:      s.options,
		OptionWords:  words,
		CorrectIndex: 1,
	}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testFactory(cfg round.Config, options ...string) Factory {
	if len(options) == 0 {
		options = []string{"ละทิ้ง", "พบได้ทั่วไป", "ต่อรอง", "ลดลง"}
	}
	return func() (*round.Controller, error) {
		return round.New(&stubSource{options: options}, cfg)
	}
}

// startScreen runs Init and feeds its result back, as the program would.
func startScreen(t *testing.T, f Factory) *Screen {
	t.Helper()
	s := New(f, nil)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	scr, _ := s.Update(cmd())
	return scr.(*Screen)
}

func press(s *Screen, msg tea.KeyPressMsg) (*Screen, tea.Cmd) {
	scr, cmd := s.Update(msg)
	return scr.(*Screen), cmd
}

func TestQuiz_StartShowsQuestion(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	if s.errMsg != "" {
		t.Fatalf("unexpected error: %s", s.errMsg)
	}
	view := s.View(80, 30)
	for _, want := range []string{"ubiquitous", "1)  ละทิ้ง", "2)  พบได้ทั่วไป", "Level C1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if st := s.Status(); st == nil || st.Asked != 0 {
		t.Errorf("Status = %+v, want zeroed scoreboard", st)
	}
}

func TestQuiz_NumberKeyAnswersCorrectly(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	s, _ = press(s, keyPress('2'))

	st := s.ctrl.State()
	if st.Score != 1 || st.Asked != 1 {
		t.Errorf("score/asked = %d/%d, want 1/1", st.Score, st.Asked)
	}
	if st.Phase != round.PhaseAwaitingNext {
		t.Errorf("phase = %v, want awaiting_next", st.Phase)
	}
	if s.feedback != "✅ Correct!" {
		t.Errorf("feedback = %q", s.feedback)
	}
	if !s.choice.Revealed {
		t.Error("expected options to be revealed")
	}
}

func TestQuiz_WrongAnswerShowsAnswerAndDefinition(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	s, _ = press(s, keyPress('1'))

	if s.feedback != "❌ Answer: พบได้ทั่วไป" {
		t.Errorf("feedback = %q", s.feedback)
	}
	if !strings.Contains(s.View(80, 30), "seeming to be everywhere") {
		t.Error("expected the definition after a wrong answer")
	}
	if s.ctrl.State().Streak != 0 {
		t.Errorf("streak = %d, want 0", s.ctrl.State().Streak)
	}
}

func TestQuiz_LockedAfterAnswer(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	s, _ = press(s, keyPress('1'))
	s, _ = press(s, keyPress('2'))

	st := s.ctrl.State()
	if st.Asked != 1 || st.Score != 0 {
		t.Errorf("second answer should be ignored, got score/asked %d/%d", st.Score, st.Asked)
	}
}

func TestQuiz_OutOfRangeNumberIsRejected(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig(), "ก", "ข", "ค"))

	s, _ = press(s, keyPress('4'))

	if s.feedback != "Choose 1-3" {
		t.Errorf("feedback = %q, want %q", s.feedback, "Choose 1-3")
	}
	if s.ctrl.State().Asked != 0 {
		t.Error("invalid input should not count as an answer")
	}
}

func TestQuiz_ArrowsAndEnter(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	s, _ = press(s, specialKey(tea.KeyDown))
	s, _ = press(s, specialKey(tea.KeyEnter))

	if s.ctrl.State().Score != 1 {
		t.Errorf("expected the second option to be submitted as correct")
	}
}

func TestQuiz_SkipKeepsScore(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))
	s, _ = press(s, keyPress('2'))
	s, _ = press(s, specialKey(tea.KeyEnter))

	s, _ = press(s, keyPress('s'))

	st := s.ctrl.State()
	if st.Asked != 1 || st.Score != 1 || st.Streak != 0 {
		t.Errorf("after skip got %+v", st)
	}
	if st.Phase != round.PhaseInProgress {
		t.Errorf("phase = %v, want in_progress", st.Phase)
	}
}

func TestQuiz_SkipAfterAnswer(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))
	s, _ = press(s, keyPress('2'))

	s, _ = press(s, keyPress('s'))

	st := s.ctrl.State()
	if st.Phase != round.PhaseInProgress || st.Locked {
		t.Fatalf("after skip got %+v, want an open question", st)
	}
	if st.Asked != 1 || st.Score != 1 || st.Streak != 0 {
		t.Errorf("after skip got %+v", st)
	}
	if s.choice.Revealed {
		t.Error("expected a fresh, unrevealed question")
	}
}

func TestQuiz_SkipDisabled(t *testing.T) {
	cfg := round.DefaultConfig()
	cfg.AllowSkip = false
	s := startScreen(t, testFactory(cfg))
	s, _ = press(s, keyPress('2'))
	s, _ = press(s, keyPress('n'))
	streak := s.ctrl.State().Streak

	s, _ = press(s, keyPress('s'))

	if s.ctrl.State().Streak != streak {
		t.Error("skip key should do nothing when skipping is disabled")
	}
	for _, h := range s.KeyHints() {
		if h.Description == "Skip" {
			t.Error("skip hint should be hidden")
		}
	}
}

func TestQuiz_QuitConfirmDismiss(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	s, _ = press(s, specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(s.View(80, 30), "End this round?") {
		t.Error("expected the confirmation dialog to render")
	}

	s, _ = press(s, keyPress('n'))
	if s.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
	if s.ctrl.Complete() {
		t.Error("round should continue")
	}
}

func TestQuiz_QuitBeforeAnsweringGoesHome(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	s, _ = press(s, specialKey(tea.KeyEscape))
	_, cmd := press(s, keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop with no summary when nothing was answered")
	}
}

func TestQuiz_QuitMidRoundShowsSummary(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))
	s, _ = press(s, keyPress('2'))

	s, _ = press(s, specialKey(tea.KeyEscape))
	_, cmd := press(s, keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected the summary to replace the round")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen is %T, want *summary.SummaryScreen", msg.Screen)
	}
}

func TestQuiz_PlayThroughRound(t *testing.T) {
	cfg := round.DefaultConfig()
	cfg.RoundLength = 2
	s := startScreen(t, testFactory(cfg))

	s, _ = press(s, keyPress('2'))
	s, _ = press(s, keyPress('n'))
	s, _ = press(s, keyPress('1'))

	if !s.ctrl.Complete() {
		t.Fatal("expected the round to be complete")
	}
	_, cmd := press(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter after the last answer")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected the summary to replace the round")
	}
}

func TestQuiz_MilestoneToast(t *testing.T) {
	s := startScreen(t, testFactory(round.DefaultConfig()))

	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		s, cmd = press(s, keyPress('2'))
		if i < 4 {
			if s.toast != "" {
				t.Fatalf("unexpected toast after %d correct", i+1)
			}
			s, _ = press(s, keyPress('n'))
		}
	}

	if s.toast != "On fire! 🔥 5 in a row!" {
		t.Errorf("toast = %q", s.toast)
	}
	if cmd == nil {
		t.Fatal("expected a timer command for the toast")
	}

	// A stale timer leaves the toast alone.
	s.Update(toastExpiredMsg{ID: s.toastID - 1})
	if s.toast == "" {
		t.Error("stale expiry should not clear the toast")
	}
	s.Update(toastExpiredMsg{ID: s.toastID})
	if s.toast != "" {
		t.Error("expected the toast to clear")
	}
}

func TestQuiz_FactoryError(t *testing.T) {
	f := func() (*round.Controller, error) {
		return nil, quizgen.ErrDegenerateOptions
	}
	s := startScreen(t, f)

	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	_, cmd := press(s, keyPress('x'))
	if cmd == nil {
		t.Fatal("expected any key to leave the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop")
	}
}

func TestQuiz_StartError(t *testing.T) {
	f := func() (*round.Controller, error) {
		return round.New(failingSource{}, round.DefaultConfig())
	}
	s := startScreen(t, f)
	if !strings.Contains(s.View(80, 30), "Round error") {
		t.Error("expected the error view")
	}
}

type failingSource struct{}

func (failingSource) Next() (*quizgen.Question, error) {
	return nil, errors.New("pool exhausted")
}
