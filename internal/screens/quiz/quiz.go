// Package quiz is the screen that plays one round.
package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/router"
	"github.com/sutticue/flashcard-game/internal/screen"
	"github.com/sutticue/flashcard-game/internal/screens/summary"
	"github.com/sutticue/flashcard-game/internal/ui/components"
	"github.com/sutticue/flashcard-game/internal/ui/layout"
)

const toastDuration = 2 * time.Second

// Factory builds a fresh, unstarted round.
type Factory func() (*round.Controller, error)

// Screen implements screen.Screen for an active round.
type Screen struct {
	factory Factory
	log     *zap.Logger
	ctrl    *round.Controller
	keys    keyMap

	choice      components.MultiChoice
	result      *round.Result
	feedback    string
	toast       string
	toastID     int
	confirmQuit bool
	errMsg      string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.StatusProvider  = (*Screen)(nil)
	_ screen.EscapeHandler   = (*Screen)(nil)
)

// New returns a screen that starts a round from factory when shown.
func New(factory Factory, log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	return &Screen{
		factory: factory,
		log:     log,
		keys:    defaultKeyMap(true),
	}
}

func (s *Screen) Init() tea.Cmd {
	err := s.start()
	return func() tea.Msg { return roundStartedMsg{Err: err} }
}

func (s *Screen) start() error {
	ctrl, err := s.factory()
	if err != nil {
		return err
	}
	s.ctrl = ctrl
	s.keys = defaultKeyMap(ctrl.Config().AllowSkip)
	ctrl.Subscribe(s.logEvent)
	return ctrl.Start()
}

func (s *Screen) Title() string {
	return "Round"
}

func (s *Screen) HandlesEscape() bool {
	return true
}

func (s *Screen) Status() *layout.Status {
	if s.ctrl == nil {
		return nil
	}
	st := s.ctrl.State()
	return &layout.Status{Score: st.Score, Asked: st.Asked, Streak: st.Streak}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.ctrl == nil {
		return nil
	}
	if s.confirmQuit {
		return hints(s.keys.Confirm, s.keys.Cancel)
	}
	switch s.ctrl.State().Phase {
	case round.PhaseAwaitingNext:
		return hints(s.keys.Next, s.keys.Skip, s.keys.Quit)
	case round.PhaseComplete:
		return []layout.KeyHint{{Key: "Enter", Description: "See results"}}
	}
	return hints(s.keys.Choose, s.keys.Submit, s.keys.Skip, s.keys.Quit)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundStartedMsg:
		if msg.Err != nil {
			s.log.Error("round start failed", zap.Error(msg.Err))
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.log.Info("round started", zap.String("round_id", s.ctrl.ID()))
		s.resetQuestion()
		return s, nil

	case toastExpiredMsg:
		if msg.ID == s.toastID {
			s.toast = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, router.Pop()
	}
	if s.ctrl == nil {
		return s, nil
	}

	if s.confirmQuit {
		switch {
		case key.Matches(msg, s.keys.Confirm):
			s.confirmQuit = false
			return s, s.end(s.ctrl.Finish())
		case key.Matches(msg, s.keys.Cancel):
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.ctrl.State().Phase {
	case round.PhaseInProgress:
		switch {
		case key.Matches(msg, s.keys.Choose):
			n, _ := strconv.Atoi(msg.String())
			return s.answer(n - 1)
		case key.Matches(msg, s.keys.Submit):
			return s.answer(s.choice.Selected)
		case key.Matches(msg, s.keys.Skip):
			return s.skip()
		case key.Matches(msg, s.keys.Quit):
			s.confirmQuit = true
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		return s, cmd

	case round.PhaseAwaitingNext:
		switch {
		case key.Matches(msg, s.keys.Next):
			return s.next()
		case key.Matches(msg, s.keys.Skip):
			return s.skip()
		case key.Matches(msg, s.keys.Quit):
			s.confirmQuit = true
		}

	case round.PhaseComplete:
		if key.Matches(msg, s.keys.Next, s.keys.Quit) {
			return s, s.end(s.ctrl.Summary())
		}
	}
	return s, nil
}

func (s *Screen) answer(index int) (screen.Screen, tea.Cmd) {
	res, err := s.ctrl.SubmitAnswer(index)
	var invalid *round.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		s.feedback = fmt.Sprintf("Choose 1-%d", invalid.Options)
		return s, nil
	case err != nil:
		s.log.Debug("answer ignored", zap.Error(err))
		return s, nil
	}

	s.result = &res
	s.choice.Reveal(res.Chosen, res.CorrectIndex)
	if res.Correct {
		s.feedback = round.CorrectMessage(res.Streak)
	} else {
		s.feedback = "❌ Answer: " + res.CorrectAnswer
	}

	if res.Milestone > 0 {
		s.toastID++
		s.toast = round.MilestoneMessage(res.Milestone)
		return s, toastCmd(s.toastID)
	}
	return s, nil
}

func (s *Screen) skip() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.Skip(); err != nil {
		var qerr *round.QuestionError
		if errors.As(err, &qerr) {
			s.errMsg = err.Error()
		}
		s.log.Debug("skip rejected", zap.Error(err))
		return s, nil
	}
	s.resetQuestion()
	s.feedback = "⏭ Skipped"
	return s, nil
}

func (s *Screen) next() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.Next(); err != nil {
		s.log.Error("next question failed", zap.Error(err))
		s.errMsg = err.Error()
		return s, nil
	}
	s.resetQuestion()
	return s, nil
}

// end leaves the round. A round with no answers goes straight home.
func (s *Screen) end(sum round.Summary) tea.Cmd {
	if !sum.Played {
		return router.Pop()
	}
	return router.Replace(summary.New(sum, s.playAgain))
}

func (s *Screen) playAgain() tea.Cmd {
	return router.Replace(New(s.factory, s.log))
}

func (s *Screen) resetQuestion() {
	s.result = nil
	s.feedback = ""
	if q := s.ctrl.Question(); q != nil {
		s.choice = components.NewMultiChoice(q.Options)
	}
}

func (s *Screen) logEvent(e round.Event) {
	s.log.Debug("round event",
		zap.String("round_id", s.ctrl.ID()),
		zap.Stringer("event", e.Kind),
		zap.Int("score", e.State.Score),
		zap.Int("asked", e.State.Asked),
		zap.Int("streak", e.State.Streak))
}

func toastCmd(id int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}
