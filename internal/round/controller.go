package round

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/quizgen"
)

// DefaultRoundLength is the number of questions in a round.
const DefaultRoundLength = 10

// QuestionSource produces questions. *quizgen.Generator satisfies it.
type QuestionSource interface {
	Next() (*quizgen.Question, error)
}

// Config controls a round.
type Config struct {
	// RoundLength is the number of answered questions that ends the round.
	RoundLength int

	// AllowSkip permits Skip while a question is open.
	AllowSkip bool

	// Scheme grades the final accuracy.
	Scheme OutcomeScheme

	// Logger receives debug output; nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns a ten-question round with skips and star ratings.
func DefaultConfig() Config {
	return Config{
		RoundLength: DefaultRoundLength,
		AllowSkip:   true,
		Scheme:      StarScheme(),
	}
}

// Result describes the outcome of one answer.
type Result struct {
	Question      *quizgen.Question `json:"-"`
	Chosen        int               `json:"chosen"`
	Correct       bool              `json:"correct"`
	CorrectIndex  int               `json:"correct_index"`
	CorrectAnswer string            `json:"correct_answer"`
	Streak        int               `json:"streak"`

	// Milestone is the streak length reached, or 0 if this answer did
	// not cross a milestone.
	Milestone int `json:"milestone,omitempty"`

	// Complete is true when this answer ended the round.
	Complete bool `json:"complete"`
}

// Controller runs one round: it owns the scoreboard and the open question
// and moves between phases in response to answers, skips and advances.
// A Controller is not safe for concurrent use.
type Controller struct {
	id        string
	cfg       Config
	source    QuestionSource
	log       *zap.Logger
	now       func() time.Time
	listeners []Listener

	state         State
	question      *quizgen.Question
	nextMilestone int
	quit          bool
	startedAt     time.Time
	endedAt       time.Time
}

// New returns a Controller drawing questions from source. A RoundLength
// of zero selects DefaultRoundLength.
func New(source QuestionSource, cfg Config) (*Controller, error) {
	if source == nil {
		return nil, errors.New("round: nil question source")
	}
	if cfg.RoundLength < 0 {
		return nil, errors.New("round: round length must be positive")
	}
	if cfg.RoundLength == 0 {
		cfg.RoundLength = DefaultRoundLength
	}
	if len(cfg.Scheme.Tiers) == 0 {
		cfg.Scheme = StarScheme()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Controller{
		id:     id,
		cfg:    cfg,
		source: source,
		log:    log.With(zap.String("round_id", id)),
		now:    time.Now,
	}, nil
}

// ID returns the round's unique identifier.
func (c *Controller) ID() string { return c.id }

// Config returns the round configuration.
func (c *Controller) Config() Config { return c.cfg }

// State returns a copy of the scoreboard.
func (c *Controller) State() State { return c.state }

// Question returns the open question, or the answered one while awaiting
// Next. It is nil before Start.
func (c *Controller) Question() *quizgen.Question { return c.question }

// Subscribe registers l for all later events.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Start resets the scoreboard and opens the first question. It may be
// called again to play a new round with the same settings.
func (c *Controller) Start() error {
	q, err := c.source.Next()
	if err != nil {
		return &QuestionError{Err: err}
	}
	c.state = State{Phase: PhaseInProgress}
	c.question = q
	c.nextMilestone = BaseStreakThreshold
	c.quit = false
	c.startedAt = c.now()
	c.endedAt = time.Time{}

	c.log.Debug("round started",
		zap.Int("round_length", c.cfg.RoundLength),
		zap.String("target", q.TargetWord))
	c.emit(Event{Kind: EventQuestion, Question: q})
	return nil
}

// SubmitAnswer records index as the answer to the open question.
func (c *Controller) SubmitAnswer(index int) (Result, error) {
	switch {
	case c.state.Phase == PhaseComplete:
		return Result{}, ErrRoundComplete
	case c.state.Locked:
		return Result{}, ErrLocked
	case c.state.Phase != PhaseInProgress:
		return Result{}, ErrNotInProgress
	}
	q := c.question
	if !q.ValidIndex(index) {
		return Result{}, &InvalidInputError{Input: strconv.Itoa(index + 1), Index: index, Options: len(q.Options)}
	}

	c.state.Locked = true
	c.state.Asked++

	res := Result{
		Question:      q,
		Chosen:        index,
		Correct:       q.IsCorrect(index),
		CorrectIndex:  q.CorrectIndex,
		CorrectAnswer: q.CorrectAnswer(),
	}
	if res.Correct {
		c.state.Score++
		c.state.Streak++
		c.state.BestStreak = max(c.state.BestStreak, c.state.Streak)
		if c.state.Streak >= c.nextMilestone {
			res.Milestone = c.nextMilestone
			c.nextMilestone = NextStreakThreshold(c.state.Streak)
		}
	} else {
		c.resetStreak()
	}
	res.Streak = c.state.Streak

	if c.state.Asked >= c.cfg.RoundLength {
		c.state.Phase = PhaseComplete
		c.endedAt = c.now()
		res.Complete = true
	} else {
		c.state.Phase = PhaseAwaitingNext
	}

	c.log.Debug("answer recorded",
		zap.String("target", q.TargetWord),
		zap.Bool("correct", res.Correct),
		zap.Int("asked", c.state.Asked),
		zap.Int("score", c.state.Score),
		zap.Int("streak", c.state.Streak))

	c.emit(Event{Kind: EventAnswered, Question: q, Result: &res})
	if res.Milestone > 0 {
		c.emit(Event{Kind: EventStreakMilestone, Question: q, Milestone: res.Milestone})
	}
	if res.Complete {
		c.emitComplete()
	}
	return res, nil
}

// Skip replaces the current question with a new one and breaks the
// streak. It works on an open question, which is then not counted, and
// after an answer, where it stands in for Next. Score and Asked never
// change.
func (c *Controller) Skip() error {
	if !c.cfg.AllowSkip {
		return ErrSkipDisabled
	}
	switch c.state.Phase {
	case PhaseComplete:
		return ErrRoundComplete
	case PhaseInProgress, PhaseAwaitingNext:
	default:
		return ErrNotInProgress
	}
	q, err := c.source.Next()
	if err != nil {
		return &QuestionError{Err: err}
	}
	skipped := c.question
	c.resetStreak()
	c.question = q
	c.state.Locked = false
	c.state.Phase = PhaseInProgress

	c.log.Debug("question skipped", zap.String("target", skipped.TargetWord))
	c.emit(Event{Kind: EventSkipped, Question: skipped})
	c.emit(Event{Kind: EventQuestion, Question: q})
	return nil
}

// Next opens a new question after an answer.
func (c *Controller) Next() error {
	switch c.state.Phase {
	case PhaseComplete:
		return ErrRoundComplete
	case PhaseAwaitingNext:
	default:
		return ErrNotInProgress
	}
	q, err := c.source.Next()
	if err != nil {
		return &QuestionError{Err: err}
	}
	c.question = q
	c.state.Locked = false
	c.state.Phase = PhaseInProgress
	c.emit(Event{Kind: EventQuestion, Question: q})
	return nil
}

// Finish ends the round early and returns its summary. Finishing a round
// that is already complete only returns the summary.
func (c *Controller) Finish() Summary {
	if c.state.Phase != PhaseComplete {
		c.state.Phase = PhaseComplete
		c.state.Locked = true
		c.quit = true
		c.endedAt = c.now()
		c.log.Debug("round finished early", zap.Int("asked", c.state.Asked))
		c.emitComplete()
	}
	return c.Summary()
}

// Complete reports whether the round has ended.
func (c *Controller) Complete() bool {
	return c.state.Phase == PhaseComplete
}

// Summary reports the round so far.
func (c *Controller) Summary() Summary {
	s := BuildSummary(c.id, c.state, c.cfg.RoundLength, c.cfg.Scheme)
	s.Quit = c.quit
	if !c.startedAt.IsZero() {
		end := c.endedAt
		if end.IsZero() {
			end = c.now()
		}
		s.Duration = end.Sub(c.startedAt)
	}
	return s
}

func (c *Controller) resetStreak() {
	c.state.Streak = 0
	c.nextMilestone = BaseStreakThreshold
}

func (c *Controller) emitComplete() {
	s := c.Summary()
	c.log.Info("round complete",
		zap.Int("score", s.Score),
		zap.Int("asked", s.Asked),
		zap.Int("accuracy", s.Accuracy),
		zap.Bool("quit", s.Quit))
	c.emit(Event{Kind: EventComplete, Summary: &s})
}

func (c *Controller) emit(e Event) {
	e.State = c.state
	for _, l := range c.listeners {
		l(e)
	}
}
