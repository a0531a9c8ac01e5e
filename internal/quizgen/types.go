package quizgen

import (
	"errors"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// MaxOptions is the number of options shown when the pool is large enough.
const MaxOptions = 4

// MinPoolSize is the smallest pool a round can be built from. Pools of
// MinPoolSize..MaxOptions-1 words yield questions with fewer options.
const MinPoolSize = 2

var (
	// ErrDegenerateOptions is returned when fewer than MinPoolSize words
	// are available to build a question.
	ErrDegenerateOptions = errors.New("not enough distinct words to build a question")

	// ErrUnknownStrategy is returned for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Question is one multiple-choice prompt. It is never mutated after Build.
type Question struct {
	// TargetWord is the English word being asked about.
	TargetWord string

	// Definition is the optional English definition of TargetWord.
	Definition string

	Level        vocab.Level
	PartOfSpeech string

	// Options holds the translations offered, in display order.
	Options []string

	// OptionWords holds the word each option translates, same order as Options.
	OptionWords []string

	// CorrectIndex indexes the target's translation in Options.
	CorrectIndex int
}

// CorrectAnswer returns the target's translation.
func (q *Question) CorrectAnswer() string {
	return q.Options[q.CorrectIndex]
}

// IsCorrect reports whether index selects the target's translation.
func (q *Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

// ValidIndex reports whether index selects one of the options.
func (q *Question) ValidIndex(index int) bool {
	return index >= 0 && index < len(q.Options)
}
