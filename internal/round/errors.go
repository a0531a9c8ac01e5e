package round

import (
	"errors"
	"fmt"
)

var (
	// ErrLocked is returned when an answer arrives after the current
	// question was already answered.
	ErrLocked = errors.New("question already answered")

	// ErrNotInProgress is returned when an operation does not fit the
	// current phase.
	ErrNotInProgress = errors.New("no question in progress")

	// ErrRoundComplete is returned for any move after the round ended.
	ErrRoundComplete = errors.New("round is complete")

	// ErrSkipDisabled is returned by Skip when the round disallows skips.
	ErrSkipDisabled = errors.New("skipping is disabled")
)

// InvalidInputError reports an answer that does not select an option.
// The question stays open and nothing is counted. Input is what the player
// typed (1-based); Index is the rejected 0-based option index.
type InvalidInputError struct {
	Input   string
	Index   int
	Options int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid answer %q: choose 1-%d", e.Input, e.Options)
}

// QuestionError wraps a failure to produce the next question.
type QuestionError struct {
	Err error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("next question: %v", e.Err)
}

func (e *QuestionError) Unwrap() error {
	return e.Err
}
