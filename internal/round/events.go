package round

import "github.com/sutticue/flashcard-game/internal/quizgen"

// EventKind identifies what happened in a round.
type EventKind int

const (
	EventQuestion        EventKind = iota // A new question is open
	EventAnswered                         // The open question was answered
	EventSkipped                          // The open question was skipped
	EventStreakMilestone                  // The streak reached a milestone
	EventComplete                         // The round ended
)

func (k EventKind) String() string {
	switch k {
	case EventQuestion:
		return "question"
	case EventAnswered:
		return "answered"
	case EventSkipped:
		return "skipped"
	case EventStreakMilestone:
		return "streak_milestone"
	case EventComplete:
		return "complete"
	}
	return "unknown"
}

// Event is delivered to subscribers after the state change it describes.
type Event struct {
	Kind     EventKind
	State    State
	Question *quizgen.Question

	// Result is set for EventAnswered.
	Result *Result

	// Milestone is the streak length for EventStreakMilestone.
	Milestone int

	// Summary is set for EventComplete.
	Summary *Summary
}

// Listener receives round events. Listeners run synchronously on the
// caller's goroutine and must not call back into the Controller.
type Listener func(Event)
