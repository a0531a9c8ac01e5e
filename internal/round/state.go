package round

// Phase is the controller's position in the round lifecycle.
type Phase int

const (
	PhaseIdle         Phase = iota // Created, Start not yet called
	PhaseInProgress                // A question is open for answers
	PhaseAwaitingNext              // Answered, waiting for Next
	PhaseComplete                  // Round over; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseAwaitingNext:
		return "awaiting_next"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

// State is the scoreboard of a round. Only the Controller mutates it;
// callers get copies.
type State struct {
	Score      int   `json:"score"`
	Asked      int   `json:"asked"`
	Streak     int   `json:"streak"`
	BestStreak int   `json:"best_streak"`
	Locked     bool  `json:"locked"`
	Phase      Phase `json:"-"`
}

// Remaining returns how many questions are left to answer.
func (s State) Remaining(roundLength int) int {
	return max(0, roundLength-s.Asked)
}
