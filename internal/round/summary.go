package round

import (
	"math"
	"time"
)

// Summary is the end-of-round report.
type Summary struct {
	RoundID     string        `json:"round_id"`
	Score       int           `json:"score"`
	Asked       int           `json:"asked"`
	RoundLength int           `json:"round_length"`
	Accuracy    int           `json:"accuracy"`
	BestStreak  int           `json:"best_streak"`
	Played      bool          `json:"played"`
	Quit        bool          `json:"quit"`
	Outcome     Outcome       `json:"outcome"`
	Duration    time.Duration `json:"duration_ns"`
}

// Accuracy returns score/asked as a rounded percentage, 0 when nothing
// was asked.
func Accuracy(score, asked int) int {
	if asked <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(asked)))
}

// BuildSummary grades state under scheme. A round with no answered
// questions is reported as not played and carries no outcome.
func BuildSummary(id string, state State, roundLength int, scheme OutcomeScheme) Summary {
	s := Summary{
		RoundID:     id,
		Score:       state.Score,
		Asked:       state.Asked,
		RoundLength: roundLength,
		BestStreak:  state.BestStreak,
		Played:      state.Asked > 0,
	}
	if s.Played {
		s.Accuracy = Accuracy(state.Score, state.Asked)
		s.Outcome = scheme.Evaluate(s.Accuracy)
	}
	return s
}
