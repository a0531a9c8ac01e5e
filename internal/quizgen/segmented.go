package quizgen

import (
	"math/rand/v2"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// SegmentedDistractors splits the remaining pool into n contiguous segments
// (thirds for the usual three distractors) and draws one candidate from each,
// so the options spread across the dataset's ordering. A segment gets at most
// twice its length in attempts; slots still empty afterwards are filled
// uniformly at random.
type SegmentedDistractors struct {
	rng *rand.Rand
}

func (s *SegmentedDistractors) Name() string { return DistractorSegmented }

func (s *SegmentedDistractors) Select(pool []vocab.WordEntry, target vocab.WordEntry, n int) []vocab.WordEntry {
	if n <= 0 {
		return nil
	}
	rest := others(pool, target)
	chosen := make([]vocab.WordEntry, 0, n)

	for seg := 0; seg < n; seg++ {
		lo := seg * len(rest) / n
		hi := (seg + 1) * len(rest) / n
		if hi <= lo {
			continue
		}
		segLen := hi - lo
		for attempt := 0; attempt < 2*segLen; attempt++ {
			cand := rest[lo+s.rng.IntN(segLen)]
			if !containsWord(chosen, cand) {
				chosen = append(chosen, cand)
				break
			}
		}
	}

	return fillUniform(s.rng, pool, target, chosen, n)
}
