package quizgen

import (
	"math/rand/v2"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// UniformDistractors shuffles the pool minus the target and takes the first n.
type UniformDistractors struct {
	rng *rand.Rand
}

func (s *UniformDistractors) Name() string { return DistractorUniform }

func (s *UniformDistractors) Select(pool []vocab.WordEntry, target vocab.WordEntry, n int) []vocab.WordEntry {
	if n <= 0 {
		return nil
	}
	return fillUniform(s.rng, pool, target, make([]vocab.WordEntry, 0, n), n)
}
