package quizgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// Generator produces questions from a fixed word pool.
type Generator struct {
	pool        []vocab.WordEntry
	rng         *rand.Rand
	picker      TargetPicker
	distractors DistractorStrategy
	validators  []Validator
	options     int
}

// New builds a Generator over words. Pools with fewer than MinPoolSize
// entries are rejected with ErrDegenerateOptions. A nil rng is replaced by
// a randomly seeded one.
func New(words []vocab.WordEntry, cfg Config, rng *rand.Rand) (*Generator, error) {
	if rng == nil {
		rng = NewRand()
	}

	pool := make([]vocab.WordEntry, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		key := wordKey(w)
		if _, dup := seen[key]; dup || w.Word == "" {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, w)
	}
	if len(pool) < MinPoolSize {
		return nil, fmt.Errorf("pool of %d words: %w", len(pool), ErrDegenerateOptions)
	}

	picker, err := NewTargetPicker(cfg.Picker, pool, rng)
	if err != nil {
		return nil, err
	}
	distractors, err := NewDistractorStrategy(cfg.Distractors, rng)
	if err != nil {
		return nil, err
	}

	return &Generator{
		pool:        pool,
		rng:         rng,
		picker:      picker,
		distractors: distractors,
		validators:  cfg.Validators,
		options:     min(MaxOptions, len(pool)),
	}, nil
}

// Next builds a fresh question.
func (g *Generator) Next() (*Question, error) {
	target := g.picker.Pick()
	picked := g.distractors.Select(g.pool, target, g.options-1)

	q, err := Build(g.rng, target, picked)
	if err != nil {
		return nil, fmt.Errorf("build question for %q: %w", target.Word, err)
	}
	for _, v := range g.validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// OptionCount returns how many options every question carries.
func (g *Generator) OptionCount() int {
	return g.options
}

// PoolSize returns the number of distinct words questions are drawn from.
func (g *Generator) PoolSize() int {
	return len(g.pool)
}

// DistractorName returns the active distractor strategy name.
func (g *Generator) DistractorName() string {
	return g.distractors.Name()
}

// PickerName returns the active target picker name.
func (g *Generator) PickerName() string {
	return g.picker.Name()
}
