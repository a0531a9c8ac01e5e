package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// Strategy names accepted by NewDistractorStrategy.
const (
	DistractorUniform   = "uniform"
	DistractorSegmented = "segmented"
	DistractorLetter    = "letter"
)

// DistractorStrategy picks wrong options for a target word.
// Implementations return at most n entries, never the target, and never
// the same word twice. They must terminate for any pool.
type DistractorStrategy interface {
	// Name returns the configuration name of the strategy.
	Name() string

	// Select returns up to n distractors for target drawn from pool.
	Select(pool []vocab.WordEntry, target vocab.WordEntry, n int) []vocab.WordEntry
}

// DistractorStrategies lists the accepted strategy names.
func DistractorStrategies() []string {
	return []string{DistractorUniform, DistractorSegmented, DistractorLetter}
}

// NewDistractorStrategy returns the named strategy drawing from rng.
func NewDistractorStrategy(name string, rng *rand.Rand) (DistractorStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DistractorUniform:
		return &UniformDistractors{rng: rng}, nil
	case DistractorSegmented:
		return &SegmentedDistractors{rng: rng}, nil
	case DistractorLetter:
		return &LetterDistractors{rng: rng}, nil
	}
	return nil, fmt.Errorf("distractor strategy %q: %w", name, ErrUnknownStrategy)
}

// others returns pool minus target, preserving order.
func others(pool []vocab.WordEntry, target vocab.WordEntry) []vocab.WordEntry {
	out := make([]vocab.WordEntry, 0, len(pool))
	for _, w := range pool {
		if !sameWord(w, target) {
			out = append(out, w)
		}
	}
	return out
}

// fillUniform tops chosen up to n with random entries from pool that are
// neither the target nor already chosen. It shuffles only as far as it
// needs to, so a question costs one pass over the pool at most.
func fillUniform(rng *rand.Rand, pool []vocab.WordEntry, target vocab.WordEntry, chosen []vocab.WordEntry, n int) []vocab.WordEntry {
	if len(chosen) >= n {
		return chosen
	}
	seen := make(map[string]struct{}, n+1)
	seen[wordKey(target)] = struct{}{}
	for _, c := range chosen {
		seen[wordKey(c)] = struct{}{}
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < len(idx) && len(chosen) < n; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]

		w := pool[idx[i]]
		key := wordKey(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		chosen = append(chosen, w)
	}
	return chosen
}
