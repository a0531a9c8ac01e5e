package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// NewRand returns a randomly seeded generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRand returns a deterministic generator, for tests and replays.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Build shuffles the target together with its distractors and records
// where the target's translation landed.
func Build(rng *rand.Rand, target vocab.WordEntry, distractors []vocab.WordEntry) (*Question, error) {
	entries := make([]vocab.WordEntry, 0, len(distractors)+1)
	entries = append(entries, target)
	for _, d := range distractors {
		if sameWord(d, target) || containsWord(entries, d) {
			return nil, fmt.Errorf("duplicate option %q for %q", d.Word, target.Word)
		}
		entries = append(entries, d)
	}
	if len(entries) < MinPoolSize {
		return nil, ErrDegenerateOptions
	}

	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	q := &Question{
		TargetWord:   target.Word,
		Definition:   target.Definition,
		Level:        target.Level,
		PartOfSpeech: target.PartOfSpeech,
		Options:      make([]string, len(entries)),
		OptionWords:  make([]string, len(entries)),
		CorrectIndex: -1,
	}
	for i, e := range entries {
		q.Options[i] = e.Translation
		q.OptionWords[i] = e.Word
		if sameWord(e, target) {
			q.CorrectIndex = i
		}
	}
	return q, nil
}

func sameWord(a, b vocab.WordEntry) bool {
	return strings.EqualFold(a.Word, b.Word)
}

// wordKey identifies a word regardless of case, matching sameWord.
func wordKey(w vocab.WordEntry) string {
	return strings.ToLower(w.Word)
}

func containsWord(entries []vocab.WordEntry, w vocab.WordEntry) bool {
	for _, e := range entries {
		if sameWord(e, w) {
			return true
		}
	}
	return false
}
