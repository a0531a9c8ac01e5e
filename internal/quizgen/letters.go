package quizgen

import (
	"math/rand/v2"
	"sort"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// letterBuckets groups words by lowercase initial a-z. Words with any other
// initial are left out.
type letterBuckets map[byte][]vocab.WordEntry

func bucketByLetter(words []vocab.WordEntry) letterBuckets {
	buckets := make(letterBuckets)
	for _, w := range words {
		if c, ok := w.Initial(); ok {
			buckets[c] = append(buckets[c], w)
		}
	}
	return buckets
}

// letters returns the non-empty bucket keys in alphabetical order, so that
// a seeded rng gives repeatable picks.
func (b letterBuckets) letters() []byte {
	out := make([]byte, 0, len(b))
	for c, words := range b {
		if len(words) > 0 {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LetterDistractors draws each distractor from a different initial-letter
// bucket, none sharing the target's initial. When fewer than n such letters
// exist the remainder is filled uniformly from the whole pool.
type LetterDistractors struct {
	rng *rand.Rand
}

func (s *LetterDistractors) Name() string { return DistractorLetter }

func (s *LetterDistractors) Select(pool []vocab.WordEntry, target vocab.WordEntry, n int) []vocab.WordEntry {
	if n <= 0 {
		return nil
	}
	buckets := bucketByLetter(others(pool, target))
	targetLetter, hasLetter := target.Initial()

	letters := buckets.letters()
	available := letters[:0]
	for _, c := range letters {
		if hasLetter && c == targetLetter {
			continue
		}
		available = append(available, c)
	}
	s.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	chosen := make([]vocab.WordEntry, 0, n)
	for _, c := range available {
		if len(chosen) >= n {
			break
		}
		bucket := buckets[c]
		cand := bucket[s.rng.IntN(len(bucket))]
		if !containsWord(chosen, cand) {
			chosen = append(chosen, cand)
		}
	}

	return fillUniform(s.rng, pool, target, chosen, n)
}
