package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

// Picker names accepted by NewTargetPicker.
const (
	PickerRandom = "random"
	PickerDeck   = "deck"
	PickerLetter = "letter"
)

// TargetPicker chooses the word the next question asks about.
type TargetPicker interface {
	Name() string
	Pick() vocab.WordEntry
}

// TargetPickers lists the accepted picker names.
func TargetPickers() []string {
	return []string{PickerRandom, PickerDeck, PickerLetter}
}

// NewTargetPicker returns the named picker over pool. pool must not be empty.
func NewTargetPicker(name string, pool []vocab.WordEntry, rng *rand.Rand) (TargetPicker, error) {
	if len(pool) == 0 {
		return nil, ErrDegenerateOptions
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PickerRandom:
		return &RandomPicker{pool: pool, rng: rng}, nil
	case PickerDeck:
		return &DeckPicker{pool: pool, rng: rng}, nil
	case PickerLetter:
		return newLetterPicker(pool, rng), nil
	}
	return nil, fmt.Errorf("target picker %q: %w", name, ErrUnknownStrategy)
}

// RandomPicker picks uniformly with replacement.
type RandomPicker struct {
	pool []vocab.WordEntry
	rng  *rand.Rand
}

func (p *RandomPicker) Name() string { return PickerRandom }

func (p *RandomPicker) Pick() vocab.WordEntry {
	return p.pool[p.rng.IntN(len(p.pool))]
}

// DeckPicker deals every word once in shuffled order, then reshuffles.
type DeckPicker struct {
	pool  []vocab.WordEntry
	rng   *rand.Rand
	order []int
}

func (p *DeckPicker) Name() string { return PickerDeck }

func (p *DeckPicker) Pick() vocab.WordEntry {
	if len(p.order) == 0 {
		p.order = p.rng.Perm(len(p.pool))
	}
	i := p.order[0]
	p.order = p.order[1:]
	return p.pool[i]
}

// Remaining returns how many words are left before the next reshuffle.
func (p *DeckPicker) Remaining() int {
	return len(p.order)
}

// LetterPicker picks a random initial letter, then a random word with it,
// so letters with few words come up as often as crowded ones.
type LetterPicker struct {
	pool    []vocab.WordEntry
	rng     *rand.Rand
	buckets letterBuckets
	letters []byte
}

func newLetterPicker(pool []vocab.WordEntry, rng *rand.Rand) *LetterPicker {
	buckets := bucketByLetter(pool)
	return &LetterPicker{
		pool:    pool,
		rng:     rng,
		buckets: buckets,
		letters: buckets.letters(),
	}
}

func (p *LetterPicker) Name() string { return PickerLetter }

func (p *LetterPicker) Pick() vocab.WordEntry {
	if len(p.letters) == 0 {
		return p.pool[p.rng.IntN(len(p.pool))]
	}
	bucket := p.buckets[p.letters[p.rng.IntN(len(p.letters))]]
	return bucket[p.rng.IntN(len(bucket))]
}
