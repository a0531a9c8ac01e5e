package quizgen

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sutticue/flashcard-game/internal/vocab"
)

func b2Pool() []vocab.WordEntry {
	return []vocab.WordEntry{
		entry("ubiquitous", "พบได้ทั่วไป"),
		entry("abandon", "ละทิ้ง"),
		entry("bargain", "ต่อรอง"),
		entry("diminish", "ลดลง"),
		entry("feasible", "เป็นไปได้"),
	}
}

func checkQuestion(t *testing.T, q *Question, pool []vocab.WordEntry, wantOptions int) {
	t.Helper()
	if len(q.Options) != wantOptions {
		t.Fatalf("expected %d options, got %d", wantOptions, len(q.Options))
	}
	if !q.ValidIndex(q.CorrectIndex) {
		t.Fatalf("correct index %d out of range", q.CorrectIndex)
	}
	if q.OptionWords[q.CorrectIndex] != q.TargetWord {
		t.Errorf("option word at correct index = %q, want %q", q.OptionWords[q.CorrectIndex], q.TargetWord)
	}
	var target vocab.WordEntry
	for _, w := range pool {
		if w.Word == q.TargetWord {
			target = w
		}
	}
	if q.CorrectAnswer() != target.Translation {
		t.Errorf("correct answer = %q, want %q", q.CorrectAnswer(), target.Translation)
	}
	seen := map[string]bool{}
	for _, w := range q.OptionWords {
		if seen[w] {
			t.Errorf("word %q offered twice", w)
		}
		seen[w] = true
	}
}

func TestGenerator_FiveWordScenario(t *testing.T) {
	pool := b2Pool()
	for _, picker := range TargetPickers() {
		for _, distractors := range DistractorStrategies() {
			t.Run(picker+"/"+distractors, func(t *testing.T) {
				cfg := DefaultConfig()
				cfg.Picker = picker
				cfg.Distractors = distractors
				g, err := New(pool, cfg, NewSeededRand(11))
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				if g.OptionCount() != 4 {
					t.Errorf("OptionCount() = %d, want 4", g.OptionCount())
				}
				for i := 0; i < 100; i++ {
					q, err := g.Next()
					if err != nil {
						t.Fatalf("Next: %v", err)
					}
					checkQuestion(t, q, pool, 4)
				}
			})
		}
	}
}

func TestGenerator_SmallPoolsGetFewerOptions(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{2, 2},
		{3, 3},
		{4, 4},
		{9, 4},
	}
	for _, tt := range tests {
		pool := testPool(tt.size)
		g, err := New(pool, DefaultConfig(), NewSeededRand(uint64(tt.size)))
		if err != nil {
			t.Fatalf("size %d: %v", tt.size, err)
		}
		if g.OptionCount() != tt.want {
			t.Errorf("size %d: OptionCount() = %d, want %d", tt.size, g.OptionCount(), tt.want)
		}
		for i := 0; i < 20; i++ {
			q, err := g.Next()
			if err != nil {
				t.Fatalf("size %d: Next: %v", tt.size, err)
			}
			checkQuestion(t, q, pool, tt.want)
		}
	}
}

func TestGenerator_RejectsDegeneratePool(t *testing.T) {
	for _, pool := range [][]vocab.WordEntry{nil, testPool(1)} {
		_, err := New(pool, DefaultConfig(), NewSeededRand(1))
		if !errors.Is(err, ErrDegenerateOptions) {
			t.Errorf("pool of %d: expected ErrDegenerateOptions, got %v", len(pool), err)
		}
	}
}

func TestGenerator_DuplicateWordsCountOnce(t *testing.T) {
	pool := []vocab.WordEntry{
		entry("candid", "ตรงไปตรงมา"),
		entry("Candid", "ตรงไปตรงมา"),
	}
	_, err := New(pool, DefaultConfig(), NewSeededRand(1))
	if !errors.Is(err, ErrDegenerateOptions) {
		t.Fatalf("expected ErrDegenerateOptions for one distinct word, got %v", err)
	}
}

func TestGenerator_UnknownStrategies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Picker = "weighted"
	if _, err := New(testPool(5), cfg, NewSeededRand(1)); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("picker: expected ErrUnknownStrategy, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.Distractors = "semantic"
	if _, err := New(testPool(5), cfg, NewSeededRand(1)); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("distractors: expected ErrUnknownStrategy, got %v", err)
	}
}

func TestGenerator_SeededIsDeterministic(t *testing.T) {
	a, _ := New(testPool(20), DefaultConfig(), NewSeededRand(99))
	b, _ := New(testPool(20), DefaultConfig(), NewSeededRand(99))
	for i := 0; i < 10; i++ {
		qa, _ := a.Next()
		qb, _ := b.Next()
		if qa.TargetWord != qb.TargetWord || qa.CorrectIndex != qb.CorrectIndex {
			t.Fatalf("question %d differs: %q/%d vs %q/%d", i, qa.TargetWord, qa.CorrectIndex, qb.TargetWord, qb.CorrectIndex)
		}
	}
}

func TestGenerator_CorrectIndexCoversAllPositions(t *testing.T) {
	g, _ := New(b2Pool(), DefaultConfig(), NewSeededRand(5))
	positions := map[int]int{}
	for i := 0; i < 400; i++ {
		q, err := g.Next()
		if err != nil {
			t.Fatal(err)
		}
		positions[q.CorrectIndex]++
	}
	for i := 0; i < 4; i++ {
		if positions[i] == 0 {
			t.Errorf("correct answer never landed at position %d", i)
		}
	}
}

func TestDeckPicker_DealsEveryWordBeforeRepeating(t *testing.T) {
	pool := testPool(7)
	p, err := NewTargetPicker(PickerDeck, pool, NewSeededRand(3))
	if err != nil {
		t.Fatal(err)
	}
	for round := 0; round < 3; round++ {
		seen := map[string]bool{}
		for i := 0; i < len(pool); i++ {
			w := p.Pick().Word
			if seen[w] {
				t.Fatalf("round %d: %q dealt twice before the deck was exhausted", round, w)
			}
			seen[w] = true
		}
		if rem := p.(*DeckPicker).Remaining(); rem != 0 {
			t.Errorf("round %d: expected empty deck, %d left", round, rem)
		}
	}
}

func TestLetterPicker_ReachesSparseLetters(t *testing.T) {
	pool := append(testPool(30), entry("zealous", "กระตือรือร้น"))
	p, _ := NewTargetPicker(PickerLetter, pool, NewSeededRand(8))
	hits := 0
	for i := 0; i < 200; i++ {
		if p.Pick().Word == "zealous" {
			hits++
		}
	}
	// Two buckets (w and z), so zealous comes up about half the time.
	if hits < 50 {
		t.Errorf("expected the lone z word often, got %d/200", hits)
	}
}

func TestBuild_RejectsDuplicates(t *testing.T) {
	pool := b2Pool()
	if _, err := Build(NewSeededRand(1), pool[0], []vocab.WordEntry{pool[1], pool[1]}); err == nil {
		t.Error("expected error for duplicate distractor")
	}
	if _, err := Build(NewSeededRand(1), pool[0], []vocab.WordEntry{pool[0]}); err == nil {
		t.Error("expected error for target as distractor")
	}
	if _, err := Build(NewSeededRand(1), pool[0], nil); !errors.Is(err, ErrDegenerateOptions) {
		t.Errorf("expected ErrDegenerateOptions, got %v", err)
	}
}

func TestStructural_CatchesMisplacedAnswer(t *testing.T) {
	q := &Question{
		TargetWord:   "ubiquitous",
		Options:      []string{"พบได้ทั่วไป", "ละทิ้ง"},
		OptionWords:  []string{"ubiquitous", "abandon"},
		CorrectIndex: 1,
	}
	v := &StructuralValidator{}
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	q.CorrectIndex = 0
	if err := v.Validate(q); err != nil {
		t.Errorf("expected valid question, got %v", err)
	}
}

func TestStructural_CatchesRepeatedWord(t *testing.T) {
	q := &Question{
		TargetWord:   "ubiquitous",
		Options:      []string{"พบได้ทั่วไป", "พบได้ทั่วไป"},
		OptionWords:  []string{"ubiquitous", "ubiquitous"},
		CorrectIndex: 0,
	}
	if err := (&StructuralValidator{}).Validate(q); err == nil {
		t.Fatal("expected validation error for repeated word")
	}
}

func largePool(n int) []vocab.WordEntry {
	pool := make([]vocab.WordEntry, n)
	for i := range pool {
		// Spread initials so the letter strategy has buckets to pick from.
		word := fmt.Sprintf("%c%05d", 'a'+i%26, i)
		pool[i] = entry(word, "t"+word)
	}
	return pool
}

func TestGenerator_LargePoolStaysFast(t *testing.T) {
	pool := largePool(5000)
	for _, name := range DistractorStrategies() {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Distractors = name
			cfg.Picker = PickerDeck

			start := time.Now()
			g, err := New(pool, cfg, NewSeededRand(17))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			for i := 0; i < 500; i++ {
				q, err := g.Next()
				if err != nil {
					t.Fatalf("Next: %v", err)
				}
				checkQuestion(t, q, pool, MaxOptions)
			}
			// A quadratic pass over 5000 words takes ~0.3s per question.
			if elapsed := time.Since(start); elapsed > 3*time.Second {
				t.Errorf("500 questions over %d words took %v", len(pool), elapsed)
			}
		})
	}
}

func TestGenerator_LargePoolDedupe(t *testing.T) {
	pool := largePool(4000)
	pool = append(pool, pool...)
	g, err := New(pool, DefaultConfig(), NewSeededRand(2))
	if err != nil {
		t.Fatal(err)
	}
	if g.PoolSize() != 4000 {
		t.Errorf("PoolSize = %d, want 4000", g.PoolSize())
	}
}

func BenchmarkGenerator_Next(b *testing.B) {
	for _, size := range []int{500, 2000, 5000} {
		b.Run(fmt.Sprintf("pool=%d", size), func(b *testing.B) {
			g, err := New(largePool(size), DefaultConfig(), NewSeededRand(1))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := g.Next(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
