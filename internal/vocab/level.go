package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// Level is a CEFR proficiency tag attached to every word entry.
type Level string

const (
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
)

// AllLevels returns the supported levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelB1, LevelB2, LevelC1}
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	switch l {
	case LevelB1, LevelB2, LevelC1:
		return true
	}
	return false
}

// ParseLevel parses a level tag case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown level %q (want B1, B2 or C1)", s)
	}
	return l, nil
}

// LevelSet is the allow-list used to filter the dataset.
type LevelSet map[Level]bool

// DefaultLevels is the allow-list used when none is configured.
func DefaultLevels() LevelSet {
	return LevelSet{LevelB2: true, LevelC1: true}
}

// NewLevelSet builds a set from the given levels.
func NewLevelSet(levels ...Level) LevelSet {
	set := make(LevelSet, len(levels))
	for _, l := range levels {
		set[l] = true
	}
	return set
}

// ParseLevels parses a comma or space separated list such as "B2,C1".
// An empty string yields DefaultLevels.
func ParseLevels(s string) (LevelSet, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return DefaultLevels(), nil
	}
	set := make(LevelSet, len(fields))
	for _, f := range fields {
		l, err := ParseLevel(f)
		if err != nil {
			return nil, err
		}
		set[l] = true
	}
	return set, nil
}

// Contains reports whether l is allowed.
func (s LevelSet) Contains(l Level) bool {
	return s[l]
}

// Sorted returns the levels in the set in ascending order.
func (s LevelSet) Sorted() []Level {
	out := make([]Level, 0, len(s))
	for l, ok := range s {
		if ok {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s LevelSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = string(l)
	}
	return strings.Join(parts, ",")
}
