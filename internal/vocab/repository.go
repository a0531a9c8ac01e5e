package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultFetchTimeout bounds a dataset fetch over HTTP.
const DefaultFetchTimeout = 15 * time.Second

// Repository holds the level-filtered word pool for one session.
// It is never mutated after construction.
type Repository struct {
	source string
	levels LevelSet
	words  []WordEntry
}

// Load reads the dataset from source (a file path or an http(s) URL),
// validates it, and keeps only entries whose level is in levels.
func Load(ctx context.Context, source string, levels LevelSet) (*Repository, error) {
	raw, err := readSource(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return Parse(raw, source, levels)
}

// Parse builds a Repository from a raw JSON dataset document.
func Parse(raw []byte, source string, levels LevelSet) (*Repository, error) {
	if err := validateDataset(raw); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	var entries []WordEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("decode entries: %w", err)}
	}
	return NewRepository(source, entries, levels)
}

// NewRepository filters entries by levels and drops repeated words,
// keeping the first occurrence. Returns *EmptyDatasetError when nothing is left.
func NewRepository(source string, entries []WordEntry, levels LevelSet) (*Repository, error) {
	if len(levels) == 0 {
		levels = DefaultLevels()
	}
	seen := make(map[string]bool, len(entries))
	words := make([]WordEntry, 0, len(entries))
	for _, e := range entries {
		if e.Word == "" || e.Translation == "" || !levels.Contains(e.Level) {
			continue
		}
		key := strings.ToLower(e.Word)
		if seen[key] {
			continue
		}
		seen[key] = true
		words = append(words, e)
	}
	if len(words) == 0 {
		return nil, &EmptyDatasetError{Source: source, Levels: levels}
	}
	return &Repository{source: source, levels: levels, words: words}, nil
}

// Words returns a copy of the filtered pool in dataset order.
func (r *Repository) Words() []WordEntry {
	out := make([]WordEntry, len(r.words))
	copy(out, r.words)
	return out
}

// Len returns the pool size.
func (r *Repository) Len() int { return len(r.words) }

// Source returns where the dataset was loaded from.
func (r *Repository) Source() string { return r.source }

// Levels returns the allow-list used to filter the pool.
func (r *Repository) Levels() LevelSet { return r.levels }

// CountByLevel returns the pool size per level.
func (r *Repository) CountByLevel() map[Level]int {
	counts := make(map[Level]int)
	for _, w := range r.words {
		counts[w.Level]++
	}
	return counts
}

func readSource(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		return nil, fmt.Errorf("no dataset configured")
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(ctx, source)
	}
	return os.ReadFile(source)
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
