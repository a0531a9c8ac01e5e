package round

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Tier is a coarse grade for a round's accuracy.
type Tier string

const (
	TierTop  Tier = "top"
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

// Scheme names accepted by SchemeByName.
const (
	SchemeStars   = "stars"
	SchemeConsole = "console"
)

// ErrUnknownScheme is returned for an unrecognised scheme name.
var ErrUnknownScheme = errors.New("unknown outcome scheme")

// TierRule maps accuracies at or above Min to Tier.
type TierRule struct {
	Min   int    `mapstructure:"min" json:"min"`
	Tier  Tier   `mapstructure:"tier" json:"tier"`
	Label string `mapstructure:"label" json:"label"`
}

// OutcomeScheme grades an accuracy percentage. Rules are checked from the
// highest Min down; the last rule should have Min 0.
type OutcomeScheme struct {
	Name  string
	Tiers []TierRule
}

// Outcome is the graded result of a round.
type Outcome struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
}

// StarScheme rates rounds with one to three stars.
func StarScheme() OutcomeScheme {
	return OutcomeScheme{
		Name: SchemeStars,
		Tiers: []TierRule{
			{Min: 90, Tier: TierTop, Label: "⭐⭐⭐"},
			{Min: 70, Tier: TierHigh, Label: "⭐⭐☆"},
			{Min: 40, Tier: TierMid, Label: "⭐☆☆"},
			{Min: 0, Tier: TierLow, Label: "☆☆☆"},
		},
	}
}

// ConsoleScheme rates rounds with an encouragement message.
func ConsoleScheme() OutcomeScheme {
	return OutcomeScheme{
		Name: SchemeConsole,
		Tiers: []TierRule{
			{Min: 80, Tier: TierTop, Label: "สุดยอด! ระดับ B1–C1 ของคุณโหดมาก 🔥"},
			{Min: 50, Tier: TierHigh, Label: "ดีเลย! ฝึกอีกนิดเดียวก็เทพแล้ว 💪"},
			{Min: 0, Tier: TierLow, Label: "ยังไม่เป็นไร ลองเล่นซ้ำบ่อยๆ เดี๋ยวก็เก่งเอง 😄"},
		},
	}
}

// SchemeByName returns a built-in scheme.
func SchemeByName(name string) (OutcomeScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchemeStars:
		return StarScheme(), nil
	case SchemeConsole:
		return ConsoleScheme(), nil
	}
	return OutcomeScheme{}, fmt.Errorf("scheme %q: %w", name, ErrUnknownScheme)
}

// WithThresholds returns a copy of s whose rule minimums are replaced by
// mins, keyed by tier. Tiers absent from mins keep their default.
func (s OutcomeScheme) WithThresholds(mins map[Tier]int) (OutcomeScheme, error) {
	for tier := range mins {
		if !s.hasTier(tier) {
			return OutcomeScheme{}, fmt.Errorf("scheme %s has no tier %q (want one of %s)", s.Name, tier, s.tierNames())
		}
	}
	out := OutcomeScheme{Name: s.Name, Tiers: make([]TierRule, len(s.Tiers))}
	copy(out.Tiers, s.Tiers)
	for i, r := range out.Tiers {
		if m, ok := mins[r.Tier]; ok {
			if m < 0 || m > 100 {
				return OutcomeScheme{}, fmt.Errorf("threshold for %s must be 0-100, got %d", r.Tier, m)
			}
			out.Tiers[i].Min = m
		}
	}
	sort.SliceStable(out.Tiers, func(i, j int) bool { return out.Tiers[i].Min > out.Tiers[j].Min })
	return out, nil
}

// Evaluate grades pct. Accuracies below every rule fall into the last rule.
func (s OutcomeScheme) Evaluate(pct int) Outcome {
	if len(s.Tiers) == 0 {
		return Outcome{Tier: TierLow}
	}
	for _, r := range s.Tiers {
		if pct >= r.Min {
			return Outcome{Tier: r.Tier, Label: r.Label}
		}
	}
	last := s.Tiers[len(s.Tiers)-1]
	return Outcome{Tier: last.Tier, Label: last.Label}
}

func (s OutcomeScheme) hasTier(t Tier) bool {
	for _, r := range s.Tiers {
		if r.Tier == t {
			return true
		}
	}
	return false
}

func (s OutcomeScheme) tierNames() string {
	names := make([]string, len(s.Tiers))
	for i, r := range s.Tiers {
		names[i] = string(r.Tier)
	}
	return strings.Join(names, ", ")
}
