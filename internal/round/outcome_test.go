package round

import (
	"errors"
	"strings"
	"testing"
)

func TestStarScheme(t *testing.T) {
	tests := []struct {
		pct   int
		tier  Tier
		label string
	}{
		{100, TierTop, "⭐⭐⭐"},
		{90, TierTop, "⭐⭐⭐"},
		{89, TierHigh, "⭐⭐☆"},
		{70, TierHigh, "⭐⭐☆"},
		{69, TierMid, "⭐☆☆"},
		{40, TierMid, "⭐☆☆"},
		{39, TierLow, "☆☆☆"},
		{0, TierLow, "☆☆☆"},
	}
	s := StarScheme()
	for _, tt := range tests {
		got := s.Evaluate(tt.pct)
		if got.Tier != tt.tier || got.Label != tt.label {
			t.Errorf("Evaluate(%d) = %+v, want %s %s", tt.pct, got, tt.tier, tt.label)
		}
	}
}

func TestConsoleScheme(t *testing.T) {
	tests := []struct {
		pct  int
		tier Tier
	}{
		{100, TierTop},
		{80, TierTop},
		{79, TierHigh},
		{70, TierHigh},
		{50, TierHigh},
		{49, TierLow},
		{0, TierLow},
	}
	s := ConsoleScheme()
	for _, tt := range tests {
		if got := s.Evaluate(tt.pct).Tier; got != tt.tier {
			t.Errorf("Evaluate(%d) = %s, want %s", tt.pct, got, tt.tier)
		}
	}
}

func TestWithThresholds(t *testing.T) {
	s, err := StarScheme().WithThresholds(map[Tier]int{TierTop: 95, TierMid: 30})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Evaluate(92).Tier; got != TierHigh {
		t.Errorf("92 with raised top = %s, want high", got)
	}
	if got := s.Evaluate(35).Tier; got != TierMid {
		t.Errorf("35 with lowered mid = %s, want mid", got)
	}
	if StarScheme().Evaluate(92).Tier != TierTop {
		t.Error("WithThresholds mutated the base scheme")
	}

	if _, err := StarScheme().WithThresholds(map[Tier]int{TierTop: 120}); err == nil {
		t.Error("expected error for threshold above 100")
	}
}

func TestWithThresholds_UnknownTier(t *testing.T) {
	tests := []struct {
		name   string
		scheme OutcomeScheme
		tier   Tier
	}{
		{"typo", StarScheme(), Tier("hgih")},
		{"mid under console", ConsoleScheme(), TierMid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.scheme.WithThresholds(map[Tier]int{tt.tier: 60})
			if err == nil {
				t.Fatalf("expected error for tier %q in scheme %s", tt.tier, tt.scheme.Name)
			}
			if !strings.Contains(err.Error(), string(tt.tier)) {
				t.Errorf("error %q should name the tier", err)
			}
		})
	}
}

func TestSchemeByName(t *testing.T) {
	for _, name := range []string{"", "stars", "Console"} {
		if _, err := SchemeByName(name); err != nil {
			t.Errorf("SchemeByName(%q): %v", name, err)
		}
	}
	if _, err := SchemeByName("letters"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		score, asked, want int
	}{
		{0, 0, 0},
		{7, 10, 70},
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 13},
		{10, 10, 100},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.score, tt.asked); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tt.score, tt.asked, got, tt.want)
		}
	}
}
