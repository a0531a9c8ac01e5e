package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sutticue/flashcard-game/internal/ui/components"
	"github.com/sutticue/flashcard-game/internal/ui/theme"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

// deckStats is the dataset overview shown under the title.
type deckStats struct {
	total       int
	byLevel     map[vocab.Level]int
	levels      []vocab.Level
	roundLength int
	strategy    string
}

func newDeckStats(opts Options) deckStats {
	st := deckStats{
		roundLength: opts.RoundLength,
		strategy:    opts.Strategy,
	}
	if opts.Words != nil {
		st.total = opts.Words.Len()
		st.byLevel = opts.Words.CountByLevel()
		st.levels = opts.Words.Levels().Sorted()
	}
	return st
}

func renderTitle(cw int, compact bool) string {
	title := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.Banner(compact))

	sub := theme.Subtitle.Width(cw).Render("English → Thai flashcards")
	return title + "\n" + sub
}

func renderDeckStats(st deckStats, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(st.levels))
	for _, l := range st.levels {
		parts = append(parts, fmt.Sprintf("%s %s",
			dimStyle.Render(string(l)),
			countStyle.Render(fmt.Sprint(st.byLevel[l]))))
	}

	lines := []string{
		countStyle.Render(fmt.Sprintf("%d WORDS", st.total)) + "  " + strings.Join(parts, "  "),
	}
	if !compact && st.roundLength > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("%d questions per round · %s distractors", st.roundLength, st.strategy)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
