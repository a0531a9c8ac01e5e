package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/ui/components"
	"github.com/sutticue/flashcard-game/internal/ui/layout"
	"github.com/sutticue/flashcard-game/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.ctrl == nil || s.ctrl.Question() == nil:
		return layout.Center(theme.Hint.Render("Shuffling cards..."), width, height)
	case s.confirmQuit:
		return renderQuitConfirm(width, height, s.ctrl.State())
	}
	return s.renderQuestion(width)
}

func (s *Screen) renderQuestion(width int) string {
	st := s.ctrl.State()
	q := s.ctrl.Question()
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Level and streak line.
	left := theme.Subtitle.Render(levelLine(string(q.Level), q.PartOfSpeech))
	right := renderBanner(round.BannerFor(st.Streak))
	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, left+strings.Repeat(" ", gap)+right))
	b.WriteString("\n")

	bar := components.NewProgressBar("", st.Asked, s.ctrl.Config().RoundLength, cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Flashcard.
	card := theme.Word.Render(q.TargetWord)
	if s.result != nil && !s.result.Correct && q.Definition != "" {
		card += "\n\n" + theme.Hint.Render(q.Definition)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(card, cw)))
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(width))
	b.WriteString("\n\n")

	if s.feedback != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.feedbackStyle().Render(s.feedback)))
		b.WriteString("\n")
	}
	if s.toast != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.MegaStreak.Render(s.toast)))
	}

	return b.String()
}

func (s *Screen) feedbackStyle() lipgloss.Style {
	switch {
	case s.result == nil:
		return theme.Hint
	case s.result.Correct:
		return theme.Correct
	default:
		return theme.Incorrect
	}
}

func levelLine(level, pos string) string {
	if pos == "" {
		return "Level " + level
	}
	return fmt.Sprintf("Level %s · %s", level, pos)
}

func renderBanner(b round.StreakBanner) string {
	if !b.Visible {
		return ""
	}
	if b.Mega {
		return theme.MegaStreak.Render(fmt.Sprintf("🔥 %d STREAK", b.Count))
	}
	return theme.Streak.Render(fmt.Sprintf("🔥 %d", b.Count))
}

func renderQuitConfirm(width, height int, st round.State) string {
	body := theme.Title.Render("End this round?") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Score so far: %d/%d", st.Score, st.Asked)) + "\n\n" +
		theme.Hint.Render("Y to end · N to keep going")
	return layout.Center(theme.Dialog.Render(body), width, height)
}

func renderError(width, height int, msg string) string {
	body := theme.Incorrect.Render("Round error") + "\n\n" +
		theme.Body.Render(msg) + "\n\n" +
		theme.Hint.Render("Press any key to go back")
	return layout.Center(body, width, height)
}
