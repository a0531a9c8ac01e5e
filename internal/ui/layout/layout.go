// Package layout draws the chrome around every screen: the header with
// the app name, screen title and scoreboard, and the footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sutticue/flashcard-game/internal/ui/theme"
)

// Minimum terminal size the quiz card and four options fit in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// hotStreak is the streak length at which the header flame turns hot.
const hotStreak = 5

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nThe cards need at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return Center(theme.Body.Render(msg), width, height)
}

// Status is the round scoreboard shown on the right of the header.
type Status struct {
	Score  int
	Asked  int
	Streak int
}

func (s *Status) render() string {
	if s == nil {
		return ""
	}
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d/%d", s.Score, s.Asked)),
	}
	if s.Streak > 0 {
		flame := theme.Accent
		if s.Streak >= hotStreak {
			flame = theme.Flame
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(flame).Bold(true).Render(fmt.Sprintf("🔥 %d", s.Streak)))
	}
	return strings.Join(parts, "   ")
}

// bar is the bordered strip used for both header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays out left, center and right across width cells, keeping
// center in the middle when there is room and at least one space
// between neighbours when there is not.
func spread(left, center, right string, width int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((width-cw)/2-lw, 1)
	rightGap := max(width-lw-leftGap-cw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderHeader renders the app name, the screen title and the scoreboard.
func RenderHeader(title string, status *Status, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  WordQuiz")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	return bar(spread(brand, center, status.render(), max(width-4, 0)), width)
}

// RenderFooter renders the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, sizing the content to
// fill whatever height the two bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// Center places s in the middle of a width x height box.
func Center(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
