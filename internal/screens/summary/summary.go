package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sutticue/flashcard-game/internal/round"
	"github.com/sutticue/flashcard-game/internal/router"
	"github.com/sutticue/flashcard-game/internal/screen"
	"github.com/sutticue/flashcard-game/internal/ui/components"
	"github.com/sutticue/flashcard-game/internal/ui/layout"
	"github.com/sutticue/flashcard-game/internal/ui/theme"
)

const (
	buttonPlayAgain = iota
	buttonHome
)

// SummaryScreen displays the end-of-round report.
type SummaryScreen struct {
	summary   round.Summary
	playAgain func() tea.Cmd
	selected  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. playAgain starts a fresh round; when
// nil the play-again button is hidden.
func New(sum round.Summary, playAgain func() tea.Cmd) *SummaryScreen {
	s := &SummaryScreen{summary: sum, playAgain: playAgain}
	if playAgain == nil {
		s.selected = buttonHome
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	h := []layout.KeyHint{{Key: "Enter", Description: "Select"}}
	if s.playAgain != nil {
		h = append(h, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return append(h, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "right", "tab", "up", "down", "h", "l":
		if s.playAgain != nil {
			s.selected = 1 - s.selected
		}
	case "r":
		if s.playAgain != nil {
			return s, s.playAgain()
		}
	case "enter":
		if s.selected == buttonPlayAgain && s.playAgain != nil {
			return s, s.playAgain()
		}
		return s, router.Home()
	case "esc":
		return s, router.Pop()
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder

	heading := "Round complete!"
	if sum.Quit {
		heading = "Round ended early"
	}
	b.WriteString(theme.Title.Width(cw).Render(heading))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(outcomeColor(sum.Outcome.Tier)).
		Bold(true).
		Render(sum.Outcome.Label))
	b.WriteString("\n\n")

	stats := []string{
		fmt.Sprintf("Score       %d / %d", sum.Score, sum.Asked),
		fmt.Sprintf("Accuracy    %d%%", sum.Accuracy),
		fmt.Sprintf("Best streak %d", sum.BestStreak),
		fmt.Sprintf("Time        %s", formatDuration(sum)),
	}
	if sum.Asked < sum.RoundLength {
		stats = append(stats, fmt.Sprintf("Answered    %d of %d", sum.Asked, sum.RoundLength))
	}
	b.WriteString(components.Card(theme.Body.Render(strings.Join(stats, "\n")), cw))
	b.WriteString("\n\n")

	var buttons []string
	bw := cw/2 - 1
	if s.playAgain != nil {
		buttons = append(buttons, components.Button("PLAY AGAIN", s.selected == buttonPlayAgain, bw))
	}
	buttons = append(buttons, components.Button("HOME", s.selected == buttonHome, bw))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	return layout.Center(b.String(), width, height)
}

func formatDuration(sum round.Summary) string {
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func outcomeColor(t round.Tier) color.Color {
	switch t {
	case round.TierTop:
		return theme.Accent
	case round.TierHigh:
		return theme.Success
	case round.TierMid:
		return theme.Secondary
	default:
		return theme.TextDim
	}
}
