package components

import (
	"charm.land/lipgloss/v2"

	"github.com/sutticue/flashcard-game/internal/ui/theme"
)

const bannerArt = `╦ ╦╔═╗╦═╗╔╦╗  ╔═╗ ╦ ╦╦╔═╗
║║║║ ║╠╦╝ ║║  ║═╬╗║ ║║╔═╝
╚╩╝╚═╝╩╚══╩╝  ╚═╝╚╚═╝╩╚═╝`

const bannerCompact = "W · O · R · D · Q · U · I · Z"

// Banner returns the title art in the primary color, or a one-line
// fallback when compact.
func Banner(compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
