package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/sambit/prepdrill/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗ ██╗██╗     ██╗
 ██╔══██╗██╔══██╗██║██║     ██║
 ██║  ██║██████╔╝██║██║     ██║
 ██║  ██║██╔══██╗██║██║     ██║
 ██████╔╝██║  ██║██║███████╗███████╗
 ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

const bannerPrefix = "P R E P"

const bannerCompact = "P R E P D R I L L"

// RenderBanner returns the PREPDRILL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}

	prefix := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(" " + bannerPrefix)

	return prefix + style.Render(bannerArt)
}
