package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/pokefit/pokefit/internal/ui/theme"
)

const bannerArt = `
 ██████╗  ██████╗ ██╗  ██╗███████╗███████╗██╗████████╗
 ██╔══██╗██╔═══██╗██║ ██╔╝██╔════╝██╔════╝██║╚══██╔══╝
 ██████╔╝██║   ██║█████╔╝ █████╗  █████╗  ██║   ██║
 ██╔═══╝ ██║   ██║██╔═██╗ ██╔══╝  ██╔══╝  ██║   ██║
 ██║     ╚██████╔╝██║  ██╗███████╗██║     ██║   ██║
 ╚═╝      ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝   ╚═╝`

const bannerCompact = "P O K E F I T"

// RenderBanner returns the PokeFit banner. Terminals narrower than the art
// get a spaced-out wordmark instead.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.OnBackground).
		Bold(true)

	if width < 58 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
