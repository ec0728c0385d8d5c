package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pokefit/pokefit/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for survey sections.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 8
	if w > 48 {
		w = 48
	}
	if w < 20 {
		w = 20
	}
	return w
}

// SurveyButton renders a pill-shaped option button: label on the left and
// a forward arrow on the right.
func SurveyButton(label string, selected bool, width int) string {
	inner := width - 4
	if inner < lipgloss.Width(label)+2 {
		inner = lipgloss.Width(label) + 2
	}
	gap := inner - lipgloss.Width(label) - 1
	content := label + strings.Repeat(" ", gap) + "→"

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.OnPrimary).
			Background(theme.Primary).
			BorderForeground(theme.Primary).
			Render(content)
	}
	return style.
		Foreground(theme.OnBackground).
		BorderForeground(theme.Border).
		Render(content)
}

// Pokeball is the small logo drawn under the header.
const Pokeball = ` ▄███▄
██▀▀▀██
▀█▄●▄█▀
 ▀███▀`

// RenderLogo renders the pokeball logo. The top half takes the accent color.
func RenderLogo() string {
	lines := strings.Split(Pokeball, "\n")
	top := lipgloss.NewStyle().Foreground(theme.Error)
	bottom := lipgloss.NewStyle().Foreground(theme.OnBackground)
	for i, l := range lines {
		if i < len(lines)/2 {
			lines[i] = top.Render(l)
		} else {
			lines[i] = bottom.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
