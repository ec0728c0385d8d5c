package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pokefit/pokefit/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 22

	// CompactHeightThreshold is the content height below which screens drop
	// decorative art. The header and footer take six rows of the terminal.
	CompactHeightThreshold = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight returns true if the content area is too short for the logo.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.OnBackground).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the top bar: app name on the left, back affordance
// on the right when back is non-empty.
func RenderHeader(appName, back string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.OnBackground).
		Bold(true).
		Render("  " + appName)

	right := ""
	if back != "" {
		right = lipgloss.NewStyle().
			Foreground(theme.OnBackground).
			Render("← " + back + "  ")
	}

	innerWidth := width - 2
	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.OnBackground).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render("  " + strings.Join(parts, "   "))
}

// RenderGradient paints a vertical background gradient from the palette's
// background color to its secondary color behind content.
func RenderGradient(content string, width, height int) string {
	if height <= 0 {
		return ""
	}
	p := theme.Current()
	colors := theme.Gradient(p.Background, p.Secondary, height)

	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = lipgloss.NewStyle().
			Width(width).
			MaxWidth(width).
			Background(colors[i]).
			Render(line)
	}
	return strings.Join(out, "\n")
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	placed := lipgloss.Place(width, contentHeight, lipgloss.Center, lipgloss.Center, content)
	return header + "\n" + RenderGradient(placed, width, contentHeight) + "\n" + footer
}
