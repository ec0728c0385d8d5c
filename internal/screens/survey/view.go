package survey

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/pokefit/pokefit/internal/labels"
	flow "github.com/pokefit/pokefit/internal/survey"
	"github.com/pokefit/pokefit/internal/ui/components"
	"github.com/pokefit/pokefit/internal/ui/layout"
	"github.com/pokefit/pokefit/internal/ui/theme"
)

func (s *SurveyScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	if !layout.IsCompactHeight(height) {
		sections = append(sections, components.RenderLogo())
	}

	switch s.shown {
	case flow.GeneralHealth:
		sections = append(sections,
			theme.Question.Width(cw).Render(s.labels.Get(labels.StepsQuestion)),
			s.input.View(cw-4),
			components.NewButton(s.labels.Get(labels.ButtonOK), strings.TrimSpace(s.input.Value()) != "").View(),
		)
	default:
		sections = append(sections,
			theme.Question.Width(cw).Render(s.labels.Get(labels.MainQuestion)),
			s.menu.View(cw),
		)
	}

	if s.errMsg != "" {
		sections = append(sections, theme.ErrorText.Width(cw).Align(lipgloss.Center).Render(s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, interleave(sections, "")...)
	if s.fade > 0 {
		return fadeContent(content, s.fadeColor())
	}
	return content
}

// fadeColor blends from the background toward the text color as the fade
// runs out.
func (s *SurveyScreen) fadeColor() color.Color {
	p := theme.Current()
	progress := 1 - float64(s.fade)/float64(fadeFrames+1)
	return theme.Blend(p.Background, p.OnBackground, progress)
}

// fadeContent redraws content in a single color. Styling of the individual
// widgets is dropped for the few frames the fade lasts.
func fadeContent(content string, c color.Color) string {
	return lipgloss.NewStyle().Foreground(c).Render(ansi.Strip(content))
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
