// Package confirm shows the answer that was just submitted.
package confirm

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pokefit/pokefit/internal/labels"
	"github.com/pokefit/pokefit/internal/router"
	"github.com/pokefit/pokefit/internal/screen"
	"github.com/pokefit/pokefit/internal/submission"
	"github.com/pokefit/pokefit/internal/survey"
	"github.com/pokefit/pokefit/internal/ui/components"
	"github.com/pokefit/pokefit/internal/ui/layout"
	"github.com/pokefit/pokefit/internal/ui/theme"
)

// ConfirmScreen lists the fields of one submission record.
type ConfirmScreen struct {
	record submission.Record
	labels *labels.Catalog
}

var _ screen.Screen = (*ConfirmScreen)(nil)
var _ screen.KeyHintProvider = (*ConfirmScreen)(nil)
var _ screen.BackProvider = (*ConfirmScreen)(nil)

// New creates a ConfirmScreen for rec.
func New(rec submission.Record, cat *labels.Catalog) *ConfirmScreen {
	return &ConfirmScreen{record: rec, labels: cat}
}

func (c *ConfirmScreen) Init() tea.Cmd {
	return nil
}

func (c *ConfirmScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return c, nil
}

func (c *ConfirmScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: c.labels.Get(labels.ButtonBack)},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *ConfirmScreen) BackLabel() string {
	return c.labels.Get(labels.ButtonBack)
}

// Rows returns the label/value pairs shown for the record.
func (c *ConfirmScreen) Rows() [][2]string {
	rows := [][2]string{{c.labels.Get(labels.AnswerStep), c.stepLabel()}}
	if c.record.Choice != "" {
		rows = append(rows, [2]string{c.labels.Get(labels.AnswerChoice), c.labels.Get("option_" + c.record.Choice)})
	}
	if c.record.StepsPerDay != nil {
		value := *c.record.StepsPerDay
		if c.record.StepsPerDayCount != nil {
			value = fmt.Sprintf("%d", *c.record.StepsPerDayCount)
		}
		rows = append(rows, [2]string{c.labels.Get(labels.AnswerSteps), value})
	}
	return rows
}

func (c *ConfirmScreen) stepLabel() string {
	switch c.record.Step {
	case survey.TrainingImprovement.String():
		return c.labels.Get(labels.StepTraining)
	case survey.GeneralHealth.String():
		return c.labels.Get(labels.StepHealth)
	}
	return c.record.Step
}

func (c *ConfirmScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	keyStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.OnBackground).Bold(true)

	var lines []string
	for _, r := range c.Rows() {
		lines = append(lines, keyStyle.Render(r[0]+": ")+valStyle.Render(r[1]))
	}

	card := lipgloss.NewStyle().
		Width(cw).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Header.Render(c.labels.Get(labels.Thanks)),
		"",
		card,
	)
}
