package confirm

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokefit/pokefit/internal/labels"
	"github.com/pokefit/pokefit/internal/router"
	"github.com/pokefit/pokefit/internal/submission"
	"github.com/pokefit/pokefit/internal/survey"
)

func TestRowsTraining(t *testing.T) {
	rec := submission.NewRecord(survey.Submission{Step: survey.TrainingImprovement, Choice: survey.OptionVelocity}, time.Now())
	c := New(rec, labels.Default())

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, [2]string{"Goal", "Improve my training"}, rows[0])
	assert.Equal(t, [2]string{"Focus", "Speed"}, rows[1])
}

func TestRowsGeneralHealth(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"5,000", "5000"},
		{"a lot", "a lot"},
	}
	for _, tt := range tests {
		rec := submission.NewRecord(survey.Submission{Step: survey.GeneralHealth, StepsPerDay: tt.raw}, time.Now())
		rows := New(rec, labels.Default()).Rows()
		require.Len(t, rows, 2)
		assert.Equal(t, "Leave a sedentary lifestyle", rows[0][1])
		assert.Equal(t, tt.want, rows[1][1])
	}
}

func TestViewShowsThanks(t *testing.T) {
	rec := submission.NewRecord(survey.Submission{Step: survey.TrainingImprovement, Choice: survey.OptionStrength}, time.Now())
	view := New(rec, labels.Default()).View(80, 24)
	assert.True(t, strings.Contains(view, "Thanks!"))
	assert.True(t, strings.Contains(view, "Strength"))
}

func TestEnterPops(t *testing.T) {
	rec := submission.NewRecord(survey.Submission{Step: survey.TrainingImprovement, Choice: survey.OptionStrength}, time.Now())
	c := New(rec, labels.Default())

	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)

	_, cmd = c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}
