// Package submission turns survey submissions into records and writes them
// out. Records are validated against an embedded JSON schema first.
package submission

import (
	"time"

	"github.com/google/uuid"

	"github.com/pokefit/pokefit/internal/survey"
)

// Record is a single submitted answer.
type Record struct {
	ID          string    `json:"id" yaml:"id"`
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
	Step        string    `json:"step" yaml:"step"`
	Choice      string    `json:"choice,omitempty" yaml:"choice,omitempty"`
	StepsPerDay *string   `json:"steps_per_day,omitempty" yaml:"steps_per_day,omitempty"`
	// StepsPerDayCount is set when the raw text parses as a count.
	StepsPerDayCount *int `json:"steps_per_day_count,omitempty" yaml:"steps_per_day_count,omitempty"`
}

// NewRecord builds a Record from a submission.
func NewRecord(sub survey.Submission, now time.Time) Record {
	rec := Record{
		ID:          uuid.New().String(),
		SubmittedAt: now.UTC(),
		Step:        sub.Step.String(),
		Choice:      sub.Choice,
	}
	if sub.Step == survey.GeneralHealth {
		raw := sub.StepsPerDay
		rec.StepsPerDay = &raw
		if n, err := survey.ParseStepsPerDay(raw); err == nil {
			rec.StepsPerDayCount = &n
		}
	}
	return rec
}
