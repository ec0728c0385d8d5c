package survey

import (
	"time"

	flow "github.com/pokefit/pokefit/internal/survey"
)

// fadeTickMsg advances the step transition.
type fadeTickMsg time.Time

// SubmittedMsg is emitted after the submit hook accepted a submission.
type SubmittedMsg struct {
	Submission flow.Submission
}
