package survey

// State is the data the survey holds while it is mounted.
type State struct {
	Current Step

	// StepsPerDay is the raw text typed on the general health step.
	// It is kept when the user navigates away.
	StepsPerDay    string
	StepsPerDaySet bool
}

// Submission is what the submit hook receives.
type Submission struct {
	Step Step
	// Choice is the selected option id on the training step.
	Choice string
	// StepsPerDay is only filled for the general health step.
	StepsPerDay string
}

// SubmitFunc is the effect a caller attaches to the survey's submit actions.
type SubmitFunc func(Submission) error
