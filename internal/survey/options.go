package survey

// Option ids offered by the survey steps.
const (
	OptionExitSedentary   = "exit_sedentary"
	OptionImproveTraining = "improve_training"
	OptionVelocity        = "velocity"
	OptionStrength        = "strength"
	OptionResistance      = "resistance"
	OptionConfirm         = "confirm"
)

// Option is a selectable action on a step.
type Option struct {
	ID       string
	LabelKey string
	// Target is the step the option leads to. Options without a target
	// submit instead of transitioning.
	Target *Step
}

// Submits reports whether selecting the option triggers the submit hook.
func (o Option) Submits() bool {
	return o.Target == nil
}

func stepPtr(s Step) *Step { return &s }

var stepOptions = map[Step][]Option{
	Initial: {
		{ID: OptionExitSedentary, LabelKey: "option_exit_sedentary", Target: stepPtr(GeneralHealth)},
		{ID: OptionImproveTraining, LabelKey: "option_improve_training", Target: stepPtr(TrainingImprovement)},
	},
	TrainingImprovement: {
		{ID: OptionVelocity, LabelKey: "option_velocity"},
		{ID: OptionStrength, LabelKey: "option_strength"},
		{ID: OptionResistance, LabelKey: "option_resistance"},
	},
	GeneralHealth: {
		{ID: OptionConfirm, LabelKey: "button_ok"},
	},
}

// OptionsFor returns the options offered on step, in display order.
func OptionsFor(step Step) []Option {
	opts := stepOptions[step]
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

func findOption(step Step, id string) (Option, bool) {
	for _, o := range stepOptions[step] {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
