package survey

import "fmt"

// Step is one screen of the survey flow.
type Step int

const (
	Initial Step = iota
	TrainingImprovement
	GeneralHealth
)

var stepNames = map[Step]string{
	Initial:             "initial",
	TrainingImprovement: "training_improvement",
	GeneralHealth:       "general_health",
}

// Steps lists every step in declaration order.
func Steps() []Step {
	return []Step{Initial, TrainingImprovement, GeneralHealth}
}

// String returns the stable identifier of the step.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Valid reports whether s is one of the defined steps.
func (s Step) Valid() bool {
	_, ok := stepNames[s]
	return ok
}

// ParseStep converts a stable identifier back into a Step.
func ParseStep(name string) (Step, error) {
	for s, n := range stepNames {
		if n == name {
			return s, nil
		}
	}
	return Initial, fmt.Errorf("unknown survey step %q", name)
}
