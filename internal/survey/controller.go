// Package survey holds the onboarding survey flow: the active step, the
// transitions between steps and the data collected on each of them.
package survey

// Controller owns the survey state and mediates every transition.
// It is not safe for concurrent use; callers drive it from the UI loop.
type Controller struct {
	state     State
	submit    SubmitFunc
	listeners map[int]func(State)
	nextID    int
}

// NewController creates a controller positioned on the Initial step.
// submit may be nil, in which case Submit does nothing.
func NewController(submit SubmitFunc) *Controller {
	return &Controller{
		state:     State{Current: Initial},
		submit:    submit,
		listeners: make(map[int]func(State)),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the active step.
func (c *Controller) Current() Step {
	return c.state.Current
}

// StepsPerDay returns the captured text and whether it was ever set.
func (c *Controller) StepsPerDay() (string, bool) {
	return c.state.StepsPerDay, c.state.StepsPerDaySet
}

// OnChange registers fn to be called after every mutation that changed the
// state. The returned func removes the listener.
func (c *Controller) OnChange(fn func(State)) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// GoTo makes step the active step. Any step is reachable from any other.
func (c *Controller) GoTo(step Step) {
	if !step.Valid() || step == c.state.Current {
		return
	}
	c.state.Current = step
	c.notify()
}

// GoBack returns to the Initial step regardless of the current one.
func (c *Controller) GoBack() {
	c.GoTo(Initial)
}

// SetStepsPerDay overwrites the captured steps-per-day text as-is.
func (c *Controller) SetStepsPerDay(value string) {
	if c.state.StepsPerDaySet && c.state.StepsPerDay == value {
		return
	}
	c.state.StepsPerDay = value
	c.state.StepsPerDaySet = true
	c.notify()
}

// Submit hands the collected data to the submit hook. It never changes the
// active step.
func (c *Controller) Submit(choice string) error {
	if c.submit == nil {
		return nil
	}
	sub := Submission{Step: c.state.Current, Choice: choice}
	if c.state.Current == GeneralHealth {
		sub.StepsPerDay = c.state.StepsPerDay
	}
	return c.submit(sub)
}

// Options returns the options offered on the active step.
func (c *Controller) Options() []Option {
	return OptionsFor(c.state.Current)
}

// SelectOption applies the option with the given id on the active step.
// Options that the active step does not offer are ignored and reported as
// not handled.
func (c *Controller) SelectOption(id string) (bool, error) {
	opt, ok := findOption(c.state.Current, id)
	if !ok {
		return false, nil
	}
	if opt.Target != nil {
		c.GoTo(*opt.Target)
		return true, nil
	}
	choice := opt.ID
	if c.state.Current == GeneralHealth {
		choice = ""
	}
	return true, c.Submit(choice)
}

// TextChanged records new text from the steps-per-day field.
func (c *Controller) TextChanged(value string) {
	c.SetStepsPerDay(value)
}

// BackPressed handles the back affordance.
func (c *Controller) BackPressed() {
	c.GoBack()
}

func (c *Controller) notify() {
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			fn(c.state)
		}
	}
}
