// Package survey renders the onboarding survey and forwards key presses to
// the flow controller as user intent.
package survey

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/pokefit/pokefit/internal/labels"
	"github.com/pokefit/pokefit/internal/screen"
	flow "github.com/pokefit/pokefit/internal/survey"
	"github.com/pokefit/pokefit/internal/ui/components"
	"github.com/pokefit/pokefit/internal/ui/layout"
)

const (
	fadeFrames   = 5
	fadeInterval = 40 * time.Millisecond

	stepsCharLimit = 12
)

// SurveyScreen displays the active survey step.
type SurveyScreen struct {
	ctrl   *flow.Controller
	labels *labels.Catalog

	shown       flow.Step // step the widgets were built for
	stepChanged bool
	unsubscribe func()
	menu        components.Menu
	input       components.TextInput
	fade        int
	errMsg      string
}

var _ screen.Screen = (*SurveyScreen)(nil)
var _ screen.KeyHintProvider = (*SurveyScreen)(nil)
var _ screen.BackProvider = (*SurveyScreen)(nil)
var _ screen.Resumer = (*SurveyScreen)(nil)

// New creates a SurveyScreen driving ctrl.
func New(ctrl *flow.Controller, cat *labels.Catalog) *SurveyScreen {
	s := &SurveyScreen{
		ctrl:   ctrl,
		labels: cat,
		input:  components.NewTextInput(cat.Get(labels.StepsNumber), "0", stepsCharLimit),
	}
	s.build(ctrl.Current())
	s.unsubscribe = ctrl.OnChange(func(st flow.State) {
		if st.Current != s.shown {
			s.stepChanged = true
		}
	})
	return s
}

func (s *SurveyScreen) Init() tea.Cmd {
	return s.focusCmd()
}

func (s *SurveyScreen) Resume() tea.Cmd {
	return s.focusCmd()
}

// Close stops following the controller. The screen keeps showing the last
// step it was built for.
func (s *SurveyScreen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *SurveyScreen) BackLabel() string {
	if s.shown == flow.Initial {
		return ""
	}
	return s.labels.Get(labels.ButtonBack)
}

func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	switch s.shown {
	case flow.GeneralHealth:
		return []layout.KeyHint{
			hintAs(keys.Select, s.labels.Get(labels.ButtonOK)),
			hint(keys.Back),
			hint(keys.Quit),
		}
	case flow.TrainingImprovement:
		return []layout.KeyHint{hint(keys.Up), hint(keys.Select), hint(keys.Back), hint(keys.Quit)}
	default:
		return []layout.KeyHint{hint(keys.Up), hint(keys.Select), hint(keys.Quit)}
	}
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Catch up with changes made outside this screen before handling input.
	pending := s.syncStep()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case fadeTickMsg:
		if pending != nil {
			// A new fade just started with its own tick.
			return s, pending
		}
		if s.fade > 0 {
			s.fade--
		}
		if s.fade > 0 {
			return s, fadeTick()
		}
		return s, nil

	case tea.KeyPressMsg:
		cmd = s.handleKey(msg)

	default:
		if s.shown == flow.GeneralHealth {
			cmd = s.updateInput(msg)
		}
	}

	return s, tea.Batch(pending, cmd, s.syncStep())
}

func (s *SurveyScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, keys.Back) {
		s.errMsg = ""
		s.ctrl.BackPressed()
		return nil
	}

	if s.shown == flow.GeneralHealth {
		if key.Matches(msg, keys.Select) {
			return s.selectOption(flow.OptionConfirm)
		}
		return s.updateInput(msg)
	}

	if key.Matches(msg, keys.Select) {
		return s.selectOption(s.menu.SelectedID())
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return cmd
}

// updateInput feeds msg to the steps field and reports any edit, typed or
// pasted, to the controller.
func (s *SurveyScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v, _ := s.ctrl.StepsPerDay(); v != s.input.Value() {
		s.errMsg = ""
		s.ctrl.TextChanged(s.input.Value())
	}
	return cmd
}

func (s *SurveyScreen) selectOption(id string) tea.Cmd {
	step := s.ctrl.Current()
	submits := false
	for _, o := range flow.OptionsFor(step) {
		if o.ID == id {
			submits = o.Submits()
		}
	}

	handled, err := s.ctrl.SelectOption(id)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	if !handled || !submits {
		return nil
	}

	sub := flow.Submission{Step: step, Choice: id}
	if step == flow.GeneralHealth {
		v, _ := s.ctrl.StepsPerDay()
		sub = flow.Submission{Step: step, StepsPerDay: v}
	}
	return func() tea.Msg { return SubmittedMsg{Submission: sub} }
}

// syncStep rebuilds the widgets after the controller reported a step change
// and starts the fade.
func (s *SurveyScreen) syncStep() tea.Cmd {
	if !s.stepChanged {
		return nil
	}
	s.stepChanged = false
	s.build(s.ctrl.Current())
	s.fade = fadeFrames
	return tea.Batch(fadeTick(), s.focusCmd())
}

func (s *SurveyScreen) build(step flow.Step) {
	s.shown = step

	opts := flow.OptionsFor(step)
	items := make([]components.MenuItem, 0, len(opts))
	for _, o := range opts {
		items = append(items, components.MenuItem{
			ID:    o.ID,
			Label: s.labels.Get(o.LabelKey),
		})
	}
	s.menu = components.NewMenu(items)

	if step == flow.GeneralHealth {
		v, _ := s.ctrl.StepsPerDay()
		s.input.SetValue(v)
	} else {
		s.input.Blur()
	}
}

func (s *SurveyScreen) focusCmd() tea.Cmd {
	if s.shown != flow.GeneralHealth {
		return nil
	}
	return s.input.Focus()
}

func fadeTick() tea.Cmd {
	return tea.Tick(fadeInterval, func(t time.Time) tea.Msg {
		return fadeTickMsg(t)
	})
}
