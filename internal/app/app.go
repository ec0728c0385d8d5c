package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pokefit/pokefit/internal/config"
	"github.com/pokefit/pokefit/internal/labels"
	"github.com/pokefit/pokefit/internal/router"
	"github.com/pokefit/pokefit/internal/screen"
	"github.com/pokefit/pokefit/internal/screens/confirm"
	surveyscreen "github.com/pokefit/pokefit/internal/screens/survey"
	"github.com/pokefit/pokefit/internal/screens/welcome"
	"github.com/pokefit/pokefit/internal/submission"
	"github.com/pokefit/pokefit/internal/survey"
	"github.com/pokefit/pokefit/internal/ui/layout"
	"github.com/pokefit/pokefit/internal/ui/theme"
)

// Options holds the dependencies for the app.
type Options struct {
	Config   config.Config
	Labels   *labels.Catalog
	Recorder *submission.Recorder
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router       *router.Router
	opts         Options
	ctrl         *survey.Controller
	surveyScreen *surveyscreen.SurveyScreen
	width        int
	height       int
}

// newAppModel wires the survey controller to the recorder and builds the
// initial screen stack.
func newAppModel(opts Options) AppModel {
	if opts.Labels == nil {
		opts.Labels = labels.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = submission.NewRecorder()
	}

	switch opts.Config.Theme {
	case config.ThemeDark:
		theme.UseDark(true)
	case config.ThemeLight:
		theme.UseDark(false)
	}

	ctrl := survey.NewController(submitHook(opts))
	ctrl.OnChange(func(st survey.State) {
		slog.Debug("survey state changed", "step", st.Current.String(), "steps_set", st.StepsPerDaySet)
	})

	surveyScreen := surveyscreen.New(ctrl, opts.Labels)
	var first screen.Screen = surveyScreen
	if !opts.Config.SkipSplash {
		first = welcome.New(func() screen.Screen { return surveyScreen }, opts.Labels.Get(labels.Tagline))
	}

	return AppModel{
		router:       router.New(first),
		opts:         opts,
		ctrl:         ctrl,
		surveyScreen: surveyScreen,
	}
}

// submitHook is the effect run when the survey submits: optional strict
// validation of the steps count, then recording.
func submitHook(opts Options) survey.SubmitFunc {
	return func(sub survey.Submission) error {
		if opts.Config.StrictSteps && sub.Step == survey.GeneralHealth {
			if _, err := survey.ParseStepsPerDay(sub.StepsPerDay); err != nil {
				slog.Info("submission rejected", "step", sub.Step.String(), "err", err)
				return err
			}
		}
		rec, err := opts.Recorder.Record(sub)
		if err != nil {
			slog.Error("record submission", "step", sub.Step.String(), "err", err)
			return fmt.Errorf("record submission: %w", err)
		}
		slog.Info("submission recorded", "id", rec.ID, "step", rec.Step, "choice", rec.Choice)
		return nil
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.opts.Config.Theme == config.ThemeAuto || m.opts.Config.Theme == "" {
		cmds = append(cmds, tea.RequestBackgroundColor)
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BackgroundColorMsg:
		theme.UseDark(msg.IsDark())
		slog.Debug("terminal background detected", "dark", msg.IsDark())
		return m, nil

	case surveyscreen.SubmittedMsg:
		rec, ok := m.opts.Recorder.Last()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: confirm.New(rec, m.opts.Labels)}
		}

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.surveyScreen.Close()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	back := ""
	if bp, ok := active.(screen.BackProvider); ok {
		back = bp.BackLabel()
	}
	header := layout.RenderHeader(m.opts.Labels.Get(labels.Header), back, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
