package app

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokefit/pokefit/internal/config"
	"github.com/pokefit/pokefit/internal/router"
	"github.com/pokefit/pokefit/internal/screens/confirm"
	surveyscreen "github.com/pokefit/pokefit/internal/screens/survey"
	"github.com/pokefit/pokefit/internal/screens/welcome"
	"github.com/pokefit/pokefit/internal/submission"
	"github.com/pokefit/pokefit/internal/survey"
)

func testOptions(strict bool) Options {
	cfg := config.DefaultConfig()
	cfg.Theme = config.ThemeDark
	cfg.SkipSplash = true
	cfg.StrictSteps = strict
	return Options{Config: cfg, Recorder: submission.NewRecorder()}
}

func TestSubmitHookRecords(t *testing.T) {
	opts := testOptions(false)
	hook := submitHook(opts)

	require.NoError(t, hook(survey.Submission{Step: survey.GeneralHealth, StepsPerDay: "lots"}))

	rec, ok := opts.Recorder.Last()
	require.True(t, ok)
	assert.Equal(t, "general_health", rec.Step)
	require.NotNil(t, rec.StepsPerDay)
	assert.Equal(t, "lots", *rec.StepsPerDay)
	assert.Nil(t, rec.StepsPerDayCount)
}

func TestSubmitHookStrictRejects(t *testing.T) {
	opts := testOptions(true)
	hook := submitHook(opts)

	err := hook(survey.Submission{Step: survey.GeneralHealth, StepsPerDay: "lots"})
	var verr *survey.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, survey.ValidationNonNumeric, verr.Kind)
	assert.Empty(t, opts.Recorder.Records())

	require.NoError(t, hook(survey.Submission{Step: survey.GeneralHealth, StepsPerDay: "8000"}))
	assert.Len(t, opts.Recorder.Records(), 1)
}

func TestSplashIsFirstScreen(t *testing.T) {
	opts := testOptions(false)
	opts.Config.SkipSplash = false
	m := newAppModel(opts)
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)

	opts.Config.SkipSplash = true
	m = newAppModel(opts)
	_, ok = m.router.Active().(*surveyscreen.SurveyScreen)
	assert.True(t, ok)
}

func TestSubmittedPushesConfirm(t *testing.T) {
	opts := testOptions(false)
	m := newAppModel(opts)

	// Nothing recorded yet.
	_, cmd := m.Update(surveyscreen.SubmittedMsg{})
	assert.Nil(t, cmd)

	sub := survey.Submission{Step: survey.TrainingImprovement, Choice: survey.OptionStrength}
	require.NoError(t, submitHook(opts)(sub))

	_, cmd = m.Update(surveyscreen.SubmittedMsg{Submission: sub})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*confirm.ConfirmScreen)
	assert.True(t, ok)

	m.Update(push)
	assert.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok = cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(false))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)

	// The survey screen no longer follows the controller after quitting.
	m.ctrl.GoTo(survey.GeneralHealth)
	assert.Empty(t, m.surveyScreen.BackLabel())
	m.surveyScreen.Update(tea.WindowSizeMsg{})
	assert.Empty(t, m.surveyScreen.BackLabel())
}

func TestWindowSize(t *testing.T) {
	m := newAppModel(testOptions(false))
	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	am := model.(AppModel)
	assert.Equal(t, 100, am.width)
	assert.Equal(t, 40, am.height)
}
