package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"THEME", "LABELS", "OUTPUT", "LOG_FILE", "LOG_LEVEL", "STRICT_STEPS", "SKIP_SPLASH"} {
		t.Setenv(EnvPrefix+"_"+k, "")
		os.Unsetenv(EnvPrefix + "_" + k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("POKEFIT_THEME", "Light")
	t.Setenv("POKEFIT_OUTPUT", "yaml")
	t.Setenv("POKEFIT_LOG_FILE", "/tmp/pokefit.log")
	t.Setenv("POKEFIT_STRICT_STEPS", "true")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "/tmp/pokefit.log", cfg.LogFile)
	assert.True(t, cfg.StrictSteps)
}

func TestLoadFilePrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "pokefit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\noutput: none\nskip-splash: true\n"), 0o644))

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, OutputNone, cfg.Output)
	assert.True(t, cfg.SkipSplash)

	// Environment beats the file.
	t.Setenv("POKEFIT_OUTPUT", "json")
	cfg, err = Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoadFlagsWin(t *testing.T) {
	clearEnv(t)
	t.Setenv("POKEFIT_THEME", "light")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyTheme, ThemeAuto, "")
	fs.Bool(KeyStrictSteps, false, "")
	require.NoError(t, fs.Parse([]string{"--theme", "dark"}))

	cfg, err := Load(LoadOptions{Flags: fs})
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.False(t, cfg.StrictSteps)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("POKEFIT_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("POKEFIT_LOG_LEVEL") })

	cfg, err := Load(LoadOptions{DotEnv: envPath})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = Load(LoadOptions{DotEnv: filepath.Join(dir, "missing.env")})
	assert.NoError(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("POKEFIT_THEME", "neon")

	_, err := Load(LoadOptions{})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad output", func(c *Config) { c.Output = "xml" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"light", func(c *Config) { c.Theme = ThemeLight }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
