// Package config resolves the survey's runtime settings.
//
// Values are layered, lowest priority first: built-in defaults, the config
// file, a .env file in the working directory, POKEFIT_* environment
// variables, and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the survey reads.
const EnvPrefix = "POKEFIT"

// Keys shared by the config file, environment and flags.
const (
	KeyTheme       = "theme"
	KeyLabels      = "labels"
	KeyOutput      = "output"
	KeyLogFile     = "log-file"
	KeyLogLevel    = "log-level"
	KeyStrictSteps = "strict-steps"
	KeySkipSplash  = "skip-splash"
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Output formats for submitted answers.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputNone = "none"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all runtime settings.
type Config struct {
	// Theme selects the palette. "auto" asks the terminal.
	Theme string
	// LabelsFile overrides label text. Empty uses the embedded catalog.
	LabelsFile string
	// Output is the format submitted answers are printed in on exit.
	Output string
	// LogFile receives structured logs. Empty disables logging.
	LogFile  string
	LogLevel string
	// StrictSteps rejects steps-per-day values that are not a count.
	StrictSteps bool
	SkipSplash  bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:    ThemeAuto,
		Output:   OutputJSON,
		LogLevel: "info",
	}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// File is an explicit config file (yaml, json or toml by extension).
	File string
	// DotEnv is the .env file to load into the environment. Missing files
	// are ignored.
	DotEnv string
	// Flags, when set, override every other source for flags the user
	// actually passed.
	Flags *pflag.FlagSet
}

// Load builds a Config from defaults, files, environment and flags.
func Load(opts LoadOptions) (Config, error) {
	if opts.DotEnv != "" {
		// Existing environment variables win over .env entries.
		if err := godotenv.Load(opts.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", opts.DotEnv, err)
		}
	}

	v := newViper()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if opts.Flags != nil {
		for _, key := range allKeys {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	cfg := Config{
		Theme:       strings.ToLower(v.GetString(KeyTheme)),
		LabelsFile:  v.GetString(KeyLabels),
		Output:      strings.ToLower(v.GetString(KeyOutput)),
		LogFile:     v.GetString(KeyLogFile),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		StrictSteps: v.GetBool(KeyStrictSteps),
		SkipSplash:  v.GetBool(KeySkipSplash),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("%w: theme %q (want auto, dark or light)", ErrInvalid, c.Theme)
	}
	switch c.Output {
	case OutputJSON, OutputYAML, OutputNone:
	default:
		return fmt.Errorf("%w: output %q (want json, yaml or none)", ErrInvalid, c.Output)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

var allKeys = []string{KeyTheme, KeyLabels, KeyOutput, KeyLogFile, KeyLogLevel, KeyStrictSteps, KeySkipSplash}

func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault(KeyTheme, def.Theme)
	v.SetDefault(KeyLabels, def.LabelsFile)
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyLogFile, def.LogFile)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyStrictSteps, def.StrictSteps)
	v.SetDefault(KeySkipSplash, def.SkipSplash)

	// log-file is read from POKEFIT_LOG_FILE.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}
