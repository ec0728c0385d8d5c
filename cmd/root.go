package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pokefit/pokefit/internal/config"
	"github.com/pokefit/pokefit/internal/labels"
	"github.com/pokefit/pokefit/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:          "pokefit",
	Short:        "PokeFit onboarding survey",
	Long:         "PokeFit asks what you want to achieve and prints your answers when you quit.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (yaml, json or toml)")
	flags.String(config.KeyTheme, config.ThemeAuto, "Color theme: auto, dark or light")
	flags.String(config.KeyLabels, "", "YAML file overriding label text")
	flags.String(config.KeyOutput, config.OutputJSON, "Format answers are printed in on exit: json, yaml or none")
	flags.String(config.KeyLogFile, "", "Write structured logs to this file")
	flags.String(config.KeyLogLevel, "info", "Log level: debug, info, warn or error")
	flags.Bool(config.KeyStrictSteps, false, "Require steps per day to be a whole number")
	flags.Bool(config.KeySkipSplash, false, "Start directly on the survey")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(labelsCmd)
}

// loadConfig resolves settings from --config, .env, POKEFIT_* and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		File:   file,
		DotEnv: ".env",
		Flags:  cmd.Flags(),
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadLabels returns the embedded catalog merged with the override file.
func loadLabels(cfg config.Config) (*labels.Catalog, error) {
	if cfg.LabelsFile == "" {
		return labels.Default(), nil
	}
	cat, err := labels.Load(cfg.LabelsFile)
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	return cat, nil
}

// setupLogging installs the file logger. The returned func closes it.
func setupLogging(cfg config.Config) (func(), error) {
	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close log file:", err)
		}
	}, nil
}

func logStart(cfg config.Config) {
	slog.Info("pokefit starting",
		"version", version,
		"theme", cfg.Theme,
		"output", cfg.Output,
		"strict_steps", cfg.StrictSteps,
	)
}
