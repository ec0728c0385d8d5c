package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pokefit/pokefit/internal/app"
	"github.com/pokefit/pokefit/internal/config"
	"github.com/pokefit/pokefit/internal/submission"
)

// runApp loads settings, launches the TUI and prints the recorded answers
// once it exits.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logStart(cfg)

	cat, err := loadLabels(cfg)
	if err != nil {
		return err
	}

	recorder := submission.NewRecorder()
	if err := app.Run(app.Options{
		Config:   cfg,
		Labels:   cat,
		Recorder: recorder,
	}); err != nil {
		return err
	}

	return printRecords(cmd.OutOrStdout(), cfg, recorder)
}

func printRecords(w io.Writer, cfg config.Config, recorder *submission.Recorder) error {
	if cfg.Output == config.OutputNone {
		return nil
	}
	enc, err := submission.NewEncoder(w, cfg.Output)
	if err != nil {
		return fmt.Errorf("create encoder: %w", err)
	}
	if err := recorder.Flush(enc); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}
	slog.Info("answers written", "count", len(recorder.Records()), "format", cfg.Output)
	return nil
}
