package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Print the effective label catalog as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadLabels(cfg)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cat)
		if err != nil {
			return fmt.Errorf("marshal labels: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
