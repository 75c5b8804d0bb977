package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-estimator/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the presets defined in a config",
	RunE:  runPresets,
}

var presetsConfigPath string

func init() {
	presetsCmd.Flags().StringVarP(&presetsConfigPath, "config", "c", "", "Path to estimator config JSON (or ESTIMATOR_CONFIG)")

	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(defaultConfigPath(presetsConfigPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(cfg.Presets) == 0 {
		cmd.Println("no presets defined")
		return nil
	}

	for _, preset := range cfg.Presets {
		label := preset.Label
		if label == "" {
			label = "(unlabeled)"
		}
		line := fmt.Sprintf("%-20s %s", preset.ID, label)
		if preset.Country != "" {
			line += fmt.Sprintf("  [%s]", preset.Country)
		}
		cmd.Println(line)
	}
	return nil
}
