package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-estimator/internal/config"
	"github.com/jonathan/project-estimator/internal/engine"
	"github.com/jonathan/project-estimator/internal/observability"
	"github.com/jonathan/project-estimator/internal/types"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute a project estimate from a config and a selections file",
	Long:  "Computes the full hours-and-cost breakdown, overhead block, and P50/P80 bands for a selection map evaluated against an estimator configuration. Missing selections are seeded from config defaults.",
	RunE:  runCompute,
}

var (
	computeConfigPath     string
	computeSelectionsPath string
	computePreset         string
	computeCountry        string
	computeOutPath        string
	computeVerbose        bool
)

func init() {
	computeCmd.Flags().StringVarP(&computeConfigPath, "config", "c", "", "Path to estimator config JSON (or ESTIMATOR_CONFIG)")
	computeCmd.Flags().StringVarP(&computeSelectionsPath, "selections", "s", "", "Path to selections JSON (defaults to config defaults only)")
	computeCmd.Flags().StringVar(&computePreset, "preset", "", "Preset id to apply over the selections")
	computeCmd.Flags().StringVar(&computeCountry, "country", "", "Country code overriding the selections' _country")
	computeCmd.Flags().StringVarP(&computeOutPath, "out", "o", "", "Write the result JSON to this file instead of stdout")
	computeCmd.Flags().BoolVarP(&computeVerbose, "verbose", "v", false, "Print a formatted summary and trace to stderr")

	rootCmd.AddCommand(computeCmd)
}

func runCompute(_ *cobra.Command, _ []string) error {
	result, cfg, err := computeFromFiles(computeConfigPath, computeSelectionsPath, computePreset, computeCountry)
	if err != nil {
		return err
	}

	if computeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintConfigSummary(cfg)
		printer.PrintEstimate(result)
		printer.PrintTrace(&result.Trace)
	}

	return writeResultJSON(result, computeOutPath)
}

// computeFromFiles loads the config and selections, applies the optional
// preset and country override, and runs the engine.
func computeFromFiles(configPath, selectionsPath, presetID, countryCode string) (*types.EstimateResult, *types.Config, error) {
	cfg, err := config.Load(defaultConfigPath(configPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	selections := types.Selections{}
	if selectionsPath != "" {
		selections, err = config.LoadSelections(selectionsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load selections: %w", err)
		}
	}

	if presetID != "" {
		if cfg.PresetByID(presetID) == nil {
			return nil, nil, fmt.Errorf("unknown preset %q", presetID)
		}
		selections = engine.ApplyPreset(cfg, selections, presetID)
	}
	if countryCode != "" {
		selections = selections.Clone()
		selections[types.KeyCountry] = countryCode
	}

	return engine.ComputeEstimate(cfg, selections), cfg, nil
}

func writeResultJSON(v any, outPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result to %s: %w", outPath, err)
	}
	return nil
}
