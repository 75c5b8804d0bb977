package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/project-estimator/internal/config"
	"github.com/jonathan/project-estimator/internal/engine"
	"github.com/jonathan/project-estimator/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [selections files...]",
	Short: "Compute estimates for many selection scenarios against one config",
	Long:  "Loads the config once and computes an estimate for every given selections file concurrently. The engine is pure and re-entrant, so scenarios run in parallel safely. Output is a JSON object keyed by file path.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchConfigPath  string
	batchOutPath     string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Path to estimator config JSON (or ESTIMATOR_CONFIG)")
	batchCmd.Flags().StringVarP(&batchOutPath, "out", "o", "", "Write the results JSON to this file instead of stdout")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum scenarios computed at once")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(defaultConfigPath(batchConfigPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	results := make(map[string]*types.EstimateResult, len(args))
	var mu sync.Mutex

	var g errgroup.Group
	if batchConcurrency > 0 {
		g.SetLimit(batchConcurrency)
	}

	for _, path := range args {
		path := path
		g.Go(func() error {
			selections, err := config.LoadSelections(path)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", path, err)
			}
			result := engine.ComputeEstimate(cfg, selections)

			mu.Lock()
			results[path] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return writeResultJSON(results, batchOutPath)
}
