package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-estimator/internal/config"
	"github.com/jonathan/project-estimator/internal/engine"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the base hourly rates for a country",
	Long:  "Prints the configured per-role base rates for the given country code (or the default country), before any user override. Useful for seeding a rate-editing UI.",
	RunE:  runRates,
}

var (
	ratesConfigPath string
	ratesCountry    string
)

func init() {
	ratesCmd.Flags().StringVarP(&ratesConfigPath, "config", "c", "", "Path to estimator config JSON (or ESTIMATOR_CONFIG)")
	ratesCmd.Flags().StringVar(&ratesCountry, "country", "", "Country code (defaults to the first configured country)")

	rootCmd.AddCommand(ratesCmd)
}

func runRates(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(defaultConfigPath(ratesConfigPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	rates := engine.CountryBaseRates(cfg, ratesCountry)
	return writeResultJSON(rates, "")
}
