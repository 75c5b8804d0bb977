// Package main provides the entry point for the project-estimator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "estimator",
	Short: "Configuration-driven project cost estimation",
	Long:  "Estimator computes deterministic hours-and-cost project estimates (P50/P80) from a declarative lever/dependency configuration and a selection map.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultConfigPath returns the config path from the flag, falling back to
// the ESTIMATOR_CONFIG environment variable.
func defaultConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("ESTIMATOR_CONFIG")
}
