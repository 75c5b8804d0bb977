package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/project-estimator/internal/config"
	"github.com/jonathan/project-estimator/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an estimator config file",
	Long:  "Validates a config JSON file against the embedded JSON Schema and the struct-level rules, reporting every violation with its field path.",
	RunE:  runValidate,
}

var validateConfigPath string

func init() {
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Path to estimator config JSON (or ESTIMATOR_CONFIG)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path := defaultConfigPath(validateConfigPath)
	cfg, err := config.Load(path)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			// Print the violation list directly; the wrapped form is noisy.
			return fmt.Errorf("%s is invalid:\n%s", path, validationErr.Error())
		}
		return err
	}

	cmd.Printf("%s is valid: %d countries, %d levers, %d dependencies, %d presets\n",
		path, len(cfg.Countries), len(cfg.Levers), len(cfg.Dependencies), len(cfg.Presets))
	return nil
}
