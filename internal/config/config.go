// Package config provides loading and validation of estimator configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/project-estimator/internal/schemas"
	"github.com/jonathan/project-estimator/internal/types"
)

// Load reads an estimator config from a JSON file, validates the raw document
// against the embedded JSON Schema, unmarshals it, and runs struct-level
// validation. The returned config is complete and ready to be treated as
// immutable by the engine.
func Load(path string) (*types.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse validates and unmarshals raw config JSON. Exposed separately so
// callers holding config bytes (tests, embedded fixtures) skip the file read.
func Parse(data []byte) (*types.Config, error) {
	if err := schemas.ValidateConfig(data); err != nil {
		return nil, err
	}

	var cfg types.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadSelections reads a selections map from a JSON file. Selections are an
// open mapping; no schema applies beyond being a JSON object.
func LoadSelections(path string) (types.Selections, error) {
	if path == "" {
		return nil, fmt.Errorf("selections path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selections file %s: %w", path, err)
	}

	var selections types.Selections
	if err := json.Unmarshal(data, &selections); err != nil {
		return nil, fmt.Errorf("failed to parse selections JSON: %w", err)
	}

	return selections, nil
}
