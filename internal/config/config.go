// Package config loads run settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvOutputDir = "SWBPARTS_OUTPUT_DIR"
	EnvChart     = "SWBPARTS_CHART"
)

// DefaultOutputDir is where reports are written when no override is set
const DefaultOutputDir = "output"

// Config holds the settings for one report run.
// The piece-count rule is fixed and has no setting here.
type Config struct {
	OutputDir string // Directory the PDF is written to (created if absent)
	Chart     bool   // Add the piece totals chart page to the report
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		Chart:     true,
	}
}

// Load reads .env from the working directory if present, then applies
// environment overrides on top of the defaults.
func Load() (Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup to read variables
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvOutputDir); ok {
		cfg.OutputDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvChart); ok && strings.TrimSpace(v) != "" {
		chart, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("config error: %s must be true or false, got %q", EnvChart, v)
		}
		cfg.Chart = chart
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("config error: %s must not be empty", EnvOutputDir)
	}
	return nil
}
