// SPDX-License-Identifier: MIT

// Package config loads the hamtour command configuration from the
// environment (prefix HAMTOUR_), optionally seeded from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/hamtour/solve"
)

// Prefix is the environment variable prefix.
const Prefix = "HAMTOUR"

// Validation errors.
var (
	ErrInvalidRender    = errors.New("config: RENDER must be one of none, dot, svg")
	ErrInvalidLogFormat = errors.New("config: LOG_FORMAT must be json or console")
	ErrNegativeMaxSteps = errors.New("config: MAX_STEPS must be >= 0")
)

// Config is the command configuration.
type Config struct {
	// GraphFile is an HCL graph description; empty means the built-in
	// reference graph.
	GraphFile string `envconfig:"GRAPH_FILE"`
	// Seed is the starting vertex; empty means the first vertex.
	Seed     string `envconfig:"SEED"`
	Strategy string `envconfig:"STRATEGY" default:"direct"`
	// MaxSteps bounds each search; 0 disables the bound.
	MaxSteps int `envconfig:"MAX_STEPS" default:"0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Render selects the renderer: none, dot or svg.
	Render string `envconfig:"RENDER" default:"none"`
	// RenderOutput is the output file; "-" means stdout.
	RenderOutput string `envconfig:"RENDER_OUTPUT" default:"-"`

	// MetricsDump writes the Prometheus text exposition to stderr on exit.
	MetricsDump bool `envconfig:"METRICS_DUMP" default:"false"`
}

// Load reads envFile (if non-empty) into the process environment without
// overriding variables that are already set, then processes HAMTOUR_*
// variables and validates the result.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if _, err := solve.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("config: STRATEGY: %w", err)
	}
	if c.MaxSteps < 0 {
		return ErrNegativeMaxSteps
	}
	switch strings.ToLower(c.Render) {
	case "none", "dot", "svg":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidRender, c.Render)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console", "text":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

// StrategyValue returns the parsed strategy. Call after Validate.
func (c Config) StrategyValue() solve.Strategy {
	s, _ := solve.ParseStrategy(c.Strategy)

	return s
}
