// Package config loads the polycalc configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the prefix of every environment variable read by Load.
const Prefix = "POLYCALC"

// Config holds all application configuration.
type Config struct {
	Plot    PlotConfig
	Logging LogConfig `envconfig:"LOG"`
}

// PlotConfig holds the sampling grid of the plot operation.
type PlotConfig struct {
	Min    float64 `envconfig:"MIN" default:"-10"`
	Max    float64 `envconfig:"MAX" default:"10"`
	Points int     `envconfig:"POINTS" default:"1001"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load loads configuration from environment variables, e.g. POLYCALC_PLOT_POINTS or POLYCALC_LOG_LEVEL.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Plot: PlotConfig{
			Min:    -10,
			Max:    10,
			Points: 1001,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
