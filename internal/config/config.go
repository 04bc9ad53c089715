// Package config loads the optional zof.yaml configuration file.
// Flags always override file values; a missing file yields defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zofmath/zof/internal/solver"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "zof.yaml"

// Config carries the tunable defaults for all adapters.
type Config struct {
	// Tolerance and MaxIterations seed every solve request that does
	// not set its own values.
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	// Addr is the HTTP listen address for `zof serve`.
	Addr string `yaml:"addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance:     solver.DefaultTolerance,
		MaxIterations: solver.DefaultMaxIterations,
		Addr:          ":8080",
		LogLevel:      "info",
	}
}

// Load reads path and overlays it on the defaults. A missing file is
// not an error unless explicit is set (the user asked for that exact
// file).
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
