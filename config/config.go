// Package config loads engine settings from YAML. Every field has a
// working default so a missing file or empty document still yields a
// usable configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solvix/solvix/internal/numeric"
)

// Config is the root document.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
}

// SolverConfig bounds the numeric root search used when no closed form
// exists.
type SolverConfig struct {
	SearchRange   float64 `yaml:"search_range"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	Seeds         int     `yaml:"seeds"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			SearchRange:   100,
			Tolerance:     1e-10,
			MaxIterations: 100,
			Seeds:         200,
		},
	}
}

// Load reads path and overlays it on the defaults. Fields absent from the
// document keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	s := c.Solver
	if s.SearchRange <= 0 {
		return fmt.Errorf("solver.search_range must be positive, got %g", s.SearchRange)
	}
	if s.Tolerance <= 0 {
		return fmt.Errorf("solver.tolerance must be positive, got %g", s.Tolerance)
	}
	if s.MaxIterations <= 0 {
		return fmt.Errorf("solver.max_iterations must be positive, got %d", s.MaxIterations)
	}
	if s.Seeds <= 0 {
		return fmt.Errorf("solver.seeds must be positive, got %d", s.Seeds)
	}
	return nil
}

// ScanConfig converts the solver section into the numeric search bounds.
func (c Config) ScanConfig() numeric.ScanConfig {
	return numeric.ScanConfig{
		SearchRange:   c.Solver.SearchRange,
		Tolerance:     c.Solver.Tolerance,
		MaxIterations: c.Solver.MaxIterations,
		Seeds:         c.Solver.Seeds,
	}
}
