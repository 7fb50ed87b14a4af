package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lapkit/builder"
)

// ErrBadConfig marks a configuration value outside its domain.
var ErrBadConfig = errors.New("lapsolve: invalid configuration")

// Config holds lapsolve settings loaded from YAML; flags override it.
type Config struct {
	// Workers bounds concurrent solves; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// MaxRevisions is the solver's revision ceiling; 0 means n².
	MaxRevisions int `yaml:"max_revisions"`

	Bench BenchConfig `yaml:"bench"`
}

// BenchConfig shapes the random instances generated by `lapsolve bench`.
type BenchConfig struct {
	Size    int   `yaml:"size"`
	Count   int   `yaml:"count"`
	Seed    int64 `yaml:"seed"`
	MaxCost int64 `yaml:"max_cost"`
}

// DefaultConfig returns the classic benchmark shape: order 101, seed 13,
// costs below 5,000,000.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Size:    builder.DefaultOrder,
			Count:   16,
			Seed:    builder.DefaultSeed,
			MaxCost: builder.DefaultMaxCost,
		},
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the solver or the generator cannot use.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrBadConfig)
	case c.MaxRevisions < 0:
		return fmt.Errorf("max_revisions=%d: %w", c.MaxRevisions, ErrBadConfig)
	case c.Bench.Size < 1:
		return fmt.Errorf("bench.size=%d: %w", c.Bench.Size, ErrBadConfig)
	case c.Bench.Count < 1:
		return fmt.Errorf("bench.count=%d: %w", c.Bench.Count, ErrBadConfig)
	case c.Bench.MaxCost < 1:
		return fmt.Errorf("bench.max_cost=%d: %w", c.Bench.MaxCost, ErrBadConfig)
	}

	return nil
}
