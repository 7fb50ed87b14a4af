// SPDX-License-Identifier: MIT
// Package: lapkit/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = rand.New(rand.NewSource(DefaultSeed))
//   • maxCost = DefaultMaxCost
//   • costFn  = UniformCostFn(maxCost)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng     *rand.Rand
	maxCost int64
	costFn  CostFn
}

// newBuilderConfig applies opts in order (later overrides earlier) and
// fills unset knobs with the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxCost: DefaultMaxCost}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.costFn == nil {
		cfg.costFn = UniformCostFn(cfg.maxCost)
	}

	return cfg
}
