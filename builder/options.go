// SPDX-License-Identifier: MIT
// Package: lapkit/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before any cell is generated.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The RNG is consumed; do not share it across goroutines.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithMaxCost sets the exclusive bound of the default uniform distribution.
// Panics if max <= 0. Ignored when WithCostFn is also given.
func WithMaxCost(max int64) BuilderOption {
	if max <= 0 {
		panic(fmt.Sprintf("builder: WithMaxCost(%d)", max))
	}

	return func(c *builderConfig) {
		c.maxCost = max
	}
}

// WithCostFn overrides the per-cell cost generator. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}

	return func(c *builderConfig) {
		c.costFn = fn
	}
}
