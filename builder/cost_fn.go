// Package builder provides cost distributions for matrix constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// CostFn produces one cell cost from the configured RNG.
// It must be deterministic for a given RNG state and never return a negative value.
type CostFn func(rng *rand.Rand) int64

// UniformCostFn returns a CostFn sampling uniformly in [0, max).
// Panics if max <= 0.
// Complexity: O(1) time, O(1) space.
func UniformCostFn(max int64) CostFn {
	if max <= 0 {
		panic(fmt.Sprintf("UniformCostFn: max must be > 0, got %d", max))
	}

	return func(rng *rand.Rand) int64 {
		return rng.Int63n(max)
	}
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}
