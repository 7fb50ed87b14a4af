package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewBuilderConfig_Defaults verifies the deterministic defaults.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.NotNil(t, cfg.rng)
	require.NotNil(t, cfg.costFn)
	require.Equal(t, DefaultMaxCost, cfg.maxCost)

	ref := rand.New(rand.NewSource(DefaultSeed))
	require.Equal(t, ref.Int63n(DefaultMaxCost), cfg.costFn(cfg.rng))
}

// TestNewBuilderConfig_Overrides checks that later options win and nil
// options are skipped.
func TestNewBuilderConfig_Overrides(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithMaxCost(10), nil, WithCostFn(ConstantCostFn(4)))
	require.Equal(t, int64(10), cfg.maxCost)
	require.Equal(t, int64(4), cfg.costFn(cfg.rng))
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithMaxCost(0) })
	require.Panics(t, func() { WithCostFn(nil) })
	require.Panics(t, func() { UniformCostFn(-1) })
	require.Panics(t, func() { ConstantCostFn(-1) })
}
