package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lapkit/builder"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, builder.DefaultOrder, cfg.Bench.Size)
	require.Equal(t, builder.DefaultSeed, cfg.Bench.Seed)
}

// TestLoadConfig_PartialOverride keeps defaults for keys the file omits.
func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lapsolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers: 4
max_revisions: 500
bench:
  count: 3
  seed: 99
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 500, cfg.MaxRevisions)
	require.Equal(t, 3, cfg.Bench.Count)
	require.Equal(t, int64(99), cfg.Bench.Seed)
	require.Equal(t, builder.DefaultOrder, cfg.Bench.Size)
	require.Equal(t, builder.DefaultMaxCost, cfg.Bench.MaxCost)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"negative-workers": "workers: -1\n",
		"negative-ceiling": "max_revisions: -5\n",
		"zero-size":        "bench:\n  size: 0\n",
		"zero-count":       "bench:\n  count: 0\n",
		"zero-max-cost":    "bench:\n  max_cost: 0\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
			_, err := LoadConfig(path)
			require.ErrorIs(t, err, ErrBadConfig)
		})
	}

	path := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1, 2"), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}
