package builder_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lapkit/builder"
	"github.com/katalvlaran/lapkit/matrix"
)

// TestRandom_DeterministicAndBounded checks that equal seeds give equal
// matrices and that every cell falls in [0, maxCost).
func TestRandom_DeterministicAndBounded(t *testing.T) {
	t.Parallel()

	a, err := builder.Random(12, builder.WithSeed(7), builder.WithMaxCost(50))
	require.NoError(t, err)
	b, err := builder.Random(12, builder.WithSeed(7), builder.WithMaxCost(50))
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows(), "same seed must give the same matrix")

	for _, row := range a.ToRows() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, int64(0))
			require.Less(t, v, int64(50))
		}
	}
}

// TestRandom_DefaultSeed verifies that omitting WithSeed uses DefaultSeed.
func TestRandom_DefaultSeed(t *testing.T) {
	t.Parallel()

	a, err := builder.Random(5)
	require.NoError(t, err)
	b, err := builder.Random(5, builder.WithSeed(builder.DefaultSeed))
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows())
}

// TestRandom_WithRand consumes the supplied generator.
func TestRandom_WithRand(t *testing.T) {
	t.Parallel()

	a, err := builder.Random(4, builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	b, err := builder.Random(4, builder.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows())
}

func TestRandom_TooSmall(t *testing.T) {
	t.Parallel()

	_, err := builder.Random(0)
	require.ErrorIs(t, err, builder.ErrTooFewRows)
}

func TestConstant(t *testing.T) {
	t.Parallel()

	m, err := builder.Constant(3, 9)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{9, 9, 9}, {9, 9, 9}, {9, 9, 9}}, m.ToRows())

	_, err = builder.Constant(3, -1)
	require.ErrorIs(t, err, builder.ErrNegativeCost)
	_, err = builder.Constant(0, 1)
	require.ErrorIs(t, err, builder.ErrTooFewRows)
}

// TestPlanted checks the planted permutation: zeros exactly on it, strictly
// positive costs elsewhere.
func TestPlanted(t *testing.T) {
	t.Parallel()

	m, perm, err := builder.Planted(9, builder.WithSeed(3), builder.WithMaxCost(10))
	require.NoError(t, err)
	require.Len(t, perm, 9)

	seen := make([]bool, 9)
	var v int64
	for i := 0; i < 9; i++ {
		require.False(t, seen[perm[i]], "perm must be a permutation")
		seen[perm[i]] = true
		for j := 0; j < 9; j++ {
			v, err = m.At(i, j)
			require.NoError(t, err)
			if j == perm[i] {
				require.Zero(t, v)
			} else {
				require.Positive(t, v)
			}
		}
	}
}

// TestReplicate verifies copies are independent of the source and each other.
func TestReplicate(t *testing.T) {
	t.Parallel()

	src, err := builder.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	copies, err := builder.Replicate(src, 3)
	require.NoError(t, err)
	require.Len(t, copies, 3)

	require.NoError(t, copies[0].Set(0, 0, 100))
	v, _ := src.At(0, 0)
	require.Equal(t, int64(1), v, "source must be untouched")
	v, _ = copies[1].At(0, 0)
	require.Equal(t, int64(1), v, "siblings must be untouched")

	_, err = builder.Replicate(nil, 2)
	require.ErrorIs(t, err, builder.ErrNilMatrix)
	_, err = builder.Replicate(src, 0)
	require.ErrorIs(t, err, builder.ErrTooFewRows)
}

func TestFromRows_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]int64
		want error
	}{
		{"empty", nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]int64{{1, 2}, {3}}, matrix.ErrRaggedRows},
		{"non-square", [][]int64{{1, 2, 3}, {4, 5, 6}}, matrix.ErrNonSquare},
		{"negative", [][]int64{{1, -2}, {3, 4}}, builder.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	want := [][]int64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}
	docs := map[string]string{
		"yaml-list":    "- [4, 1, 3]\n- [2, 0, 5]\n- [3, 2, 2]\n",
		"yaml-mapping": "costs:\n  - [4, 1, 3]\n  - [2, 0, 5]\n  - [3, 2, 2]\n",
		"json-list":    `[[4,1,3],[2,0,5],[3,2,2]]`,
		"json-mapping": `{"costs": [[4,1,3],[2,0,5],[3,2,2]]}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			m, err := builder.Decode(strings.NewReader(doc))
			require.NoError(t, err)
			require.Equal(t, want, m.ToRows())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", builder.ErrBadDocument},
		{"scalar", "42\n", builder.ErrBadDocument},
		{"not-numbers", "- [a, b]\n- [c, d]\n", builder.ErrBadDocument},
		{"unparsable", "[[1, 2]", builder.ErrBadDocument},
		{"non-square", "- [1, 2]\n", matrix.ErrNonSquare},
		{"negative", "- [0, -1]\n- [1, 0]\n", builder.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Decode(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
