package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lapkit/assignment"
)

func TestRevise_Worked(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		tableau [][]int64
		search  []bool
		covered []bool
		lines   int
		want    [][]int64
	}{
		{
			name:    "three-by-three",
			tableau: [][]int64{{2, 0, 2}, {1, 0, 5}, {0, 0, 0}},
			search:  []bool{true, true, false},
			covered: []bool{false, true, false},
			lines:   2,
			want:    [][]int64{{1, 0, 1}, {0, 0, 4}, {0, 1, 0}},
		},
		{
			name:    "outer-product",
			tableau: [][]int64{{0, 0, 0}, {0, 1, 2}, {0, 2, 4}},
			search:  []bool{false, true, true},
			covered: []bool{true, false, false},
			lines:   2,
			want:    [][]int64{{1, 0, 0}, {0, 0, 1}, {0, 1, 3}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab := mustDense(t, tc.tableau)
			g, err := assignment.NewMarkerGrid(len(tc.tableau))
			require.NoError(t, err)
			_, err = assignment.Match(tab, g)
			require.NoError(t, err)

			lc, err := assignment.Revise(tab, g)
			require.NoError(t, err)
			require.Equal(t, tc.search, lc.SearchRows)
			require.Equal(t, tc.covered, lc.CoveredCols)
			require.Equal(t, tc.lines, lc.Lines())
			require.Less(t, lc.Lines(), len(tc.tableau))
			require.Equal(t, tc.want, tab.ToRows())

			// Assigned cells keep their zero.
			for i, j := range g.Assignment() {
				if j < 0 {
					continue
				}
				v, err := tab.At(i, j)
				require.NoError(t, err)
				require.Zero(t, v)
			}
		})
	}
}

// TestRevise_CompleteMatching refuses to revise a solved tableau.
func TestRevise_CompleteMatching(t *testing.T) {
	t.Parallel()

	tab := mustDense(t, [][]int64{{0, 1}, {1, 0}})
	g, err := assignment.NewMarkerGrid(2)
	require.NoError(t, err)
	_, err = assignment.Match(tab, g)
	require.NoError(t, err)

	_, err = assignment.Revise(tab, g)
	require.ErrorIs(t, err, assignment.ErrInternal)
}

// TestRevise_NonMaximumMatching: with an empty matching on a tableau that
// holds a perfect one, every column gets covered and nothing is left to shift.
func TestRevise_NonMaximumMatching(t *testing.T) {
	t.Parallel()

	tab := mustDense(t, [][]int64{{0, 1}, {1, 0}})
	g, err := assignment.NewMarkerGrid(2)
	require.NoError(t, err)

	_, err = assignment.Revise(tab, g)
	require.ErrorIs(t, err, assignment.ErrInternal)
}
