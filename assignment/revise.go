package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lapkit/matrix"
)

// LineCover is the König labelling computed by one revision.
//
// SearchRows[i] marks rows reached from a free row; CoveredCols[j] marks
// columns holding a zero of some search row. The cover lines are the
// covered columns together with the rows NOT in search; every zero of the
// tableau lies on at least one of them.
type LineCover struct {
	SearchRows  []bool
	CoveredCols []bool
}

// Lines returns the number of lines in the cover.
func (lc LineCover) Lines() int {
	var lines int
	for _, s := range lc.SearchRows {
		if !s {
			lines++
		}
	}
	for _, c := range lc.CoveredCols {
		if c {
			lines++
		}
	}

	return lines
}

// cover labels rows and columns starting from the free rows of g.
//
//  1. Every row without an Assigned cell is in search.
//  2. A search row covers each column where it has a zero; a covered
//     column puts the row of its Assigned cell in search. Repeat to a
//     fixed point.
func cover(rows [][]int64, g *MarkerGrid) LineCover {
	var (
		n     = g.n
		lc    = LineCover{SearchRows: make([]bool, n), CoveredCols: make([]bool, n)}
		queue = make([]int, 0, n)
		i, j  int
		r     int
	)
	for i = 0; i < n; i++ {
		if g.colOf[i] == unassigned {
			lc.SearchRows[i] = true
			queue = append(queue, i)
		}
	}
	// Breadth-first closure: each row is expanded once.
	for len(queue) > 0 {
		i, queue = queue[0], queue[1:]
		for j = 0; j < n; j++ {
			if rows[i][j] != 0 || lc.CoveredCols[j] {
				continue
			}
			lc.CoveredCols[j] = true
			if r = g.rowOf[j]; r != unassigned && !lc.SearchRows[r] {
				lc.SearchRows[r] = true
				queue = append(queue, r)
			}
		}
	}

	return lc
}

// Revise shifts the tableau to create new zeros when the current zeros hold
// no complete matching. It expects g to carry a maximum matching, which is
// what Match leaves behind.
//
// With the cover from [cover], let δ be the smallest value at (search row,
// uncovered column). δ is subtracted there and added at (non-search row,
// covered column), the cells crossed by two lines. This is the dual update
// of the Hungarian method:
//   - no cell goes negative (δ is the minimum of the cells it is taken from);
//   - every Assigned cell stays zero (it is never in either set);
//   - at least one new zero appears in a search row, so within n revisions
//     the matching grows.
//
// Errors: ErrInternal if there is no free row, no uncovered cell in a
// search row, or δ is not positive.
// Complexity: O(n²).
func Revise(t *matrix.Dense, g *MarkerGrid) (LineCover, error) {
	rows, err := tableauRows(t, g)
	if err != nil {
		return LineCover{}, err
	}
	if g.count == g.n {
		return LineCover{}, fmt.Errorf("Revise: matching already complete: %w", ErrInternal)
	}

	lc := cover(rows, g)

	var (
		n     = g.n
		i, j  int
		delta = int64(math.MaxInt64)
	)
	for i = 0; i < n; i++ {
		if !lc.SearchRows[i] {
			continue
		}
		for j = 0; j < n; j++ {
			if !lc.CoveredCols[j] && rows[i][j] < delta {
				delta = rows[i][j]
			}
		}
	}
	if delta == math.MaxInt64 || delta <= 0 {
		return lc, fmt.Errorf("Revise: no positive uncovered minimum (lines=%d, n=%d): %w", lc.Lines(), n, ErrInternal)
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case lc.SearchRows[i] && !lc.CoveredCols[j]:
				rows[i][j] -= delta
			case !lc.SearchRows[i] && lc.CoveredCols[j]:
				rows[i][j] += delta
			}
		}
	}

	return lc, nil
}
