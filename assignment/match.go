package assignment

import (
	"fmt"

	"github.com/katalvlaran/lapkit/matrix"
)

// Match commits zero-cost assignments on the MarkerGrid and returns the
// number of rows assigned afterwards (previous rounds included).
//
// Algorithm:
//  1. Refresh: keep every Assigned marker (it must still sit on a zero),
//     clear the rest, and re-eliminate zeros sharing a row or column with
//     an Assigned cell.
//  2. Forced moves, repeated to a fixed point:
//     a. a free row with exactly one Unmarked zero is assigned there and the
//     other zeros of that column are eliminated;
//     b. symmetric pass over free columns.
//  3. Tie-break, only if fewer than n rows are assigned: every free row, in
//     index order, takes its lowest-index Unmarked zero.
//  4. Repair, only if still short: augment along alternating zero paths
//     (rows in index order, columns lowest index first) until no free row
//     can reach a free column. The matching handed to Revise is therefore
//     maximum on the current zero structure.
//
// Forced moves never lose optimality: a row or column with a single
// candidate has no alternative. Tie-break picks are candidates only; the
// repair step and later revisions may move them.
//
// Complexity: O(n³) worst case per call (fixed point and repair), O(n²)
// typical.
func Match(t *matrix.Dense, g *MarkerGrid) (int, error) {
	rows, err := tableauRows(t, g)
	if err != nil {
		return 0, err
	}
	if err = refresh(rows, g); err != nil {
		return 0, err
	}

	if err = forcedMoves(rows, g); err != nil {
		return 0, err
	}
	if g.count == g.n {
		return g.count, nil
	}

	if err = tieBreak(rows, g); err != nil {
		return 0, err
	}
	if g.count == g.n {
		return g.count, nil
	}

	if augment(rows, g) > 0 {
		g.syncCells()
		if err = refresh(rows, g); err != nil {
			return 0, err
		}
	}

	return g.count, nil
}

// tableauRows returns no-copy row views of t after checking it matches g.
func tableauRows(t *matrix.Dense, g *MarkerGrid) ([][]int64, error) {
	n, err := matrix.ValidateSquare(t)
	if err != nil {
		return nil, err
	}
	if g == nil || g.n != n {
		return nil, fmt.Errorf("tableau order %d does not match marker grid: %w", n, ErrInternal)
	}

	rows := make([][]int64, n)
	var i int
	for i = 0; i < n; i++ {
		if rows[i], err = t.RowView(i); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// refresh rebuilds Eliminated markers from the current zeros and the
// persisted Assigned markers.
func refresh(rows [][]int64, g *MarkerGrid) error {
	var (
		n    = g.n
		i, j int
		c    int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.cells[i*n+j] != Assigned {
				g.cells[i*n+j] = Unmarked
			}
		}
	}
	for i = 0; i < n; i++ {
		if c = g.colOf[i]; c == unassigned {
			continue
		}
		if rows[i][c] != 0 {
			return fmt.Errorf("assigned cell (%d,%d) holds %d: %w", i, c, rows[i][c], ErrInternal)
		}
		eliminateConflicts(rows, g, i, c)
	}

	return nil
}

// commit assigns (i, j) and eliminates every other zero in row i and column j.
func commit(rows [][]int64, g *MarkerGrid, i, j int) error {
	if !g.assign(i, j) {
		return fmt.Errorf("commit (%d,%d): row or column already assigned: %w", i, j, ErrInternal)
	}
	eliminateConflicts(rows, g, i, j)

	return nil
}

// eliminateConflicts marks the zeros sharing row i or column j with (i, j) Eliminated.
func eliminateConflicts(rows [][]int64, g *MarkerGrid, i, j int) {
	var k int
	for k = 0; k < g.n; k++ {
		if k != j && rows[i][k] == 0 {
			g.eliminate(i, k)
		}
		if k != i && rows[k][j] == 0 {
			g.eliminate(k, j)
		}
	}
}

// forcedMoves runs the row and column single-candidate passes until neither commits.
func forcedMoves(rows [][]int64, g *MarkerGrid) error {
	var (
		n        = g.n
		i, j     int
		zeros    int
		selected int
		progress = true
		err      error
	)
	for progress {
		progress = false

		// Rows: a free row with one Unmarked zero is forced.
		for i = 0; i < n; i++ {
			if g.colOf[i] != unassigned {
				continue
			}
			zeros, selected = 0, unassigned
			for j = 0; j < n; j++ {
				if rows[i][j] == 0 && g.mark(i, j) == Unmarked {
					zeros++
					selected = j
				}
			}
			if zeros == 1 {
				if err = commit(rows, g, i, selected); err != nil {
					return err
				}
				progress = true
			}
		}

		// Columns: same, transposed.
		for j = 0; j < n; j++ {
			if g.rowOf[j] != unassigned {
				continue
			}
			zeros, selected = 0, unassigned
			for i = 0; i < n; i++ {
				if rows[i][j] == 0 && g.mark(i, j) == Unmarked {
					zeros++
					selected = i
				}
			}
			if zeros == 1 {
				if err = commit(rows, g, selected, j); err != nil {
					return err
				}
				progress = true
			}
		}
	}

	return nil
}

// tieBreak gives each free row its first Unmarked zero, scanning rows and
// columns in index order so the outcome is reproducible.
func tieBreak(rows [][]int64, g *MarkerGrid) error {
	var (
		n    = g.n
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		if g.colOf[i] != unassigned {
			continue
		}
		for j = 0; j < n; j++ {
			if rows[i][j] == 0 && g.mark(i, j) == Unmarked {
				if err = commit(rows, g, i, j); err != nil {
					return err
				}
				break
			}
		}
	}

	return nil
}

// augment grows the matching along alternating zero paths (Kuhn) and
// returns how many rows it added. One attempt per free row suffices: a row
// with no augmenting path keeps having none after other rows augment.
// Only colOf/rowOf/count change; callers resync the cells.
func augment(rows [][]int64, g *MarkerGrid) int {
	var (
		n       = g.n
		visited = make([]bool, n)
		added   int
		i       int
		try     func(r int) bool
	)
	try = func(r int) bool {
		var j int
		for j = 0; j < n; j++ {
			if rows[r][j] != 0 || visited[j] {
				continue
			}
			visited[j] = true
			if g.rowOf[j] == unassigned || try(g.rowOf[j]) {
				g.colOf[r] = j
				g.rowOf[j] = r

				return true
			}
		}

		return false
	}

	for i = 0; i < n; i++ {
		if g.colOf[i] != unassigned {
			continue
		}
		clear(visited)
		if try(i) {
			added++
		}
	}
	g.count += added

	return added
}

// syncCells rewrites Assigned markers from colOf after augment moved them.
func (g *MarkerGrid) syncCells() {
	var (
		n    = g.n
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.cells[i*n+j] == Assigned {
				g.cells[i*n+j] = Unmarked
			}
		}
		if g.colOf[i] != unassigned {
			g.cells[i*n+g.colOf[i]] = Assigned
		}
	}
}
