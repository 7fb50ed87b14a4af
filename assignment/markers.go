package assignment

import "fmt"

// unassigned is the colOf/rowOf value of a free row or column.
const unassigned = -1

// MarkerGrid is the n×n grid of tri-state markers kept beside the tableau.
//
// Besides the cells it tracks colOf[row] and rowOf[col], so "is this row
// assigned?" is O(1) and a second Assigned marker in a row or column cannot
// be written: assign refuses it.
type MarkerGrid struct {
	n     int
	cells []Marker // row-major, len n*n
	colOf []int    // row -> assigned column or unassigned
	rowOf []int    // column -> assigned row or unassigned
	count int      // rows holding an Assigned marker
}

// NewMarkerGrid allocates an all-Unmarked n×n grid.
func NewMarkerGrid(n int) (*MarkerGrid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewMarkerGrid(%d): %w", n, ErrInvalidInput)
	}
	g := &MarkerGrid{
		n:     n,
		cells: make([]Marker, n*n),
		colOf: make([]int, n),
		rowOf: make([]int, n),
	}
	g.Reset()

	return g, nil
}

// N returns the grid order.
func (g *MarkerGrid) N() int { return g.n }

// Assigned returns the number of rows holding an Assigned marker.
func (g *MarkerGrid) Assigned() int { return g.count }

// Reset clears every marker and assignment.
func (g *MarkerGrid) Reset() {
	clear(g.cells)
	var i int
	for i = 0; i < g.n; i++ {
		g.colOf[i] = unassigned
		g.rowOf[i] = unassigned
	}
	g.count = 0
}

// At returns the marker at (i, j).
func (g *MarkerGrid) At(i, j int) (Marker, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return Unmarked, fmt.Errorf("MarkerGrid.At(%d,%d): %w", i, j, ErrInternal)
	}

	return g.cells[i*g.n+j], nil
}

// ColOf returns the column assigned to row i, or -1.
func (g *MarkerGrid) ColOf(i int) int { return g.colOf[i] }

// RowOf returns the row assigned to column j, or -1.
func (g *MarkerGrid) RowOf(j int) int { return g.rowOf[j] }

// Assignment returns a copy of the row→column mapping (-1 for free rows).
func (g *MarkerGrid) Assignment() []int {
	return append([]int(nil), g.colOf...)
}

// mark returns the marker at (i, j) without bounds reporting.
func (g *MarkerGrid) mark(i, j int) Marker { return g.cells[i*g.n+j] }

// assign commits (i, j). It reports false, leaving the grid untouched, if
// row i or column j already holds an Assigned marker.
func (g *MarkerGrid) assign(i, j int) bool {
	if g.colOf[i] != unassigned || g.rowOf[j] != unassigned {
		return false
	}
	g.cells[i*g.n+j] = Assigned
	g.colOf[i] = j
	g.rowOf[j] = i
	g.count++

	return true
}

// eliminate marks (i, j) Eliminated unless it is Assigned.
func (g *MarkerGrid) eliminate(i, j int) {
	off := i*g.n + j
	if g.cells[off] != Assigned {
		g.cells[off] = Eliminated
	}
}

// Validate checks the grid's structural invariants: at most one Assigned
// marker per row and per column, and the colOf/rowOf indexes agreeing with
// the cells. Violations wrap ErrInternal.
// Complexity: O(n²).
func (g *MarkerGrid) Validate() error {
	var (
		i, j  int
		inRow int
		inCol = make([]int, g.n)
		total int
		hit   bool
	)
	for i = 0; i < g.n; i++ {
		inRow = 0
		for j = 0; j < g.n; j++ {
			hit = g.cells[i*g.n+j] == Assigned
			if !hit {
				continue
			}
			inRow++
			inCol[j]++
			total++
			if g.colOf[i] != j || g.rowOf[j] != i {
				return fmt.Errorf("MarkerGrid: cell (%d,%d) assigned but index says row→%d col→%d: %w",
					i, j, g.colOf[i], g.rowOf[j], ErrInternal)
			}
		}
		if inRow > 1 {
			return fmt.Errorf("MarkerGrid: row %d holds %d assignments: %w", i, inRow, ErrInternal)
		}
	}
	for j = 0; j < g.n; j++ {
		if inCol[j] > 1 {
			return fmt.Errorf("MarkerGrid: column %d holds %d assignments: %w", j, inCol[j], ErrInternal)
		}
	}
	if total != g.count {
		return fmt.Errorf("MarkerGrid: %d assigned cells, counter says %d: %w", total, g.count, ErrInternal)
	}

	return nil
}
