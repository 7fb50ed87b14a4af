// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer no-copy row views for hot loops (RowView) and a buffer-reusing CopyFrom.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowView: O(1);
//     RowMin/ColMin: O(c)/O(r); CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxRowView = "RowView"  // method tag used in error wrappers
	ctxRowMin  = "RowMin"   // method tag used in error wrappers
	ctxColMin  = "ColMin"   // method tag used in error wrappers
	ctxCopy    = "CopyFrom" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of int64 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (> 0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFromRows copies a rectangular [][]int64 into a fresh Dense.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty or the first row is empty.
//   - ErrRaggedRows (wrapped with the offending row) if row lengths differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
	)
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	m := &Dense{r: r, c: c, data: make([]int64, r*c)}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// RowView returns row i as a slice aliasing the matrix storage.
// Writes through the slice mutate the matrix; the slice length is Cols().
// Intended for O(n²) kernels that would otherwise pay an error check per cell.
//
// Errors: ErrOutOfRange if i is outside [0, Rows()).
// Complexity: O(1), no allocation.
func (m *Dense) RowView(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}
	off := i * m.c

	return m.data[off : off+m.c : off+m.c], nil
}

// RowMin returns the smallest value in row i.
// Complexity: O(c).
func (m *Dense) RowMin(i int) (int64, error) {
	row, err := m.RowView(i)
	if err != nil {
		return 0, denseErrorf(ctxRowMin, i, 0, ErrOutOfRange)
	}
	var (
		best int64 = math.MaxInt64
		v    int64
	)
	for _, v = range row {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// ColMin returns the smallest value in column j.
// Complexity: O(r) with stride c.
func (m *Dense) ColMin(j int) (int64, error) {
	if j < 0 || j >= m.c {
		return 0, denseErrorf(ctxColMin, 0, j, ErrOutOfRange)
	}
	var (
		best int64 = math.MaxInt64
		off  int
	)
	for off = j; off < len(m.data); off += m.c {
		if m.data[off] < best {
			best = m.data[off]
		}
	}

	return best, nil
}

// CopyFrom overwrites m with the contents of src, which must have the same shape.
// Lets a caller reuse one buffer across many instances of the same size.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, or any At error from src.
// Complexity: O(r*c); a single copy when src is *Dense.
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return denseErrorf(ctxCopy, 0, 0, ErrNilMatrix)
	}
	if src.Rows() != m.r || src.Cols() != m.c {
		return denseErrorf(ctxCopy, src.Rows(), src.Cols(), ErrDimensionMismatch)
	}
	// Fast path: flat copy.
	if d, ok := src.(*Dense); ok {
		copy(m.data, d.data)

		return nil
	}

	var (
		i, j int
		v    int64
		err  error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			m.data[i*m.c+j] = v
		}
	}

	return nil
}

// Clone returns a deep copy; the dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToRows exports the matrix as a freshly allocated [][]int64.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = append([]int64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String renders rows as bracketed, comma-separated lines for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
