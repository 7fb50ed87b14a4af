package assignment

import (
	"fmt"

	"github.com/katalvlaran/lapkit/matrix"
)

// Reduce normalizes the tableau in place: subtract every row's minimum from
// that row, then every column's minimum from that column. Columns whose
// minimum is already zero (the common case after the row pass) are skipped.
//
// Subtracting a constant from a whole row or column shifts the cost of every
// complete assignment by the same amount, so the set of optimal assignments
// is unchanged. Afterwards each row and column holds at least one zero and
// no cell is negative.
//
// Complexity: O(n²) time, O(1) extra space.
func Reduce(t *matrix.Dense) error {
	n, err := matrix.ValidateSquare(t)
	if err != nil {
		return fmt.Errorf("Reduce: %w", err)
	}

	var (
		i, j int
		row  []int64
		low  int64
	)

	// Stage 1: row minima.
	for i = 0; i < n; i++ {
		if low, err = t.RowMin(i); err != nil {
			return err
		}
		if low == 0 {
			continue
		}
		row, _ = t.RowView(i)
		for j = range row {
			row[j] -= low
		}
	}

	// Stage 2: column minima.
	for j = 0; j < n; j++ {
		if low, err = t.ColMin(j); err != nil {
			return err
		}
		if low == 0 {
			continue
		}
		for i = 0; i < n; i++ {
			row, _ = t.RowView(i)
			row[j] -= low
		}
	}

	return nil
}
