package assignment

// Validation utilities shared by Solve and by callers checking results.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go
//     and matrix, wrapped so errors.Is matches both.
//   - O(n²) worst-case; nothing allocated on the cost-matrix path.

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lapkit/matrix"
)

// validateCostMatrix checks m is a non-nil, non-empty square matrix with
// every cost in [0, MaxCost], and returns its order.
//
// The returned error wraps ErrInvalidInput and the concrete cause
// (matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrNonSquare,
// matrix.ErrNegative, or ErrCostOverflow).
func validateCostMatrix(m matrix.Matrix) (int, error) {
	n, err := matrix.ValidateSquare(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err = matrix.ValidateRange(m, MaxCost); err != nil {
		if errors.Is(err, matrix.ErrTooLarge) {
			return 0, fmt.Errorf("%w: %w: %w", ErrInvalidInput, ErrCostOverflow, err)
		}

		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return n, nil
}

// ValidateAssignment reports whether assign is a permutation of 0..n-1.
//
// Errors: ErrBadAssignment wrapped with the first offending row.
// Complexity: O(n) time and space.
func ValidateAssignment(assign []int, n int) error {
	if len(assign) != n || n <= 0 {
		return fmt.Errorf("ValidateAssignment: %d rows for order %d: %w", len(assign), n, ErrBadAssignment)
	}
	seen := make([]bool, n)

	var (
		row int
		col int
	)
	for row, col = range assign {
		if col < 0 || col >= n {
			return fmt.Errorf("ValidateAssignment: row %d → column %d out of range: %w", row, col, ErrBadAssignment)
		}
		if seen[col] {
			return fmt.Errorf("ValidateAssignment: column %d used twice (row %d): %w", col, row, ErrBadAssignment)
		}
		seen[col] = true
	}

	return nil
}

// TotalCost sums m at (row, assign[row]) for every row.
// Use the original cost matrix: a reduced tableau no longer holds real costs.
//
// Errors: ErrInvalidInput (via validation) or ErrBadAssignment.
// Complexity: O(n) after validation, O(n²) including it.
func TotalCost(m matrix.Matrix, assign []int) (int64, error) {
	n, err := validateCostMatrix(m)
	if err != nil {
		return 0, err
	}
	if err = ValidateAssignment(assign, n); err != nil {
		return 0, err
	}

	var (
		total int64
		v     int64
		row   int
	)
	for row = 0; row < n; row++ {
		if v, err = m.At(row, assign[row]); err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}
