// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for input checks on cost matrices.
//  - Keep solvers minimal by delegating nil/shape/range checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match with errors.Is and still read where the check failed.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Cell scans run in row-major order and stop at the first violation.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, non-empty and square, and returns its order.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return 0, validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}
	if m.Rows() != m.Cols() {
		return 0, validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return m.Rows(), nil
}

// ValidateRange checks every cell lies in [0, bound].
// Assumes m is non-nil (caller must ensure).
//
// Errors: ErrNegative or ErrTooLarge wrapped with the first offending cell;
// At errors are forwarded.
// Complexity: O(r*c).
func ValidateRange(m Matrix, bound int64) error {
	var (
		i, j int
		v    int64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateRange", err)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateRange(%d,%d)=%d", i, j, v), ErrNegative)
			}
			if v > bound {
				return validatorErrorf(fmt.Sprintf("ValidateRange(%d,%d)=%d", i, j, v), ErrTooLarge)
			}
		}
	}

	return nil
}

// ValidateNonNegative checks every cell is ≥ 0.
// Assumes m is non-nil (caller must ensure).
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var (
		i, j int
		v    int64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)=%d", i, j, v), ErrNegative)
			}
		}
	}

	return nil
}
