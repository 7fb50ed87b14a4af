// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions in this package return these sentinels, optionally wrapped
// with call-site context via fmt.Errorf("...: %w", ErrX). Callers match with
// errors.Is. Nothing here panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/RowView) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. CopyFrom between differently shaped matrices.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that rows passed to NewDenseFromRows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNegative signals a negative cell where only non-negative values are allowed.
	ErrNegative = errors.New("matrix: negative value encountered")

	// ErrTooLarge signals a cell above the caller-supplied magnitude bound.
	ErrTooLarge = errors.New("matrix: value exceeds bound")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
