// SPDX-License-Identifier: MIT
// Package: lapkit/builder
//
// api.go — public constructors.
//
// Contract:
//   • Every constructor validates its parameters first and returns sentinel
//     errors wrapped with the constructor name (no panics).
//   • Cells are generated in row-major order from one RNG stream, so the same
//     options always produce the same matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lapkit/matrix"
)

// Random builds an n×n matrix whose cells are drawn from the configured
// CostFn (uniform over [0, DefaultMaxCost) by default, seeded with
// DefaultSeed).
//
// Errors: ErrTooFewRows if n < 1.
// Complexity: O(n²) time and space.
func Random(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < 1 {
		return nil, builderErrorf(MethodRandom, ErrTooFewRows)
	}
	cfg := newBuilderConfig(opts...)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodRandom, err)
	}
	var (
		i   int
		row []int64
	)
	for i = 0; i < n; i++ {
		row, _ = m.RowView(i)
		for j := range row {
			row[j] = cfg.costFn(cfg.rng)
		}
	}

	return m, nil
}

// Constant builds an n×n matrix with every cell equal to value. Every
// permutation is optimal, which makes it the canonical fully tied input.
//
// Errors: ErrTooFewRows if n < 1; ErrNegativeCost if value < 0.
// Complexity: O(n²).
func Constant(n int, value int64) (*matrix.Dense, error) {
	if n < 1 {
		return nil, builderErrorf(MethodConstant, ErrTooFewRows)
	}
	if value < 0 {
		return nil, builderErrorf(MethodConstant, ErrNegativeCost)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodConstant, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = m.Set(i, j, value)
		}
	}

	return m, nil
}

// Planted builds an n×n matrix with a known unique optimum: a random
// permutation perm gets cost 0 at (i, perm[i]); every other cell costs
// 1 + CostFn. The optimum is therefore perm with total cost 0.
//
// Errors: ErrTooFewRows if n < 1.
// Complexity: O(n²).
func Planted(n int, opts ...BuilderOption) (*matrix.Dense, []int, error) {
	if n < 1 {
		return nil, nil, builderErrorf(MethodPlanted, ErrTooFewRows)
	}
	cfg := newBuilderConfig(opts...)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, builderErrorf(MethodPlanted, err)
	}
	perm := cfg.rng.Perm(n)

	var (
		i, j int
		row  []int64
	)
	for i = 0; i < n; i++ {
		row, _ = m.RowView(i)
		for j = 0; j < n; j++ {
			if j == perm[i] {
				continue
			}
			row[j] = 1 + cfg.costFn(cfg.rng)
		}
	}

	return m, perm, nil
}

// Replicate returns count independent deep copies of m, the way a batch
// run stages one generated instance into every slot.
//
// Errors: ErrNilMatrix if m is nil; ErrTooFewRows if count < 1.
// Complexity: O(count·r·c).
func Replicate(m matrix.Matrix, count int) ([]matrix.Matrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, builderErrorf(MethodReplicate, ErrNilMatrix)
	}
	if count < 1 {
		return nil, builderErrorf(MethodReplicate, ErrTooFewRows)
	}

	out := make([]matrix.Matrix, count)
	var i int
	for i = 0; i < count; i++ {
		out[i] = m.Clone()
	}

	return out, nil
}

// FromRows copies rows into a square, non-negative Dense.
//
// Errors: matrix.ErrInvalidDimensions / ErrRaggedRows / ErrNonSquare from
// the matrix package, or ErrNegativeCost; all wrapped with MethodFromRows.
// Complexity: O(n²).
func FromRows(rows [][]int64) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, builderErrorf(MethodFromRows, err)
	}
	if _, err = matrix.ValidateSquare(m); err != nil {
		return nil, builderErrorf(MethodFromRows, err)
	}
	if err = matrix.ValidateNonNegative(m); err != nil {
		return nil, builderErrorf(MethodFromRows, fmt.Errorf("%w: %w", ErrNegativeCost, err))
	}

	return m, nil
}
