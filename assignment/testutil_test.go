// Package assignment_test holds shared helpers for the solver tests:
// matrix literals, a brute-force reference optimum and tiny assertions.
package assignment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lapkit/matrix"
)

const (
	// seedDet is the deterministic seed shared by randomized tests.
	seedDet = int64(13)

	// bruteMaxN bounds the order handed to bruteForce (n! permutations).
	bruteMaxN = 7
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// bruteForce returns the minimum total cost over all n! permutations (Heap's
// algorithm). Only for n ≤ bruteMaxN.
func bruteForce(t testing.TB, rows [][]int64) int64 {
	t.Helper()
	n := len(rows)
	require.LessOrEqual(t, n, bruteMaxN, "bruteForce is exponential")

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	cost := func() int64 {
		var s int64
		for i, j := range perm {
			s += rows[i][j]
		}

		return s
	}

	best := int64(math.MaxInt64)
	c := make([]int, n)
	if v := cost(); v < best {
		best = v
	}
	for i := 0; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if v := cost(); v < best {
				best = v
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return best
}

// requirePermutation asserts assign is a permutation of 0..n-1.
func requirePermutation(t testing.TB, assign []int, n int) {
	t.Helper()
	require.Len(t, assign, n)
	seen := make([]bool, n)
	for row, col := range assign {
		require.True(t, col >= 0 && col < n, "row %d → column %d out of range", row, col)
		require.False(t, seen[col], "column %d used twice", col)
		seen[col] = true
	}
}

// costOf sums rows at (i, assign[i]).
func costOf(rows [][]int64, assign []int) int64 {
	var s int64
	for i, j := range assign {
		s += rows[i][j]
	}

	return s
}

// potentialsCost is an independent O(n³) shortest-augmenting-path solver
// with row/column potentials. It serves as the reference optimum for orders
// too large for bruteForce.
func potentialsCost(a [][]int64) int64 {
	const inf = int64(math.MaxInt64 / 4)
	var (
		n   = len(a)
		u   = make([]int64, n+1)
		v   = make([]int64, n+1)
		p   = make([]int, n+1)
		way = make([]int, n+1)
	)
	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], inf, 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				if cur := a[i0-1][j-1] - u[i0] - v[j]; cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	var total int64
	for j := 1; j <= n; j++ {
		total += a[p[j]-1][j-1]
	}

	return total
}
