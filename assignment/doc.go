// Package assignment solves the square linear assignment problem: given an
// n×n matrix of non-negative integer costs, find the one-to-one mapping of
// rows to columns with the smallest total cost.
//
// It implements the Hungarian (König) method on a private working copy of
// the costs, the tableau:
//
//   - Reduce:  subtract row then column minima; every row and column gets a zero.
//   - Match:   commit forced zeros (the only candidate in a row or column),
//     then a deterministic tie-break, then augmenting-path repair.
//   - Revise:  when the zeros hold no complete matching, compute the König
//     line cover and shift the tableau by the smallest uncovered value.
//   - Solve:   Reduce once, then Match ⇄ Revise until n rows are assigned.
//
// Complexity:
//
//   - Time:   O(n²) per round; at most n² revisions (enforced as a ceiling).
//   - Memory: O(n²) for the tableau and the marker grid.
//
// Determinism: rows and columns are always scanned in index order, so the
// same matrix always yields the same assignment.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrInvalidInput   nil, empty, non-square, negative or > MaxCost input.
//   - ErrInternal       revision ceiling exceeded or a broken invariant.
//   - ErrBadAssignment  TotalCost / ValidateAssignment given a non-permutation.
//
// Usage:
//
//	res, err := assignment.SolveRows([][]int64{
//	    {4, 1, 3},
//	    {2, 0, 5},
//	    {3, 2, 2},
//	})
//	// res.Assignment == []int{1, 0, 2}, res.Cost == 5
//
// A single solve is sequential and touches no shared state; independent
// instances may be solved in parallel, each with its own Workspace (see
// package batch).
package assignment
