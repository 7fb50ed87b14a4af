// Package lapkit is a small toolkit for the dense linear assignment problem:
// given an n×n matrix of non-negative integer costs, pick one column per row
// (each column once) so the total cost is minimal.
//
// What is inside?
//
//	matrix/      — int64 Dense storage with safe accessors, row views and validators
//	assignment/  — the Hungarian (König) solver: Reduce, Match, Revise, Solve
//	builder/     — seeded random, constant and planted matrices; YAML/JSON decoding
//	batch/       — parallel solving of independent instances, one Workspace per worker
//	cmd/lapsolve — CLI: `solve` matrix files, `bench` seeded random batches
//	examples/    — runnable scenario programs
//
// Guarantees:
//
//   - Deterministic – the same matrix always yields the same assignment.
//   - Safe – caller matrices are never mutated; invalid input is rejected
//     with sentinel errors before any work starts.
//   - Bounded – the revision loop stops at a ceiling (n² by default).
//
// Quick example:
//
//	res, _ := assignment.SolveRows([][]int64{
//	    {4, 1, 3},
//	    {2, 0, 5},
//	    {3, 2, 2},
//	})
//	// res.Assignment == [1 0 2], res.Cost == 5
//
//	go get github.com/katalvlaran/lapkit
package lapkit
