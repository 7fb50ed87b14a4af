// Package matrix provides the dense integer storage used by the assignment
// solver: cost matrices supplied by callers and the mutable tableau a solve
// transforms in place.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface over int64 cells
//     (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by one flat buffer, with
//     no-copy row views and row/column minimum helpers for hot loops.
//   - Validators that reject nil, empty, non-square, negative or oversized
//     inputs with sentinel errors matchable via errors.Is.
//
// All public accessors return errors instead of panicking on user input.
// Dense is not safe for concurrent mutation; give every goroutine its own.
package matrix
