package assignment

// Controller for the Hungarian method.
//
// This file provides the canonical entry points:
//
//   - Solve:      validate, clone into a fresh Workspace, run the state machine.
//   - SolveRows:  same, from a [][]int64 literal.
//   - Workspace:  reusable tableau + marker grid for callers solving many
//     instances of the same order on one goroutine.
//
// Design principles:
//   - The caller's matrix is never mutated; all work happens on the tableau.
//   - Deterministic: same matrix ⇒ same assignment, cost and revision count.
//   - Bounded: the revision loop stops at a ceiling (n² by default) with ErrInternal.

import (
	"fmt"

	"github.com/katalvlaran/lapkit/matrix"
)

// Workspace owns the per-solve state: the tableau and the marker grid.
// Buffers are reused while consecutive solves share the same order.
// A Workspace must not be used by two goroutines at once.
type Workspace struct {
	tableau *matrix.Dense
	markers *MarkerGrid
}

// NewWorkspace returns an empty Workspace; buffers are allocated on first use.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Solve solves m with a throwaway Workspace.
//
// Errors:
//   - ErrInvalidInput (with the concrete cause) for nil, empty, non-square,
//     negative or > MaxCost input.
//   - ErrBadMaxRevisions for a negative ceiling.
//   - ErrInternal if the ceiling is reached or an invariant breaks.
//
// Complexity: O(n²) per round, at most n² revisions; O(n³)-ish in practice.
func Solve(m matrix.Matrix, opts ...Option) (Result, error) {
	return NewWorkspace().Solve(m, opts...)
}

// SolveRows builds a matrix from rows and solves it.
func SolveRows(rows [][]int64, opts ...Option) (Result, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return Solve(m, opts...)
}

// prepare loads m into the tableau, reallocating only when the order changes.
func (w *Workspace) prepare(m matrix.Matrix, n int) error {
	var err error
	if w.tableau == nil || w.tableau.Rows() != n {
		if w.tableau, err = matrix.NewDense(n, n); err != nil {
			return err
		}
		if w.markers, err = NewMarkerGrid(n); err != nil {
			return err
		}
	} else {
		w.markers.Reset()
	}

	return w.tableau.CopyFrom(m)
}

// Solve runs Reduce once, then alternates Match and Revise until every row
// is assigned:
//
//	Reduced → PartiallyMatched → {Solved | Revised → PartiallyMatched}
//
// The returned Result owns its slice; the Workspace may be reused at once.
func (w *Workspace) Solve(m matrix.Matrix, opts ...Option) (Result, error) {
	o := resolveOptions(opts)
	if o.MaxRevisions < 0 {
		return Result{}, ErrBadMaxRevisions
	}

	// Stage 1 - validation; nothing is touched on failure.
	n, err := validateCostMatrix(m)
	if err != nil {
		return Result{}, err
	}
	if err = w.prepare(m, n); err != nil {
		return Result{}, err
	}

	ceiling := o.MaxRevisions
	if ceiling == 0 {
		ceiling = n * n
	}

	var (
		t         = w.tableau
		g         = w.markers
		round     int
		revisions int
		assigned  int
	)
	emit := func(p Phase) error {
		if o.CheckInvariants {
			if verr := checkState(t, g); verr != nil {
				return fmt.Errorf("Solve: after %s (round %d): %w", p, round, verr)
			}
		}
		if o.OnPhase != nil {
			o.OnPhase(PhaseEvent{
				Phase:     p,
				Round:     round,
				Revisions: revisions,
				Assigned:  g.count,
				N:         n,
				Tableau:   t,
				Markers:   g,
			})
		}

		return nil
	}

	// Stage 2 - reduction.
	if err = Reduce(t); err != nil {
		return Result{}, err
	}
	if err = emit(PhaseReduced); err != nil {
		return Result{}, err
	}

	// Stage 3 - Match ⇄ Revise.
	for {
		if assigned, err = Match(t, g); err != nil {
			return Result{}, fmt.Errorf("Solve: match round %d: %w", round+1, err)
		}
		round++
		if err = emit(PhasePartiallyMatched); err != nil {
			return Result{}, err
		}
		if assigned == n {
			break
		}

		if revisions >= ceiling {
			return Result{}, fmt.Errorf("Solve: %d revisions without a complete matching (%d/%d assigned): %w",
				revisions, assigned, n, ErrInternal)
		}
		if _, err = Revise(t, g); err != nil {
			return Result{}, fmt.Errorf("Solve: revision %d: %w", revisions+1, err)
		}
		revisions++
		if err = emit(PhaseRevised); err != nil {
			return Result{}, err
		}
	}
	if err = emit(PhaseSolved); err != nil {
		return Result{}, err
	}

	// Stage 4 - extract and price against the original matrix.
	assign := g.Assignment()
	cost, err := TotalCost(m, assign)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w: %w", ErrInternal, err)
	}

	return Result{Assignment: assign, Cost: cost, Revisions: revisions}, nil
}

// checkState validates the marker grid and the tableau's non-negativity.
func checkState(t *matrix.Dense, g *MarkerGrid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := matrix.ValidateNonNegative(t); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}
