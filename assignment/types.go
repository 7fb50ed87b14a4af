package assignment

import (
	"errors"

	"github.com/katalvlaran/lapkit/matrix"
)

// Sentinel errors returned by the assignment solver.
var (
	// ErrInvalidInput is returned (wrapped together with the concrete matrix
	// sentinel) for nil, empty, non-square, negative or oversized cost matrices.
	// Nothing is transformed when it is returned.
	ErrInvalidInput = errors.New("assignment: invalid cost matrix")

	// ErrCostOverflow marks a cell above MaxCost; always wrapped with ErrInvalidInput.
	ErrCostOverflow = errors.New("assignment: cost exceeds MaxCost")

	// ErrInternal signals a broken solver invariant: the revision ceiling was
	// exceeded, an Assigned cell lost its zero, or a revision found nothing to
	// shift. It never depends on the input being valid or not.
	ErrInternal = errors.New("assignment: internal consistency failure")

	// ErrBadAssignment is returned when a row→column mapping is not a permutation.
	ErrBadAssignment = errors.New("assignment: mapping is not a permutation")

	// ErrBadMaxRevisions indicates a negative revision ceiling.
	ErrBadMaxRevisions = errors.New("assignment: MaxRevisions must be non-negative")
)

// MaxCost bounds individual costs (2^40). With n in the low thousands the
// total, and every intermediate tableau value, stays far inside int64.
const MaxCost int64 = 1 << 40

// Marker is the tri-state mark of a MarkerGrid cell.
type Marker uint8

const (
	// Unmarked cells are neither assigned nor eliminated.
	Unmarked Marker = iota

	// Assigned marks the committed zero of its row and column.
	Assigned

	// Eliminated marks a zero that conflicts with an Assigned cell in its row or column.
	Eliminated
)

// String implements fmt.Stringer.
func (m Marker) String() string {
	switch m {
	case Unmarked:
		return "unmarked"
	case Assigned:
		return "assigned"
	case Eliminated:
		return "eliminated"
	default:
		return "marker(?)"
	}
}

// Phase is a Controller state.
//
//	Reduced → PartiallyMatched → {Solved | Revised → PartiallyMatched}
type Phase int

const (
	// PhaseReduced follows the single Reduce call.
	PhaseReduced Phase = iota

	// PhasePartiallyMatched follows every Match call.
	PhasePartiallyMatched

	// PhaseRevised follows every Revise call.
	PhaseRevised

	// PhaseSolved is terminal: n rows are assigned.
	PhaseSolved
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseReduced:
		return "reduced"
	case PhasePartiallyMatched:
		return "partially-matched"
	case PhaseRevised:
		return "revised"
	case PhaseSolved:
		return "solved"
	default:
		return "phase(?)"
	}
}

// PhaseEvent is delivered to the OnPhase hook after every transition.
//
// Tableau and Markers alias the solver's working state and are only valid
// for the duration of the callback; hooks must not mutate them.
type PhaseEvent struct {
	Phase     Phase
	Round     int // Match calls so far (0 while Reduced)
	Revisions int // Revise calls so far
	Assigned  int // rows holding an Assigned marker
	N         int

	Tableau *matrix.Dense
	Markers *MarkerGrid
}

// Result is the outcome of one solve.
type Result struct {
	// Assignment[row] is the column assigned to row; a permutation of 0..n-1.
	Assignment []int

	// Cost is the total of the ORIGINAL matrix at the assigned cells.
	Cost int64

	// Revisions counts tableau revisions the solve needed.
	Revisions int
}

// Options configures a solve.
//
// MaxRevisions    – revision ceiling; 0 means n² (the default).
// CheckInvariants – validate the MarkerGrid after every phase and fail with
//
//	ErrInternal on violation. Costs O(n²) per phase.
//
// OnPhase         – optional observer of Controller transitions.
type Options struct {
	MaxRevisions    int
	CheckInvariants bool
	OnPhase         func(PhaseEvent)
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxRevisions overrides the revision ceiling. 0 restores the n² default;
// negative values make Solve fail with ErrBadMaxRevisions.
func WithMaxRevisions(limit int) Option {
	return func(o *Options) {
		o.MaxRevisions = limit
	}
}

// WithInvariantChecks enables MarkerGrid validation after every phase.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}

// WithOnPhase installs a transition observer.
func WithOnPhase(fn func(PhaseEvent)) Option {
	return func(o *Options) {
		o.OnPhase = fn
	}
}

// DefaultOptions returns an Options struct with the defaults used by Solve:
// automatic n² ceiling, no invariant checks, no hook.
func DefaultOptions() Options {
	return Options{}
}

// resolveOptions folds opts over DefaultOptions.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
