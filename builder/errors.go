// SPDX-License-Identifier: MIT
// Package: lapkit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (%w wrapping).
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewRows indicates that a requested order n (or a copy count) is below 1.
var ErrTooFewRows = errors.New("builder: parameter too small")

// ErrNilMatrix indicates that a nil matrix was passed to Replicate.
var ErrNilMatrix = errors.New("builder: matrix is nil")

// ErrNegativeCost indicates a negative constant or decoded cost.
var ErrNegativeCost = errors.New("builder: negative cost")

// ErrBadDocument indicates that a YAML/JSON document does not hold a cost matrix.
var ErrBadDocument = errors.New("builder: malformed matrix document")

// builderErrorf prefixes err with the constructor name, keeping it matchable.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
