// Package builder produces cost matrices for the assignment solver: seeded
// random instances, constant (fully tied) instances, instances with a
// planted optimum, copies for batch runs, and matrices decoded from YAML or
// JSON documents.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG, the cost bound and the cost function.
//   - Cost distributions (CostFn implementations):
//     – UniformCostFn:   uniform over [0, max).
//     – ConstantCostFn:  fixed user-provided value.
//   - Constructors:
//     – Random, Constant, Planted, Replicate, FromRows, Decode.
//
// Guarantees:
//
//   - Deterministic: the default RNG is seeded with DefaultSeed, so two calls
//     with the same options build identical matrices.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
//   - Every matrix returned is square, non-negative and owned by the caller.
package builder
