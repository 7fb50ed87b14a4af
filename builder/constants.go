// Package builder defines shared constants used by the matrix constructors.
package builder

// Constructor names used to prefix errors.
const (
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodConstant is the canonical name for the Constant constructor.
	MethodConstant = "Constant"
	// MethodPlanted is the canonical name for the Planted constructor.
	MethodPlanted = "Planted"
	// MethodReplicate is the canonical name for the Replicate constructor.
	MethodReplicate = "Replicate"
	// MethodFromRows is the canonical name for the FromRows constructor.
	MethodFromRows = "FromRows"
	// MethodDecode is the canonical name for the Decode constructor.
	MethodDecode = "Decode"
)

// Deterministic defaults, matching the classic assignment benchmark.
const (
	// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 13

	// DefaultMaxCost is the exclusive upper bound of UniformCostFn by default.
	DefaultMaxCost int64 = 5_000_000

	// DefaultOrder is the classic benchmark's fixed matrix order.
	DefaultOrder = 101
)
