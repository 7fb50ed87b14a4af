// Package batch solves many independent assignment instances in parallel.
//
// Each worker goroutine owns one assignment.Workspace and pulls instance
// indexes from a shared counter, so buffers are reused across instances of
// the same order and no solver state is ever shared. Results come back in
// input order and are identical to solving the instances one by one.
//
// Usage:
//
//	mats, _ := builder.Replicate(m, 100)
//	results, stats, err := batch.SolveAll(ctx, mats,
//	    batch.WithWorkers(8),
//	    batch.WithLogger(logger),
//	)
//
// The first failing instance cancels the run; its error is returned wrapped
// with the instance index. Context cancellation stops scheduling new
// instances; a solve already in progress runs to completion.
package batch
