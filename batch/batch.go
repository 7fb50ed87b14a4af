package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lapkit/assignment"
	"github.com/katalvlaran/lapkit/matrix"
)

// ErrNilContext is returned when SolveAll is called with a nil context.
var ErrNilContext = errors.New("batch: nil context")

// Stats summarizes a completed run.
type Stats struct {
	Count     int           // instances solved
	TotalCost int64         // sum of Result.Cost
	Revisions int           // sum of Result.Revisions
	Workers   int           // goroutines actually started
	Elapsed   time.Duration // wall clock for the whole run
}

// SolveAll solves every matrix in mats and returns the results in input order.
//
// Errors:
//   - the first instance error, wrapped with its index (errors.Is still
//     matches assignment.ErrInvalidInput and friends);
//   - ctx.Err() if the context ends before every instance was scheduled.
//
// On error the partial results are discarded and Stats is zero.
func SolveAll(ctx context.Context, mats []matrix.Matrix, opts ...Option) ([]assignment.Result, Stats, error) {
	if ctx == nil {
		return nil, Stats{}, ErrNilContext
	}
	o := resolveOptions(opts)
	if len(mats) == 0 {
		return []assignment.Result{}, Stats{}, nil
	}

	workers := o.Workers
	if workers > len(mats) {
		workers = len(mats)
	}

	var (
		start   = time.Now()
		results = make([]assignment.Result, len(mats))
		next    atomic.Int64
		w       int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for w = 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			ws := assignment.NewWorkspace()
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				i := int(next.Add(1) - 1)
				if i >= len(mats) {
					return nil
				}
				res, err := ws.Solve(mats[i], o.Solver...)
				if err != nil {
					return fmt.Errorf("batch: instance %d: %w", i, err)
				}
				results[i] = res
				o.Logger.Debug("instance solved",
					zap.Int("worker", worker),
					zap.Int("index", i),
					zap.Int64("cost", res.Cost),
					zap.Int("revisions", res.Revisions))
			}
		})
	}
	if err := g.Wait(); err != nil {
		// Caller cancellation surfaces as ctx.Err().
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			err = fmt.Errorf("batch: %w", ctxErr)
		}
		o.Logger.Warn("batch failed", zap.Error(err))

		return nil, Stats{}, err
	}

	stats := Stats{Count: len(results), Workers: workers, Elapsed: time.Since(start)}
	for _, res := range results {
		stats.TotalCost += res.Cost
		stats.Revisions += res.Revisions
	}
	o.Logger.Info("batch solved",
		zap.Int("instances", stats.Count),
		zap.Int("workers", stats.Workers),
		zap.Int64("total_cost", stats.TotalCost),
		zap.Int("revisions", stats.Revisions),
		zap.Duration("elapsed", stats.Elapsed))

	return results, stats, nil
}
