package batch

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lapkit/assignment"
)

// Options configures SolveAll.
//
// Workers – goroutines solving concurrently; values < 1 mean GOMAXPROCS.
// Logger  – receives per-instance debug lines and a summary; nil means zap.NewNop().
// Solver  – options forwarded to every Workspace.Solve call.
type Options struct {
	Workers int
	Logger  *zap.Logger
	Solver  []assignment.Option
}

// Option represents a functional option for configuring SolveAll.
type Option func(*Options)

// WithWorkers bounds the number of concurrent solves.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger routes batch logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithSolverOptions forwards opts to every solve.
func WithSolverOptions(opts ...assignment.Option) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, opts...)
	}
}

// DefaultOptions returns GOMAXPROCS workers, a no-op logger and default solver options.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// resolveOptions folds opts over DefaultOptions and repairs unusable values.
func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}
