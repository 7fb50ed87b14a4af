package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lapkit/batch"
	"github.com/katalvlaran/lapkit/builder"
)

var (
	benchSize    int
	benchCount   int
	benchSeed    int64
	benchMaxCost int64
)

// benchCmd solves many copies of one seeded random matrix
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve a batch of copies of one seeded random matrix",
	Long: `bench generates one random matrix (order --size, costs in
[0, --max-cost), seeded with --seed), copies it --count times and solves
every copy in parallel, reporting the aggregate cost and the elapsed time.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchSize, "size", builder.DefaultOrder, "matrix order")
	benchCmd.Flags().IntVar(&benchCount, "count", 16, "copies to solve")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", builder.DefaultSeed, "generator seed")
	benchCmd.Flags().Int64Var(&benchMaxCost, "max-cost", builder.DefaultMaxCost, "exclusive cost bound")
}

// applyBenchFlags copies explicitly set bench flags over the config.
func applyBenchFlags(cmd *cobra.Command) error {
	if cmd.Flags().Changed("size") {
		cfg.Bench.Size = benchSize
	}
	if cmd.Flags().Changed("count") {
		cfg.Bench.Count = benchCount
	}
	if cmd.Flags().Changed("seed") {
		cfg.Bench.Seed = benchSeed
	}
	if cmd.Flags().Changed("max-cost") {
		cfg.Bench.MaxCost = benchMaxCost
	}

	return cfg.Validate()
}

func runBench(cmd *cobra.Command, args []string) error {
	if err := applyBenchFlags(cmd); err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := cfg.Bench
	m, err := builder.Random(b.Size, builder.WithSeed(b.Seed), builder.WithMaxCost(b.MaxCost))
	if err != nil {
		return err
	}
	mats, err := builder.Replicate(m, b.Count)
	if err != nil {
		return err
	}
	logger.Info("bench starting",
		zap.Int("size", b.Size),
		zap.Int("count", b.Count),
		zap.Int64("seed", b.Seed),
		zap.Int64("max_cost", b.MaxCost))

	results, stats, err := batch.SolveAll(ctx, mats,
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(logger),
		batch.WithSolverOptions(solverOptions()...))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "order:      %d\n", b.Size)
	fmt.Fprintf(w, "instances:  %d\n", stats.Count)
	fmt.Fprintf(w, "workers:    %d\n", stats.Workers)
	fmt.Fprintf(w, "cost:       %d\n", results[0].Cost)
	fmt.Fprintf(w, "revisions:  %d\n", results[0].Revisions)
	fmt.Fprintf(w, "elapsed:    %s\n", stats.Elapsed)
	fmt.Fprintf(w, "per solve:  %s\n", stats.Elapsed/time.Duration(stats.Count))

	return nil
}
