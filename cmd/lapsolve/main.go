// Command lapsolve solves dense linear assignment problems from files and
// benchmarks the solver on seeded random batches.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lapkit/assignment"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	workers      int
	maxRevisions int

	// Loaded at PersistentPreRunE
	cfg    = DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lapsolve",
	Short: "Hungarian-method solver for square assignment problems",
	Long: `lapsolve finds the minimum-cost one-to-one assignment of rows to
columns in a square matrix of non-negative integer costs.

  lapsolve solve costs.yaml       solve one or more matrix files
  lapsolve bench --count 100      solve a batch of seeded random matrices`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return loadSettings(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "concurrent solves (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().IntVar(&maxRevisions, "max-revisions", 0, "revision ceiling per solve (0 = n²)")

	rootCmd.AddCommand(solveCmd, benchCmd)
}

// loadSettings reads the config file and lets explicitly set flags win.
func loadSettings(cmd *cobra.Command) error {
	loaded, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		loaded.Workers = workers
	}
	if cmd.Flags().Changed("max-revisions") {
		loaded.MaxRevisions = maxRevisions
	}
	if err = loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("configuration loaded",
		zap.String("path", configPath),
		zap.Int("workers", cfg.Workers),
		zap.Int("max_revisions", cfg.MaxRevisions))

	return nil
}

// solverOptions maps the configuration onto assignment options.
func solverOptions() []assignment.Option {
	return []assignment.Option{assignment.WithMaxRevisions(cfg.MaxRevisions)}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
