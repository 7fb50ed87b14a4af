package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lapkit/batch"
	"github.com/katalvlaran/lapkit/builder"
	"github.com/katalvlaran/lapkit/matrix"
)

var outputFormat string

// solveCmd solves matrix files (YAML or JSON; "-" reads stdin)
var solveCmd = &cobra.Command{
	Use:   "solve FILE...",
	Short: "Solve one or more cost matrix files",
	Long: `Each FILE holds one square matrix of non-negative integer costs, either
as a plain list of rows or under a "costs:" key. JSON is accepted too.
Use "-" to read a single matrix from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format: text or yaml")
}

// solveReport is the YAML shape of one solved file.
type solveReport struct {
	File       string `yaml:"file"`
	Order      int    `yaml:"order"`
	Assignment []int  `yaml:"assignment"`
	Cost       int64  `yaml:"cost"`
	Revisions  int    `yaml:"revisions"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	if outputFormat != "text" && outputFormat != "yaml" {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	mats := make([]matrix.Matrix, len(args))
	for i, path := range args {
		m, err := readMatrix(cmd.InOrStdin(), path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("matrix loaded", zap.String("file", path), zap.Int("order", m.Rows()))
		mats[i] = m
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, _, err := batch.SolveAll(ctx, mats,
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(logger),
		batch.WithSolverOptions(solverOptions()...))
	if err != nil {
		return err
	}

	reports := make([]solveReport, len(results))
	for i, res := range results {
		reports[i] = solveReport{
			File:       args[i],
			Order:      mats[i].Rows(),
			Assignment: res.Assignment,
			Cost:       res.Cost,
			Revisions:  res.Revisions,
		}
	}

	return writeReports(cmd.OutOrStdout(), reports)
}

// readMatrix decodes path, or stdin for "-".
func readMatrix(stdin io.Reader, path string) (*matrix.Dense, error) {
	if path == "-" {
		return builder.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return builder.Decode(f)
}

func writeReports(w io.Writer, reports []solveReport) error {
	if outputFormat == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}

		return enc.Close()
	}

	for _, r := range reports {
		if len(reports) > 1 {
			fmt.Fprintf(w, "%s:\n", r.File)
		}
		fmt.Fprintf(w, "assignment: %v\n", r.Assignment)
		fmt.Fprintf(w, "cost: %d\n", r.Cost)
		fmt.Fprintf(w, "revisions: %d\n", r.Revisions)
	}

	return nil
}
