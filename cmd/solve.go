package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/solver"
)

var (
	solveTimeout  time.Duration
	maxSolutions  int
	showPlacement bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve puzzles from a JSON file",
		Long: `Reassemble the pieces of one or more puzzles written by "gen -o file.json"
and report how many solutions each has.

Examples:
  tilepuzzle solve level.json
  tilepuzzle solve levels.json --max 10 --show`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 5*time.Second, "Search time limit per puzzle")
	solveCmd.Flags().IntVar(&maxSolutions, "max", 2, "Stop counting after this many solutions")
	solveCmd.Flags().BoolVar(&showPlacement, "show", false, "Print the first solution's placements")

	rootCmd.AddCommand(solveCmd)
}

// readResults accepts a single puzzle object or an array of them.
func readResults(r io.Reader) ([]*board.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var results []*board.Result
		if err := json.Unmarshal(data, &results); err != nil {
			return nil, fmt.Errorf("invalid puzzle list: %w", err)
		}
		return results, nil
	}
	var result board.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("invalid puzzle: %w", err)
	}
	return []*board.Result{&result}, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open puzzle file: %w", err)
	}
	defer file.Close()

	results, err := readResults(file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, r := range results {
		report, err := check(cmd.Context(), r, maxSolutions, solveTimeout)
		if err != nil && !errors.Is(err, solver.ErrTimeout) {
			return fmt.Errorf("puzzle #%d: %w", i+1, err)
		}
		fmt.Fprintf(out, "Puzzle #%d: %s\n", i+1, describe(report, err))

		if showPlacement && len(report.Solutions) > 0 {
			for _, p := range report.Solutions[0] {
				fmt.Fprintf(out, "  piece %d (%s) rotation %d at %v\n",
					p.Piece+1, r.Pieces[p.Piece].Color, p.Rotation, p.Anchor)
			}
		}
	}
	return nil
}

// check counts up to limit solutions of r.
func check(ctx context.Context, r *board.Result, limit int, timeout time.Duration) (*solver.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := solver.New(r, &solver.Options{Timeout: timeout, MaxSolutions: limit})
	if err != nil {
		return nil, err
	}
	return s.Count(ctx)
}

func describe(report *solver.Report, err error) string {
	n := len(report.Solutions)
	switch {
	case errors.Is(err, solver.ErrTimeout):
		return fmt.Sprintf("timed out after %d nodes with %d solution(s) found", report.Nodes, n)
	case n == 0:
		return fmt.Sprintf("no solution (%d nodes)", report.Nodes)
	case n == 1 && report.Exhausted:
		return fmt.Sprintf("unique solution (%d nodes)", report.Nodes)
	case report.Exhausted:
		return fmt.Sprintf("%d solutions (%d nodes)", n, report.Nodes)
	default:
		return fmt.Sprintf("at least %d solutions (%d nodes)", n, report.Nodes)
	}
}
