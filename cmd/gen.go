package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/generator"
	"github.com/rybkr/tilepuzzle/internal/render"
	"github.com/rybkr/tilepuzzle/internal/rng"
	"github.com/rybkr/tilepuzzle/internal/solver"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

const imageSize = 600

var (
	numPuzzles int
	tileName   string
	figureSize string
	pieces     int
	seed       int64
	outputFile string
	timeout    time.Duration
	maxRetries int
	useDice    bool
	checkGen   bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate tiling puzzles",
		Long: `Generate one or more tiling puzzles.

The output format follows the --output extension: .json writes the raw
puzzle data, .html a printable page per puzzle, and .png an image of the
assembled solution. Without --output a summary is printed.

Examples:
  tilepuzzle gen --tile hexagon --size 20 --pieces 4
  tilepuzzle gen -n 5 --tile triangle --size 18:30 --pieces 3 -o puzzles.html
  tilepuzzle gen --size 40 --pieces 6 --seed 42 -o level.json`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&tileName, "tile", "t", "square", "Tile type: square, hexagon or triangle")
	genCmd.Flags().StringVarP(&figureSize, "size", "s", "20", "Tiles in the shape, or a range like 18:30")
	genCmd.Flags().IntVarP(&pieces, "pieces", "p", 4, "Number of pieces")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed; puzzle i uses seed+i (default: random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (.json, .html or .png)")
	genCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Soft time limit per puzzle")
	genCmd.Flags().IntVar(&maxRetries, "retries", 1000, "Unbalanced partitions to discard before accepting one")
	genCmd.Flags().BoolVar(&useDice, "dice", false, "Draw unseeded puzzles from the dice roller")
	genCmd.Flags().BoolVar(&checkGen, "check", false, "Solve each puzzle and report whether its solution is unique")

	rootCmd.AddCommand(genCmd)
}

// parseSizeRange parses a figure size string which can be:
// - A single number: "20"
// - A range: "18:30"
func parseSizeRange(s string) (min, max int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		val, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size: %w", err)
		}
		return val, val, nil
	case 2:
		minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size min: %w", err)
		}
		maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size max: %w", err)
		}
		if minVal > maxVal {
			return 0, 0, fmt.Errorf("size min (%d) cannot be greater than max (%d)", minVal, maxVal)
		}
		return minVal, maxVal, nil
	}
	return 0, 0, fmt.Errorf("invalid size format: %s (use format like '20' or '18:30')", s)
}

func runGen(cmd *cobra.Command, args []string) error {
	tileType, err := tiling.ParseType(tileName)
	if err != nil {
		return err
	}
	minSize, maxSize, err := parseSizeRange(figureSize)
	if err != nil {
		return err
	}
	seeded := cmd.Flags().Changed("seed")
	if seeded && useDice {
		return fmt.Errorf("--seed and --dice cannot be combined")
	}

	opts := generator.DefaultOptions()
	opts.Timeout = timeout
	opts.MaxRetries = maxRetries
	if useDice {
		opts.Source = rng.Dice()
	}
	gen := generator.New(opts)

	// Sizes within a range are drawn from their own source so that a seeded
	// run picks the same sizes every time.
	sizeSrc := rng.New(rng.TimeSeed())
	if seeded {
		sizeSrc = rng.New(seed)
	}

	results := make([]*board.Result, 0, numPuzzles)
	for i := 0; i < numPuzzles; i++ {
		size := minSize
		if maxSize > minSize {
			size = minSize + sizeSrc.Intn(maxSize-minSize+1)
		}

		req := generator.Request{TileType: tileType, FigureSize: size, PiecesAmount: pieces}
		if seeded {
			req = req.WithSeed(seed + int64(i))
		}

		result, err := gen.Generate(req)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		results = append(results, result)
	}

	if outputFile == "" {
		return printSummary(cmd, results)
	}

	if err := writeOutput(outputFile, results); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d puzzle(s) in %s\n", len(results), outputFile)
	return nil
}

// writeOutput picks the format from the file extension. PNG output with
// several puzzles writes one numbered file each.
func writeOutput(filename string, results []*board.Result) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return writeFile(filename, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if len(results) == 1 {
				return enc.Encode(results[0])
			}
			return enc.Encode(results)
		})
	case ".html":
		return writeFile(filename, func(w io.Writer) error {
			return render.HTML(w, results, imageSize)
		})
	case ".png":
		for i, r := range results {
			name := filename
			if len(results) > 1 {
				name = numbered(filename, i+1)
			}
			err := writeFile(name, func(w io.Writer) error {
				return render.PNG(w, r, imageSize)
			})
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use .json, .html or .png)", filepath.Ext(filename))
	}
}

func writeFile(filename string, write func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}

// numbered turns "out.png" into "out-2.png".
func numbered(filename string, n int) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(filename, ext), n, ext)
}

func printSummary(cmd *cobra.Command, results []*board.Result) error {
	w := cmd.OutOrStdout()
	for i, r := range results {
		fmt.Fprintf(w, "Puzzle #%d (%s, %d tiles, %d pieces", i+1,
			r.Base.TileType, len(r.Base.PosData), len(r.Pieces))
		if r.Seed != nil {
			fmt.Fprintf(w, ", seed %d", *r.Seed)
		}
		fmt.Fprintln(w, "):")
		for j, p := range r.Pieces {
			fmt.Fprintf(w, "  piece %d %s root %v: %d tiles\n", j+1, p.Color, p.RootPosOnBase, p.Size())
		}
		if checkGen {
			report, err := check(cmd.Context(), r, 2, timeout)
			if err != nil && !errors.Is(err, solver.ErrTimeout) {
				return fmt.Errorf("puzzle #%d: %w", i+1, err)
			}
			fmt.Fprintf(w, "  %s\n", describe(report, err))
		}
		fmt.Fprintln(w)
	}
	return nil
}
