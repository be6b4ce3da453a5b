package generator

import (
	"log/slog"
	"time"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/jigsaw"
	"github.com/rybkr/tilepuzzle/internal/rng"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// Generator creates tiling puzzles. It is safe for concurrent use: every
// call to Generate works on its own random source unless Options.Source is
// set, in which case access to that source is serialised.
type Generator struct {
	options *Options
	shared  rng.Source
	logger  *slog.Logger
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	g := &Generator{
		options: options,
		logger:  options.Logger,
	}
	if options.Source != nil {
		g.shared = rng.NewLocked(options.Source)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Generate builds a base shape and cuts it into pieces.
// The only errors are request validation failures; once generation starts
// it always produces a complete, valid Result.
func (g *Generator) Generate(req Request) (*board.Result, error) {
	if err := req.Validate(g.options.MaxFigureSize); err != nil {
		return nil, err
	}

	src, seed := g.source(req)
	start := time.Now()
	geo := tiling.For(req.TileType)

	tiles, borders := growRegion(geo, req.FigureSize, src)
	tileFactor, offsets := normalize(borders)

	opts := jigsaw.Options{
		MaxRetries:   g.options.MaxRetries,
		MaxRootDraws: g.options.MaxRootDraws,
	}
	if g.options.Timeout > 0 {
		opts.Deadline = start.Add(g.options.Timeout)
	}
	forest, report := jigsaw.Partition(geo, tiles, req.PiecesAmount, src, opts)

	logger := g.logger.With(
		slog.String("tile_type", req.TileType.String()),
		slog.Int("figure_size", req.FigureSize),
		slog.Int("pieces", req.PiecesAmount),
	)
	if report.Degraded {
		logger.Warn("partition balance not reached, accepting last attempt",
			slog.Int("attempts", report.Attempts),
			slog.Any("sizes", forest.Sizes()))
	} else {
		logger.Debug("partition accepted",
			slog.Int("attempts", report.Attempts),
			slog.Bool("balanced", report.Balanced),
			slog.Bool("feasible", report.Feasible))
	}

	colors := board.PickColors(src, req.PiecesAmount)
	pieces := make([]board.Piece, req.PiecesAmount)
	for i := range pieces {
		root := forest.Root(i).Pos
		pieces[i] = board.Piece{
			RootPosOnBase: root,
			PosDataArray:  replay(geo, forest, i),
			Color:         colors[i],
		}
		if req.TileType == tiling.Triangle {
			upward := root.Upward()
			pieces[i].RootIsUpward = &upward
		}
	}

	logger.Debug("puzzle generated", slog.Duration("elapsed", time.Since(start)))

	return &board.Result{
		Base: board.Base{
			TileType:      req.TileType,
			TileFactor:    tileFactor,
			OffsetFactors: offsets,
			PosData:       tiles,
		},
		Pieces: pieces,
		Seed:   seed,
		Stats: board.Stats{
			Attempts: report.Attempts,
			Balanced: report.Balanced,
			Degraded: report.Degraded,
		},
	}, nil
}

// source picks the random source for one request. The returned seed is nil
// when the shared source was used, since those draws cannot be replayed.
func (g *Generator) source(req Request) (rng.Source, *int64) {
	if req.Seed != nil {
		seed := *req.Seed
		return rng.New(seed), &seed
	}
	if g.shared != nil {
		return g.shared, nil
	}
	seed := rng.TimeSeed()
	return rng.New(seed), &seed
}

// Generate is a convenience function that generates with default options.
func Generate(req Request) (*board.Result, error) {
	return New(nil).Generate(req)
}
