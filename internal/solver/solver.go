// Package solver reassembles a puzzle's pieces onto its base. It is used to
// check that a generated puzzle can be solved and whether the solution is
// unique.
package solver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/rng"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

var (
	ErrNoSolution        = errors.New("pieces cannot cover the base")
	ErrMultipleSolutions = errors.New("puzzle has multiple solutions")
	ErrInvalidPuzzle     = errors.New("puzzle is malformed")
	ErrTimeout           = errors.New("solver timeout exceeded")
)

// Placement puts one piece on the base in a given rotation.
type Placement struct {
	Piece    int
	Rotation int
	Anchor   tiling.Position   // base tile the piece's root lands on
	Tiles    []tiling.Position // covered base tiles
}

// Solution holds one placement per piece, indexed by piece.
type Solution []Placement

// Report summarises a counting search.
type Report struct {
	Solutions []Solution
	Nodes     int  // search nodes visited
	Exhausted bool // the whole search space was explored
}

// Solver searches for ways to cover a puzzle's base with its pieces.
type Solver struct {
	puzzle  *board.Result
	options *Options
	src     rng.Source

	placements []Placement
	byTile     map[tiling.Position][]int

	covered map[tiling.Position]bool
	used    []bool
	current Solution
	nodes   int
}

// New prepares a solver for r. The puzzle must pass board validation.
func New(r *board.Result, options *Options) (*Solver, error) {
	if options == nil {
		options = DefaultOptions()
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPuzzle, err)
	}

	s := &Solver{
		puzzle:  r,
		options: options,
		src:     options.Source,
	}
	if options.Randomize && s.src == nil {
		s.src = rng.New(rng.TimeSeed())
	}
	s.buildPlacements()
	return s, nil
}

// buildPlacements lists every way a piece fits inside the base, collapsing
// rotations that cover the same tiles.
func (s *Solver) buildPlacements() {
	r := s.puzzle
	geo := tiling.For(r.Base.TileType)

	inBase := make(map[tiling.Position]struct{}, len(r.Base.PosData))
	for _, p := range r.Base.PosData {
		inBase[p] = struct{}{}
	}
	s.byTile = make(map[tiling.Position][]int, len(r.Base.PosData))

	for i := range r.Pieces {
		piece := &r.Pieces[i]
		seen := make(map[string]struct{})

		for rot, shape := range piece.PosDataArray {
			for _, anchor := range r.Base.PosData {
				if geo.Type() == tiling.Triangle && !orientationMatches(piece, anchor, rot) {
					continue
				}
				tiles, ok := place(shape, anchor, inBase)
				if !ok {
					continue
				}
				key := tileKey(tiles)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				id := len(s.placements)
				s.placements = append(s.placements, Placement{Piece: i, Rotation: rot, Anchor: anchor, Tiles: tiles})
				for _, t := range tiles {
					s.byTile[t] = append(s.byTile[t], id)
				}
			}
		}
	}
}

// orientationMatches reports whether rotation rot of piece may sit on
// anchor. Every odd rotation step flips a triangle.
func orientationMatches(piece *board.Piece, anchor tiling.Position, rot int) bool {
	return anchor.Upward() == (piece.RootPosOnBase.Upward() != (rot%2 == 1))
}

func place(shape []tiling.Position, anchor tiling.Position, inBase map[tiling.Position]struct{}) ([]tiling.Position, bool) {
	tiles := make([]tiling.Position, len(shape))
	for i, off := range shape {
		t := anchor.Add(off)
		if _, ok := inBase[t]; !ok {
			return nil, false
		}
		tiles[i] = t
	}
	return tiles, true
}

func tileKey(tiles []tiling.Position) string {
	sorted := slices.Clone(tiles)
	slices.SortFunc(sorted, func(a, b tiling.Position) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	var sb strings.Builder
	for _, t := range sorted {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Placements returns how many distinct placements the search chooses from.
func (s *Solver) Placements() int {
	return len(s.placements)
}

// Solve returns the first solution found.
func (s *Solver) Solve(ctx context.Context) (Solution, error) {
	report, err := s.search(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(report.Solutions) == 0 {
		return nil, ErrNoSolution
	}
	return report.Solutions[0], nil
}

// Count searches for up to Options.MaxSolutions solutions. A timeout returns
// the partial report together with ErrTimeout.
func (s *Solver) Count(ctx context.Context) (*Report, error) {
	limit := s.options.MaxSolutions
	if limit <= 0 {
		limit = 1
	}
	return s.search(ctx, limit)
}

// Unique reports an error unless exactly one solution exists.
func (s *Solver) Unique(ctx context.Context) error {
	report, err := s.search(ctx, 2)
	if err != nil {
		return err
	}
	switch len(report.Solutions) {
	case 0:
		return ErrNoSolution
	case 1:
		return nil
	default:
		return ErrMultipleSolutions
	}
}

func (s *Solver) search(ctx context.Context, limit int) (*Report, error) {
	ctx, cancel := s.makeContext(ctx)
	defer cancel()

	s.reset()
	report := &Report{}
	s.backtrack(ctx, report, limit)
	report.Nodes = s.nodes

	if ctx.Err() != nil && len(report.Solutions) < limit {
		return report, ErrTimeout
	}
	report.Exhausted = len(report.Solutions) < limit
	return report, nil
}

func (s *Solver) makeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(ctx, s.options.Timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Solver) reset() {
	s.covered = make(map[tiling.Position]bool, len(s.puzzle.Base.PosData))
	s.used = make([]bool, len(s.puzzle.Pieces))
	s.current = make(Solution, len(s.puzzle.Pieces))
	s.nodes = 0
}

// backtrack covers the most constrained tile first and returns true once
// limit solutions have been collected.
func (s *Solver) backtrack(ctx context.Context, report *Report, limit int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}
	s.nodes++

	if len(s.covered) == len(s.puzzle.Base.PosData) {
		report.Solutions = append(report.Solutions, slices.Clone(s.current))
		return len(report.Solutions) >= limit
	}

	_, candidates := s.FindMRVTile()
	if len(candidates) == 0 {
		return false
	}

	if s.options.Randomize {
		rng.Shuffle(s.src, candidates)
	}

	for _, id := range candidates {
		p := &s.placements[id]
		s.apply(p)
		done := s.backtrack(ctx, report, limit)
		s.undo(p)
		if done {
			return true
		}
	}
	return false
}

// FindMRVTile finds the uncovered tile with the fewest placements that still
// fit, and returns those placements.
func (s *Solver) FindMRVTile() (tiling.Position, []int) {
	var (
		mrvTile       tiling.Position
		mrvCandidates []int
		found         bool
	)
	for _, t := range s.puzzle.Base.PosData {
		if s.covered[t] {
			continue
		}
		candidates := s.fitting(t)
		if !found || len(candidates) < len(mrvCandidates) {
			mrvTile, mrvCandidates, found = t, candidates, true
			if len(candidates) <= 1 {
				break
			}
		}
	}
	return mrvTile, mrvCandidates
}

// fitting returns placements of unused pieces that cover t and only
// uncovered tiles.
func (s *Solver) fitting(t tiling.Position) []int {
	var out []int
	for _, id := range s.byTile[t] {
		p := &s.placements[id]
		if s.used[p.Piece] || s.blocked(p) {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (s *Solver) blocked(p *Placement) bool {
	for _, t := range p.Tiles {
		if s.covered[t] {
			return true
		}
	}
	return false
}

func (s *Solver) apply(p *Placement) {
	for _, t := range p.Tiles {
		s.covered[t] = true
	}
	s.used[p.Piece] = true
	s.current[p.Piece] = *p
}

func (s *Solver) undo(p *Placement) {
	for _, t := range p.Tiles {
		delete(s.covered, t)
	}
	s.used[p.Piece] = false
	s.current[p.Piece] = Placement{}
}
