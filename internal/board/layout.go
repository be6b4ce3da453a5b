package board

import (
	"fmt"

	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// Layout records which piece covers each tile of the base.
// It is immutable after construction.
type Layout struct {
	geometry tiling.Geometry

	// PosToPiece maps a base tile to the index of the piece covering it.
	PosToPiece map[tiling.Position]int

	// PieceToTiles is the inverse, in each piece's own traversal order.
	PieceToTiles [][]tiling.Position
}

// NewLayout places every piece of r on its root, unrotated, and checks that
// together they tile the base exactly with contiguous pieces.
func NewLayout(r *Result) (*Layout, error) {
	if !r.Base.TileType.Valid() {
		return nil, fmt.Errorf("%w: %v", tiling.ErrUnknownType, r.Base.TileType)
	}
	l := &Layout{
		geometry:     tiling.For(r.Base.TileType),
		PosToPiece:   make(map[tiling.Position]int, len(r.Base.PosData)),
		PieceToTiles: make([][]tiling.Position, len(r.Pieces)),
	}
	if err := l.buildPieceTiles(r); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// buildPieceTiles fills both tables and checks for overlaps, stray tiles and
// gaps. It runs before Validate so that Validate can rely on the tables.
func (l *Layout) buildPieceTiles(r *Result) error {
	inBase := make(map[tiling.Position]struct{}, len(r.Base.PosData))
	for _, p := range r.Base.PosData {
		inBase[p] = struct{}{}
	}

	for i := range r.Pieces {
		tiles := r.Pieces[i].Placed()
		if len(tiles) == 0 {
			return fmt.Errorf("%w: piece %d has no tiles", ErrEmptyPiece, i)
		}
		for _, p := range tiles {
			if _, ok := inBase[p]; !ok {
				return fmt.Errorf("%w: piece %d covers %v", ErrOutsideBase, i, p)
			}
			if other, ok := l.PosToPiece[p]; ok {
				return fmt.Errorf("%w: tile %v claimed by pieces %d and %d", ErrOverlap, p, other, i)
			}
			l.PosToPiece[p] = i
		}
		l.PieceToTiles[i] = tiles
	}

	for _, p := range r.Base.PosData {
		if _, ok := l.PosToPiece[p]; !ok {
			return fmt.Errorf("%w: tile %v", ErrUncovered, p)
		}
	}
	return nil
}

// Validate checks that every piece is edge-connected.
func (l *Layout) Validate() error {
	for piece := range l.PieceToTiles {
		if err := l.validateContiguous(piece); err != nil {
			return err
		}
	}
	return nil
}

// validateContiguous flood-fills a piece from its first tile.
func (l *Layout) validateContiguous(piece int) error {
	tiles := l.PieceToTiles[piece]
	reached := connectedCount(l.geometry, tiles, func(p tiling.Position) bool {
		owner, ok := l.PosToPiece[p]
		return ok && owner == piece
	})
	if reached != len(tiles) {
		return fmt.Errorf("%w: piece %d (%d of %d tiles reachable from %v)",
			ErrNotContiguous, piece, reached, len(tiles), tiles[0])
	}
	return nil
}

// connectedCount returns how many tiles satisfying member are reachable from
// tiles[0] by stepping across edges.
func connectedCount(g tiling.Geometry, tiles []tiling.Position, member func(tiling.Position) bool) int {
	if len(tiles) == 0 {
		return 0
	}
	visited := map[tiling.Position]bool{tiles[0]: true}
	queue := []tiling.Position{tiles[0]}
	for head := 0; head < len(queue); head++ {
		for _, n := range tiling.Neighbors(g, queue[head]) {
			if member(n) && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}
