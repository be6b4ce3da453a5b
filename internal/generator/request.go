package generator

import (
	"errors"
	"fmt"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

var (
	ErrInvalidTileType     = errors.New("invalid tile type")
	ErrInvalidFigureSize   = errors.New("figure size must be positive")
	ErrInvalidPiecesAmount = errors.New("pieces amount must be between 1 and the figure size")
	ErrTooManyPieces       = errors.New("more pieces than available colours")
)

// Request describes one puzzle to generate.
type Request struct {
	TileType     tiling.Type `json:"tileType"`
	FigureSize   int         `json:"figureSize"`
	PiecesAmount int         `json:"piecesAmount"`
	// Seed makes the result reproducible. nil draws a fresh seed.
	Seed *int64 `json:"randomSeed,omitempty"`
}

// Validate rejects requests the algorithm cannot honour. maxFigureSize of 0
// means no upper bound.
func (r *Request) Validate(maxFigureSize int) error {
	if !r.TileType.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidTileType, r.TileType)
	}
	if r.FigureSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFigureSize, r.FigureSize)
	}
	if maxFigureSize > 0 && r.FigureSize > maxFigureSize {
		return fmt.Errorf("%w: got %d, limit is %d", ErrInvalidFigureSize, r.FigureSize, maxFigureSize)
	}
	if r.PiecesAmount < 1 || r.PiecesAmount > r.FigureSize {
		return fmt.Errorf("%w: got %d for %d tiles", ErrInvalidPiecesAmount, r.PiecesAmount, r.FigureSize)
	}
	if r.PiecesAmount > board.MaxPieces {
		return fmt.Errorf("%w: got %d, limit is %d", ErrTooManyPieces, r.PiecesAmount, board.MaxPieces)
	}
	return nil
}

// WithSeed returns a copy of r pinned to seed.
func (r Request) WithSeed(seed int64) Request {
	r.Seed = &seed
	return r
}
