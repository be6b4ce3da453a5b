// Package board holds the render-ready description of a generated puzzle:
// the normalised base silhouette and the pieces the player reassembles.
package board

import (
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// Base is the target silhouette.
type Base struct {
	TileType tiling.Type `json:"tileType"`

	// TileFactor and OffsetFactors are fractions of a square canvas edge:
	// a tile centred at plane point c is drawn at c*TileFactor+OffsetFactors
	// times the edge length.
	TileFactor    float64    `json:"tileFactor"`
	OffsetFactors [2]float64 `json:"offsetFactors"`

	// PosData lists every tile of the silhouette in growth order.
	PosData []tiling.Position `json:"posData"`
}

// Project maps a plane point to fractions of the square canvas edge.
func (b *Base) Project(pt tiling.Point) (x, y float64) {
	return pt.X*b.TileFactor + b.OffsetFactors[0], pt.Y*b.TileFactor + b.OffsetFactors[1]
}

// Piece is one rigid part of the puzzle.
type Piece struct {
	RootPosOnBase tiling.Position `json:"rootPosOnBase"`

	// PosDataArray[r] lists the piece's tiles relative to its root after r
	// rotation steps. Index 0 is the orientation the piece has in the base.
	PosDataArray [][]tiling.Position `json:"posDataArray"`

	Color string `json:"color"`

	// RootIsUpward is only set for triangle tilings.
	RootIsUpward *bool `json:"rootIsUpward,omitempty"`
}

// Size returns the number of tiles in the piece.
func (p *Piece) Size() int {
	if len(p.PosDataArray) == 0 {
		return 0
	}
	return len(p.PosDataArray[0])
}

// Placed returns the piece's tiles in base coordinates, unrotated.
func (p *Piece) Placed() []tiling.Position {
	if len(p.PosDataArray) == 0 {
		return nil
	}
	out := make([]tiling.Position, len(p.PosDataArray[0]))
	for i, off := range p.PosDataArray[0] {
		out[i] = p.RootPosOnBase.Add(off)
	}
	return out
}

// Stats records how a Result was produced. It is diagnostic only and is
// not part of the wire format.
type Stats struct {
	Attempts int  // partition attempts, including the accepted one
	Balanced bool // every piece passed the size-balance check
	Degraded bool // the retry budget or deadline forced acceptance
}

// Result is the complete output of one generation.
type Result struct {
	Base   Base    `json:"base"`
	Pieces []Piece `json:"pieces"`

	// Seed reproduces the result when fed back into a request. It is nil
	// when the randomness came from a non-replayable source.
	Seed *int64 `json:"seed,omitempty"`

	Stats Stats `json:"-"`
}

// PieceSizes returns the tile count of every piece.
func (r *Result) PieceSizes() []int {
	sizes := make([]int, len(r.Pieces))
	for i := range r.Pieces {
		sizes[i] = r.Pieces[i].Size()
	}
	return sizes
}
