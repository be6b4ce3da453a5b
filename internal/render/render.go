// Package render draws previews of generated puzzles: the assembled base
// with every tile filled in its piece's colour.
package render

import (
	"fmt"
	"image/color"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// outlineColor is used for tile edges and for tiles with no owning piece.
const outlineColor = "#222222"

// polygon is a filled tile outline in canvas pixels.
type polygon struct {
	points [][2]float64
	fill   string
}

// polygons projects every base tile onto a size×size canvas. Tiles are
// coloured by piece when the result's pieces form a valid layout.
func polygons(r *board.Result, size int) ([]polygon, error) {
	if !r.Base.TileType.Valid() {
		return nil, fmt.Errorf("%w: %v", tiling.ErrUnknownType, r.Base.TileType)
	}
	g := tiling.For(r.Base.TileType)

	owner := map[tiling.Position]int{}
	if layout, err := board.NewLayout(r); err == nil {
		owner = layout.PosToPiece
	}

	edge := float64(size)
	out := make([]polygon, 0, len(r.Base.PosData))
	for _, p := range r.Base.PosData {
		fill := outlineColor
		if piece, ok := owner[p]; ok {
			fill = r.Pieces[piece].Color
		}
		corners := g.Corners(p)
		pts := make([][2]float64, len(corners))
		for i, c := range corners {
			x, y := r.Base.Project(c)
			pts[i] = [2]float64{x * edge, y * edge}
		}
		out = append(out, polygon{points: pts, fill: fill})
	}
	return out, nil
}

// parseHex decodes "#rrggbb".
func parseHex(s string) (color.RGBA, error) {
	var c color.RGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("render: bad colour %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("render: bad colour %q: %w", s, err)
	}
	c.A = 0xff
	return c, nil
}
