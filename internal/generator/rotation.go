package generator

import (
	"github.com/rybkr/tilepuzzle/internal/jigsaw"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// replay re-walks a piece's tree under every rotation the tiling allows.
// Positions are relative to the root; entry r of the result lists the tiles
// after turning every edge r steps along the master direction list.
func replay(g tiling.Geometry, forest *jigsaw.Forest, piece int) [][]tiling.Position {
	out := make([][]tiling.Position, g.RotationOrder())
	for r := range out {
		acc := make([]tiling.Position, 0, 8)
		out[r] = walkRotated(g, forest, forest.Roots[piece], tiling.Position{}, r, acc)
	}
	return out
}

// walkRotated appends pos and then every descendant of node id in
// pre-order, stepping each edge in its rotated direction.
func walkRotated(g tiling.Geometry, forest *jigsaw.Forest, id int, pos tiling.Position, r int, acc []tiling.Position) []tiling.Position {
	acc = append(acc, pos)
	for _, e := range forest.Nodes[id].Children {
		child := g.Neighbor(pos, tiling.Rotate(g, e.Dir, r))
		acc = walkRotated(g, forest, e.Child, child, r, acc)
	}
	return acc
}
