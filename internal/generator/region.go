package generator

import (
	"github.com/rybkr/tilepuzzle/internal/rng"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// growRegion grows a connected shape of exactly size tiles from the origin.
//
// Each step picks a random tile from the active frontier and tries its
// neighbours in random order; the first free one joins the shape. A tile
// whose neighbours are all taken leaves the frontier. The lattice is
// unbounded, so the frontier never runs dry before size is reached.
func growRegion(g tiling.Geometry, size int, src rng.Source) ([]tiling.Position, tiling.Borders) {
	origin := tiling.Pos(0, 0)
	tiles := make([]tiling.Position, 1, size)
	tiles[0] = origin
	taken := map[tiling.Position]struct{}{origin: {}}
	frontier := []tiling.Position{origin}
	borders := tiling.NewBorders(g, origin)

	candidates := make([]tiling.Position, 0, 6)

	for len(tiles) < size {
		i := src.Intn(len(frontier))
		candidates = append(candidates[:0], tiling.Neighbors(g, frontier[i])...)

		accepted := false
		for len(candidates) > 0 {
			j := src.Intn(len(candidates))
			n := candidates[j]
			if _, ok := taken[n]; ok {
				candidates = removeAt(candidates, j)
				continue
			}
			tiles = append(tiles, n)
			taken[n] = struct{}{}
			frontier = append(frontier, n)
			borders = borders.Update(g, n)
			accepted = true
			break
		}

		if !accepted {
			frontier = removeAt(frontier, i)
		}
	}
	return tiles, borders
}

func removeAt[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}
