package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/tilepuzzle/internal/jigsaw"
	"github.com/rybkr/tilepuzzle/internal/rng"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

func TestGrowRegion(t *testing.T) {
	for _, tt := range tiling.Types() {
		g := tiling.For(tt)
		for _, size := range []int{1, 2, 7, 40} {
			for seed := range int64(10) {
				tiles, borders := growRegion(g, size, rng.New(seed))

				require.Len(t, tiles, size)
				assert.Equal(t, tiling.Pos(0, 0), tiles[0])

				seen := make(map[tiling.Position]bool, size)
				for i, p := range tiles {
					assert.False(t, seen[p], "%v: duplicate %v", tt, p)
					if i > 0 {
						attached := false
						for _, n := range tiling.Neighbors(g, p) {
							if seen[n] {
								attached = true
								break
							}
						}
						assert.True(t, attached, "%v: %v joined without a neighbour", tt, p)
					}
					seen[p] = true
					assert.True(t, borders.Contains(g.Center(p), 1e-9))
				}
			}
		}
	}
}

func TestGrowRegionBordersMatchTiles(t *testing.T) {
	g := tiling.For(tiling.Triangle)
	tiles, borders := growRegion(g, 25, rng.New(8))

	want := tiling.NewBorders(g, tiles[len(tiles)-1])
	for _, p := range tiles {
		want = want.Update(g, p)
	}
	assert.Equal(t, want, borders)
}

func TestNormalize(t *testing.T) {
	b := tiling.Borders{Left: -0.5, Right: 3.5, Top: -0.5, Bottom: 1.5}
	factor, offsets := normalize(b)

	longest := 4 * 1.04
	assert.InDelta(t, 1/longest, factor, 1e-12)
	assert.InDelta(t, (0.5+(longest-4)/2)/longest, offsets[0], 1e-12)
	assert.InDelta(t, (0.5+(longest-2)/2)/longest, offsets[1], 1e-12)

	// The box is centred: equal margins left/right and top/bottom.
	left := b.Left*factor + offsets[0]
	right := b.Right*factor + offsets[0]
	top := b.Top*factor + offsets[1]
	bottom := b.Bottom*factor + offsets[1]
	assert.InDelta(t, left, 1-right, 1e-12)
	assert.InDelta(t, top, 1-bottom, 1e-12)
}

func TestReplayRotatesEdges(t *testing.T) {
	// root -> right -> down, as a hand-built square tree.
	f := &jigsaw.Forest{
		Nodes: []jigsaw.Node{
			{Pos: tiling.Pos(4, 4), Parent: -1, Children: []jigsaw.Edge{{Dir: 0, Child: 1}}},
			{Pos: tiling.Pos(5, 4), Parent: 0, Children: []jigsaw.Edge{{Dir: 3, Child: 2}}},
			{Pos: tiling.Pos(5, 5), Parent: 1},
		},
		Roots: []int{0},
	}

	got := replay(tiling.For(tiling.Square), f, 0)
	assert.Equal(t, [][]tiling.Position{
		{tiling.Pos(0, 0), tiling.Pos(1, 0), tiling.Pos(1, 1)},
		{tiling.Pos(0, 0), tiling.Pos(0, -1), tiling.Pos(1, -1)},
		{tiling.Pos(0, 0), tiling.Pos(-1, 0), tiling.Pos(-1, -1)},
		{tiling.Pos(0, 0), tiling.Pos(0, 1), tiling.Pos(-1, 1)},
	}, got)
}

func TestReplayTriangleFlipsParity(t *testing.T) {
	f := &jigsaw.Forest{
		Nodes: []jigsaw.Node{
			{Pos: tiling.Pos(0, 0), Parent: -1, Children: []jigsaw.Edge{{Dir: 0, Child: 1}}},
			{Pos: tiling.Pos(1, 0), Parent: 0},
		},
		Roots: []int{0},
	}

	got := replay(tiling.For(tiling.Triangle), f, 0)
	require.Len(t, got, 6)
	assert.Equal(t, tiling.Pos(1, 0), got[0][1])
	assert.Equal(t, tiling.Pos(0, -1), got[1][1])
	assert.Equal(t, tiling.Pos(-1, 0), got[2][1])
	assert.Equal(t, tiling.Pos(-1, 0), got[3][1])
	assert.Equal(t, tiling.Pos(0, 1), got[4][1])
	assert.Equal(t, tiling.Pos(1, 0), got[5][1])
}

// Rotation is rigid: on square and hexagon tilings, where centres do not
// depend on parity, the distance between any two tiles of a piece is the
// same in every orientation.
func TestReplayIsRigid(t *testing.T) {
	for _, tt := range []tiling.Type{tiling.Square, tiling.Hexagon} {
		g := tiling.For(tt)
		tiles, _ := growRegion(g, 12, rng.New(21))
		forest, _ := jigsaw.Partition(g, tiles, 2, rng.New(21), jigsaw.Options{})

		for piece := range forest.Roots {
			rotations := replay(g, forest, piece)
			base := pairwiseDistances(g, rotations[0])
			for r, rotated := range rotations[1:] {
				assert.InDeltaSlice(t, base, pairwiseDistances(g, rotated), 1e-9, "%v piece %d rotation %d", tt, piece, r+1)
			}
		}
	}
}

func pairwiseDistances(g tiling.Geometry, tiles []tiling.Position) []float64 {
	var out []float64
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			a, b := g.Center(tiles[i]), g.Center(tiles[j])
			out = append(out, math.Hypot(a.X-b.X, a.Y-b.Y))
		}
	}
	return out
}
