package generator

import (
	"math"

	"github.com/rybkr/tilepuzzle/internal/tiling"
)

// canvasPadding enlarges the longest side of the shape before it is fitted
// onto the canvas.
const canvasPadding = 1.04

// normalize fits b into a unit square canvas, centred on both axes.
// It returns the scale applied to plane coordinates and the offset added
// afterwards, both as fractions of the canvas edge.
func normalize(b tiling.Borders) (tileFactor float64, offsets [2]float64) {
	width, height := b.Width(), b.Height()
	longest := math.Max(width, height) * canvasPadding

	tileFactor = 1 / longest
	offsets[0] = (-b.Left + (longest-width)/2) / longest
	offsets[1] = (-b.Top + (longest-height)/2) / longest
	return tileFactor, offsets
}
