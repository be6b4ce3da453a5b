package board

import "github.com/rybkr/tilepuzzle/internal/rng"

// palette is the fixed set of piece colours. A result never uses the same
// colour twice, so it also caps the number of pieces.
var palette = [...]string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8",
	"#f58231", "#911eb4", "#46f0f0", "#f032e6",
	"#bcf60c", "#fabebe", "#008080", "#e6beff",
	"#9a6324", "#fffac8", "#800000", "#aaffc3",
}

// MaxPieces is the largest piece count the palette can colour uniquely.
const MaxPieces = len(palette)

// Palette returns a copy of the piece colours.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette[:])
	return out
}

// PickColors draws n distinct colours in random order.
// It panics if n exceeds MaxPieces.
func PickColors(src rng.Source, n int) []string {
	if n > MaxPieces {
		panic("board: PickColors: more pieces than palette colours")
	}
	colors := Palette()
	rng.Shuffle(src, colors)
	return colors[:n]
}
