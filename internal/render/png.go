package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/rybkr/tilepuzzle/internal/board"
)

// PNG writes a size×size PNG image of r on a white background.
func PNG(w io.Writer, r *board.Result, size int) error {
	img, err := Image(r, size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image rasterises r. Each tile is filled with its piece colour and then
// inset slightly so neighbouring pieces stay visually separate.
func Image(r *board.Result, size int) (*image.RGBA, error) {
	polys, err := polygons(r, size)
	if err != nil {
		return nil, err
	}

	bounds := image.Rect(0, 0, size, size)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)

	outline, _ := parseHex(outlineColor)
	z := vector.NewRasterizer(size, size)
	for _, p := range polys {
		fill, err := parseHex(p.fill)
		if err != nil {
			return nil, err
		}

		z.Reset(size, size)
		trace(z, p.points, 1)
		z.Draw(img, bounds, image.NewUniform(outline), image.Point{})

		z.Reset(size, size)
		trace(z, p.points, 0.9)
		z.Draw(img, bounds, image.NewUniform(fill), image.Point{})
	}
	return img, nil
}

// trace adds the outline of pts, scaled about its centroid, to z.
func trace(z *vector.Rasterizer, pts [][2]float64, scale float64) {
	var cx, cy float64
	for _, pt := range pts {
		cx += pt[0]
		cy += pt[1]
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	at := func(pt [2]float64) (float32, float32) {
		return float32(cx + (pt[0]-cx)*scale), float32(cy + (pt[1]-cy)*scale)
	}
	z.MoveTo(at(pts[0]))
	for _, pt := range pts[1:] {
		z.LineTo(at(pt))
	}
	z.ClosePath()
}
