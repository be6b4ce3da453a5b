package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rybkr/tilepuzzle/internal/board"
)

// silhouetteColor fills the unsolved base.
const silhouetteColor = "#d9d9d9"

// SVG writes a size×size SVG image of r with every tile in its piece colour.
func SVG(w io.Writer, r *board.Result, size int) error {
	doc, err := svgDocument(r, size, false)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return err
}

// svgDocument renders r as an SVG string. A silhouette leaves out the piece
// colours, showing only the shape the player has to fill.
func svgDocument(r *board.Result, size int, silhouette bool) (string, error) {
	polys, err := polygons(r, size)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, size, size, size, size)
	sb.WriteString("\n")
	for _, p := range polys {
		fill := p.fill
		if silhouette {
			fill = silhouetteColor
		}
		sb.WriteString(`  <polygon points="`)
		for i, pt := range p.points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.2f,%.2f", pt[0], pt[1])
		}
		fmt.Fprintf(&sb, `" fill="%s" stroke="%s" stroke-width="1"/>`, fill, outlineColor)
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>")
	return sb.String(), nil
}
