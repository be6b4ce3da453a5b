package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/rybkr/tilepuzzle/internal/board"
)

// HTML writes a printable page per puzzle: the silhouette to fill, the
// pieces, and the assembled solution.
func HTML(w io.Writer, results []*board.Result, size int) error {
	_, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Tiling Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .pieces span {
            display: inline-block;
            margin: 0 12px 8px 0;
            font-family: 'Courier New', monospace;
        }
        .swatch {
            display: inline-block;
            width: 14px;
            height: 14px;
            margin-right: 4px;
            vertical-align: middle;
            border: 1px solid #222;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i, r := range results {
		silhouette, err := svgDocument(r, size, true)
		if err != nil {
			return fmt.Errorf("puzzle %d: %w", i+1, err)
		}
		solution, err := svgDocument(r, size, false)
		if err != nil {
			return fmt.Errorf("puzzle %d: %w", i+1, err)
		}
		_, err = fmt.Fprintf(w, `    <div class="page">
        <h1>Puzzle #%d (%s, %d tiles)</h1>
        <h2>Shape</h2>
        %s
        <h2>Pieces</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, r.Base.TileType, len(r.Base.PosData), silhouette, piecesToHTML(r), solution)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, `</body>
</html>
`)
	return err
}

// piecesToHTML lists each piece's colour and tile count.
func piecesToHTML(r *board.Result) string {
	var sb strings.Builder
	sb.WriteString(`<div class="pieces">`)
	for i := range r.Pieces {
		p := &r.Pieces[i]
		fmt.Fprintf(&sb, `<span><i class="swatch" style="background:%s"></i>#%d: %d tiles</span>`, p.Color, i+1, p.Size())
	}
	sb.WriteString("</div>")
	return sb.String()
}
