package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/tilepuzzle/internal/board"
	"github.com/rybkr/tilepuzzle/internal/generator"
	"github.com/rybkr/tilepuzzle/internal/tiling"
)

func TestParseSizeRange(t *testing.T) {
	tests := []struct {
		in       string
		min, max int
		wantErr  bool
	}{
		{in: "20", min: 20, max: 20},
		{in: " 18 : 30 ", min: 18, max: 30},
		{in: "5:5", min: 5, max: 5},
		{in: "30:18", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1:x", wantErr: true},
		{in: "1:2:3", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			min, max, err := parseSizeRange(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.min, min)
			assert.Equal(t, tc.max, max)
		})
	}
}

func TestNumbered(t *testing.T) {
	assert.Equal(t, "out-2.png", numbered("out.png", 2))
	assert.Equal(t, filepath.Join("a", "b-10.png"), numbered(filepath.Join("a", "b.png"), 10))
}

func TestWriteOutput(t *testing.T) {
	gen := generator.New(nil)
	var results []*board.Result
	for i := int64(0); i < 2; i++ {
		r, err := gen.Generate(generator.Request{
			TileType:     tiling.Hexagon,
			FigureSize:   12,
			PiecesAmount: 3,
		}.WithSeed(i))
		require.NoError(t, err)
		results = append(results, r)
	}
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		name := filepath.Join(dir, "levels.json")
		require.NoError(t, writeOutput(name, results))

		data, err := os.ReadFile(name)
		require.NoError(t, err)
		var decoded []*board.Result
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, results[1].Base, decoded[1].Base)
		assert.NoError(t, decoded[0].Validate())
	})

	t.Run("html", func(t *testing.T) {
		name := filepath.Join(dir, "levels.html")
		require.NoError(t, writeOutput(name, results))
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg")
	})

	t.Run("png per puzzle", func(t *testing.T) {
		name := filepath.Join(dir, "level.png")
		require.NoError(t, writeOutput(name, results))
		assert.FileExists(t, filepath.Join(dir, "level-1.png"))
		assert.FileExists(t, filepath.Join(dir, "level-2.png"))
	})

	t.Run("unknown extension", func(t *testing.T) {
		assert.Error(t, writeOutput(filepath.Join(dir, "level.txt"), results))
	})
}
