package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/floodfill"
	"github.com/katalvlaran/gridpath/internal/fixture"
	"github.com/katalvlaran/gridpath/internal/render"
)

func TestImage(t *testing.T) {
	g := fixture.Grid(fixture.ReferenceMaze)
	start, goal := fixture.P(0, 0), fixture.P(5, 5)
	res := floodfill.FloodFill(g, start, goal)
	require.True(t, res.Found())

	pic, err := render.Image(g, start, goal, res.Path)
	require.NoError(t, err)
	assert.Equal(t, 6*render.CellPixels, pic.Bounds().Dx())
	assert.Equal(t, 6*render.CellPixels, pic.Bounds().Dy())

	center := func(row, col int) color.RGBA {
		return pic.RGBAAt(col*render.CellPixels+render.CellPixels/2, row*render.CellPixels+render.CellPixels/2)
	}
	// (1,1) is a wall, (0,5) is free and off the path, (1,0) is on it
	assert.Equal(t, uint8(40), center(1, 1).R)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, center(0, 5))
	assert.Equal(t, color.RGBA{R: 34, G: 197, B: 94, A: 255}, center(1, 0))
}

func TestWritePNG(t *testing.T) {
	g := fixture.Grid([][]int{{1, 0}, {1, 1}})

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, g, fixture.P(0, 0), fixture.P(1, 1), nil))
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2*render.CellPixels, cfg.Width)
	assert.Equal(t, 2*render.CellPixels, cfg.Height)
}
