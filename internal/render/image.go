package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// CellPixels is the edge length of one cell in rendered images.
const CellPixels = 16

var (
	pixelFree    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pixelBlocked = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	pixelPath    = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	pixelStart   = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	pixelGoal    = color.RGBA{R: 59, G: 130, B: 246, A: 255}
)

// Image rasterizes g with the path filled green. Start and goal carry an
// arrow along the first and last move of the path (Right without one).
func Image(g *gridgraph.Grid, start, goal gridgraph.Position, path []gridgraph.Position) (*image.RGBA, error) {
	base := image.NewRGBA(image.Rect(0, 0, g.Cols()*CellPixels, g.Rows()*CellPixels))
	fill := func(p gridgraph.Position, c color.Color) {
		r := image.Rect(p.Col*CellPixels, p.Row*CellPixels, (p.Col+1)*CellPixels, (p.Row+1)*CellPixels)
		draw.Draw(base, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := gridgraph.Position{Row: r, Col: c}
			if g.IsFree(p) {
				fill(p, pixelFree)
			} else {
				fill(p, pixelBlocked)
			}
		}
	}
	for _, p := range path {
		if g.InBounds(p) {
			fill(p, pixelPath)
		}
	}

	first, last := gridgraph.Right, gridgraph.Right
	if n := len(path); n > 1 {
		first = heading(path[0], path[1])
		last = heading(path[n-2], path[n-1])
	}

	pic := image_utils.NewCompositeImage()
	if err := pic.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: base image: %w", err)
	}
	for _, m := range []struct {
		at  gridgraph.Position
		dir gridgraph.Direction
		c   color.Color
	}{
		{start, first, pixelStart},
		{goal, last, pixelGoal},
	} {
		if !g.InBounds(m.at) {
			continue
		}
		arrow := image_utils.ResizeImage(arrowFor(m.dir, m.c), CellPixels, CellPixels)
		if err := pic.AddImage(arrow, image.Pt(m.at.Col*CellPixels, m.at.Row*CellPixels)); err != nil {
			return nil, fmt.Errorf("render: marker at %v: %w", m.at, err)
		}
	}

	return image_utils.ToRGBA(pic), nil
}

// WritePNG encodes Image as PNG to w.
func WritePNG(w io.Writer, g *gridgraph.Grid, start, goal gridgraph.Position, path []gridgraph.Position) error {
	pic, err := Image(g, start, goal, path)
	if err != nil {
		return err
	}
	return png.Encode(w, pic)
}

func heading(from, to gridgraph.Position) gridgraph.Direction {
	return gridgraph.Direction{DRow: to.Row - from.Row, DCol: to.Col - from.Col}
}

func arrowFor(d gridgraph.Direction, c color.Color) image.Image {
	switch d {
	case gridgraph.Up:
		return image_utils.UpArrow(c)
	case gridgraph.Down:
		return image_utils.DownArrow(c)
	case gridgraph.Left:
		return image_utils.LeftArrow(c)
	}
	return image_utils.RightArrow(c)
}
