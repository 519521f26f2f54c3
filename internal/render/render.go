// Package render draws grids and paths for the terminal.
//
// One cell is one glyph, separated by spaces:
//
//	#  blocked    .  free    *  path
//	S  start      G  goal
//
// Start is red, goal blue and the path green when the profile supports
// colour; termenv.Ascii yields plain text.
package render

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Glyphs.
const (
	GlyphBlocked = "#"
	GlyphFree    = "."
	GlyphPath    = "*"
	GlyphStart   = "S"
	GlyphGoal    = "G"
)

// Palette.
const (
	ColorStart   = "#ef4444"
	ColorGoal    = "#3b82f6"
	ColorPath    = "#22c55e"
	ColorBlocked = "#6b7280"
)

// Options configures rendering.
type Options struct {
	// Profile selects the colour capability; Ascii disables colour.
	Profile termenv.Profile
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions detects the profile of stdout.
func DefaultOptions() Options {
	return Options{Profile: termenv.ColorProfile()}
}

// WithProfile forces a colour profile.
func WithProfile(p termenv.Profile) Option {
	return func(o *Options) { o.Profile = p }
}

// WithoutColor renders plain text.
func WithoutColor() Option {
	return WithProfile(termenv.Ascii)
}

// Grid returns g as text with start, goal and path marked.
// Path positions outside g are ignored.
func Grid(g *gridgraph.Grid, start, goal gridgraph.Position, path []gridgraph.Position, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := o.Profile

	onPath := make(map[gridgraph.Position]bool, len(path))
	for _, pos := range path {
		onPath[pos] = true
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			pos := gridgraph.Position{Row: r, Col: c}
			switch {
			case pos == start:
				b.WriteString(p.String(GlyphStart).Foreground(p.Color(ColorStart)).Bold().String())
			case pos == goal:
				b.WriteString(p.String(GlyphGoal).Foreground(p.Color(ColorGoal)).Bold().String())
			case !g.IsFree(pos):
				b.WriteString(p.String(GlyphBlocked).Foreground(p.Color(ColorBlocked)).String())
			case onPath[pos]:
				b.WriteString(p.String(GlyphPath).Foreground(p.Color(ColorPath)).String())
			default:
				b.WriteString(GlyphFree)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write renders to w.
func Write(w io.Writer, g *gridgraph.Grid, start, goal gridgraph.Position, path []gridgraph.Position, opts ...Option) error {
	_, err := io.WriteString(w, Grid(g, start, goal, path, opts...))
	return err
}
