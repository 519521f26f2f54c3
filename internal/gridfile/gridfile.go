// Package gridfile reads and writes maze descriptions for the gridpath CLI.
//
// A maze file is YAML (or JSON, by extension) with either an integer
// matrix or a text layout:
//
//	layout:
//	  - "S....."
//	  - ".###.."
//	  - "....#G"
//	start: [0, 0]   # optional, overrides S
//	goal:  [2, 5]   # optional, overrides G
//
//	cells:
//	  - [1, 1, 0]
//	  - [0, 5, 1]
//	threshold: 1    # optional, cells >= threshold are free
//
// Without markers or fields, start is (0,0) and goal the bottom-right cell.
package gridfile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for maze files.
var (
	// ErrNoGrid indicates neither cells nor layout was given.
	ErrNoGrid = errors.New("gridfile: no cells or layout")

	// ErrBothForms indicates cells and layout were both given.
	ErrBothForms = errors.New("gridfile: cells and layout are mutually exclusive")

	// ErrLayoutRune indicates an unknown character in a layout row.
	ErrLayoutRune = errors.New("gridfile: unknown layout character")

	// ErrDuplicateMarker indicates S or G appears more than once.
	ErrDuplicateMarker = errors.New("gridfile: duplicate marker")

	// ErrCoordinate indicates a start or goal field is not [row, col].
	ErrCoordinate = errors.New("gridfile: coordinate must be [row, col]")
)

// Layout characters.
const (
	RuneBlocked = '#'
	RuneFree    = '.'
	RuneStart   = 'S'
	RuneGoal    = 'G'
)

// File is the on-disk shape of a maze.
type File struct {
	Cells     [][]int  `yaml:"cells,omitempty" json:"cells,omitempty"`
	Layout    []string `yaml:"layout,omitempty" json:"layout,omitempty"`
	Start     []int    `yaml:"start,omitempty,flow" json:"start,omitempty"`
	Goal      []int    `yaml:"goal,omitempty,flow" json:"goal,omitempty"`
	Threshold *int     `yaml:"threshold,omitempty" json:"threshold,omitempty"`
}

// Maze is a decoded grid with its endpoints. Endpoints are not checked
// against the grid; solvers report invalid ones.
type Maze struct {
	Grid  *gridgraph.Grid
	Start gridgraph.Position
	Goal  gridgraph.Position
}

// Load reads path and decodes it as JSON when the extension is .json,
// YAML otherwise.
func Load(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("gridfile: read %s: %w", path, err)
	}

	var f File
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return Maze{}, fmt.Errorf("gridfile: parse %s: %w", path, err)
	}

	m, err := f.Maze()
	if err != nil {
		return Maze{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes YAML maze data.
func Parse(data []byte) (Maze, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Maze{}, fmt.Errorf("gridfile: parse: %w", err)
	}
	return f.Maze()
}

// Maze builds the grid and resolves the endpoints.
func (f File) Maze() (Maze, error) {
	var (
		g          *gridgraph.Grid
		start, end *gridgraph.Position
		err        error
	)
	switch {
	case len(f.Cells) > 0 && len(f.Layout) > 0:
		return Maze{}, ErrBothForms
	case len(f.Cells) > 0:
		opts := gridgraph.DefaultGridOptions()
		if f.Threshold != nil {
			opts.FreeThreshold = *f.Threshold
		}
		g, err = gridgraph.NewGrid(f.Cells, opts)
	case len(f.Layout) > 0:
		g, start, end, err = parseLayout(f.Layout)
	default:
		return Maze{}, ErrNoGrid
	}
	if err != nil {
		return Maze{}, err
	}

	m := Maze{
		Grid: g,
		Goal: gridgraph.Position{Row: g.Rows() - 1, Col: g.Cols() - 1},
	}
	if start != nil {
		m.Start = *start
	}
	if end != nil {
		m.Goal = *end
	}
	if f.Start != nil {
		if m.Start, err = coordinate("start", f.Start); err != nil {
			return Maze{}, err
		}
	}
	if f.Goal != nil {
		if m.Goal, err = coordinate("goal", f.Goal); err != nil {
			return Maze{}, err
		}
	}

	return m, nil
}

func coordinate(field string, rc []int) (gridgraph.Position, error) {
	if len(rc) != 2 {
		return gridgraph.Position{}, fmt.Errorf("%w: %s has %d values", ErrCoordinate, field, len(rc))
	}
	return gridgraph.Position{Row: rc[0], Col: rc[1]}, nil
}

// parseLayout converts text rows into cells and S/G markers.
func parseLayout(rows []string) (*gridgraph.Grid, *gridgraph.Position, *gridgraph.Position, error) {
	var start, goal *gridgraph.Position
	cells := make([][]gridgraph.Cell, len(rows))
	for r, line := range rows {
		runes := []rune(line)
		cells[r] = make([]gridgraph.Cell, len(runes))
		for c, ch := range runes {
			p := gridgraph.Position{Row: r, Col: c}
			switch ch {
			case RuneBlocked:
				cells[r][c] = gridgraph.Blocked
			case RuneFree, ' ':
				cells[r][c] = gridgraph.Free
			case RuneStart, RuneGoal:
				cells[r][c] = gridgraph.Free
				mark := &start
				if ch == RuneGoal {
					mark = &goal
				}
				if *mark != nil {
					return nil, nil, nil, fmt.Errorf("%w %q at %v and %v", ErrDuplicateMarker, ch, **mark, p)
				}
				*mark = &p
			default:
				return nil, nil, nil, fmt.Errorf("%w %q at %v", ErrLayoutRune, ch, p)
			}
		}
	}

	g, err := gridgraph.FromCells(cells)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, start, goal, nil
}

// Layout renders g as layout rows without markers.
func Layout(g *gridgraph.Grid) []string {
	rows := make([]string, g.Rows())
	var b strings.Builder
	for r := range rows {
		b.Reset()
		for c := 0; c < g.Cols(); c++ {
			if g.IsFree(gridgraph.Position{Row: r, Col: c}) {
				b.WriteRune(RuneFree)
			} else {
				b.WriteRune(RuneBlocked)
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// Encode writes m as YAML in layout form with explicit endpoints.
func Encode(w io.Writer, m Maze) error {
	f := File{
		Layout: Layout(m.Grid),
		Start:  []int{m.Start.Row, m.Start.Col},
		Goal:   []int{m.Goal.Row, m.Goal.Col},
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("gridfile: encode: %w", err)
	}
	return enc.Close()
}

//go:embed reference.yaml
var reference []byte

// Reference returns the built-in 6×6 demonstration maze, start (0,0),
// goal (5,5).
func Reference() Maze {
	m, err := Parse(reference)
	if err != nil {
		panic(fmt.Sprintf("gridfile: embedded reference maze: %v", err))
	}
	return m
}
