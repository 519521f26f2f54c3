// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Cell is the occupancy state of a single grid cell.
type Cell uint8

const (
	// Blocked cells are never traversable. It is also what At reports
	// for positions outside the grid.
	Blocked Cell = iota
	// Free cells may be entered by a search.
	Free
)

// String returns "free" or "blocked".
func (c Cell) String() string {
	switch c {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Position addresses a cell by row and column. The zero value is the
// top-left corner.
type Position struct {
	Row, Col int
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Adjacent reports whether p and q are 4-neighbors.
func (p Position) Adjacent(q Position) bool {
	return p.Manhattan(q) == 1
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// FreeThreshold specifies the minimum cell value considered "free".
	// Anything below it is Blocked.
	FreeThreshold int
}

// DefaultGridOptions returns a GridOptions with default settings:
// FreeThreshold=1 (values ≥1 are free, 0 is a wall).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		FreeThreshold: 1,
	}
}

// Grid is a read-only rectangular occupancy matrix. Cells are stored
// row-major; index(p) = p.Row*cols + p.Col.
type Grid struct {
	rows, cols int
	cells      []Cell
}
