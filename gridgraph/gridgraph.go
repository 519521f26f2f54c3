package gridgraph

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// A value ≥ opts.FreeThreshold marks a Free cell, anything else is Blocked.
// The input is copied, later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	h, w, err := shape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: h, cols: w, cells: make([]Cell, h*w)}
	for r, row := range values {
		for c, v := range row {
			if v >= opts.FreeThreshold {
				g.cells[r*w+c] = Free
			}
		}
	}

	return g, nil
}

// FromCells constructs a Grid directly from Cell markers.
// Same validation and copying rules as NewGrid.
func FromCells(cells [][]Cell) (*Grid, error) {
	h, w, err := shape(len(cells), func(r int) int { return len(cells[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: h, cols: w, cells: make([]Cell, 0, h*w)}
	for _, row := range cells {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// shape validates row count and that every row has the width of row 0.
func shape(rows int, width func(r int) int) (h, w int, err error) {
	if rows == 0 || width(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	w = width(0)
	for r := 1; r < rows; r++ {
		if width(r) != w {
			return 0, 0, ErrNonRectangular
		}
	}
	return rows, w, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells, Rows()*Cols().
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p, or Blocked when p is out of bounds.
// Complexity: O(1).
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Blocked
	}
	return g.cells[g.index(p)]
}

// IsFree reports whether p is inside the grid and Free. It fails closed:
// positions outside the grid are simply not traversable.
func (g *Grid) IsFree(p Position) bool {
	return g.At(p) == Free
}

// Neighbors returns the in-bounds free 4-neighbors of p in the fixed
// order Down, Right, Up, Left. The order drives tie-breaking in every
// search and never changes.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOrder))
	for _, d := range neighborOrder {
		if n := p.Add(d); g.IsFree(n) {
			out = append(out, n)
		}
	}
	return out
}

// FreeCount returns how many cells are Free.
func (g *Grid) FreeCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Free {
			n++
		}
	}
	return n
}

// Values returns a fresh 0/1 matrix (1 = free) describing the grid.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			if g.cells[r*g.cols+c] == Free {
				out[r][c] = 1
			}
		}
	}
	return out
}

// index maps p to a row‑major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row‑major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
