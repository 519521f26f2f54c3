// Package fixture provides the grids that gridpath tests and examples
// share, including the 6×6 reference maze.
package fixture

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ReferenceMaze is the 6×6 demonstration grid (1 = free).
var ReferenceMaze = [][]int{
	{1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 1},
	{1, 1, 1, 1, 1, 1},
	{0, 1, 0, 1, 1, 1},
	{1, 1, 0, 1, 1, 1},
	{1, 1, 1, 1, 0, 1},
}

// LoopingMaze is solvable, yet the wall follower cycles on it from
// (0,0) to (5,5).
var LoopingMaze = [][]int{
	{1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 0},
	{0, 1, 0, 1, 1, 0},
	{1, 1, 1, 1, 0, 1},
	{0, 1, 1, 1, 1, 1},
	{0, 0, 1, 1, 1, 1},
}

// Grid builds a grid from values with default options and panics on
// malformed input; fixtures are static.
func Grid(values [][]int) *gridgraph.Grid {
	g, err := gridgraph.NewGrid(values, gridgraph.DefaultGridOptions())
	if err != nil {
		panic(fmt.Sprintf("fixture: %v", err))
	}
	return g
}

// P is shorthand for a Position literal.
func P(row, col int) gridgraph.Position {
	return gridgraph.Position{Row: row, Col: col}
}

// Path converts (row, col) pairs into positions.
func Path(pairs ...[2]int) []gridgraph.Position {
	out := make([]gridgraph.Position, len(pairs))
	for i, rc := range pairs {
		out[i] = P(rc[0], rc[1])
	}
	return out
}

// Open returns an all-free rows×cols matrix.
func Open(rows, cols int) [][]int {
	out := make([][]int, rows)
	for r := range out {
		out[r] = make([]int, cols)
		for c := range out[r] {
			out[r][c] = 1
		}
	}
	return out
}
