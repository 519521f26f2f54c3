package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleAStar routes around a wall on a 3×4 grid.
func ExampleAStar() {
	g, err := gridgraph.NewGrid([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res := astar.AStar(g, gridgraph.Position{Row: 1, Col: 0}, gridgraph.Position{Row: 1, Col: 3})
	fmt.Println(res.Status, res.Path)
	// Output:
	// found [(1,0) (2,0) (2,1) (2,2) (2,3) (1,3)]
}
