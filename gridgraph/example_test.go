package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleGrid_Neighbors shows the fixed Down, Right, Up, Left order.
func ExampleGrid_Neighbors() {
	g, err := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{0, 1, 1},
		{1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Neighbors(gridgraph.Position{Row: 1, Col: 1}))
	// Output:
	// [(2,1) (1,2) (0,1)]
}
