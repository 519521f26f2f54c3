package floodfill_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/floodfill"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleFloodFill prints BFS rings as they are finalized.
func ExampleFloodFill() {
	g, _ := gridgraph.NewGrid([][]int{
		{1, 1, 1},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())

	var order []gridgraph.Position
	res := floodfill.FloodFill(g, gridgraph.Position{}, gridgraph.Position{Row: 1, Col: 2},
		search.WithOnStep(func(st search.Step) error {
			if st.Kind == search.StepExpand {
				order = append(order, st.Pos)
			}
			return nil
		}))
	fmt.Println(order)
	fmt.Println(res.Path)
	// Output:
	// [(0,0) (1,0) (0,1) (0,2) (1,2)]
	// [(0,0) (0,1) (0,2) (1,2)]
}
