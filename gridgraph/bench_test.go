package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkConnectedComponents labels a 200×200 checkerboard of corridors.
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 200
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			if r%2 == 0 || c%4 == 0 {
				values[r][c] = 1
			}
		}
	}
	g, err := gridgraph.NewGrid(values, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
