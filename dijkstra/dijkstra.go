package dijkstra

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/bestfirst"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of the Dijkstra solver.
const Name = "dijkstra"

// Dijkstra finds a shortest path from start to goal on g with unit step
// costs and no heuristic.
//
// Preconditions and validation (in order):
//  1. options must be valid (search.ErrOptionViolation → Aborted).
//  2. g must be non-nil (search.ErrNilGrid → InvalidEndpoint).
//  3. start and goal must be free cells (search.ErrInvalidEndpoint).
func Dijkstra(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	return bestfirst.Search(g, start, goal, bestfirst.Zero, opts...)
}

// Solver adapts Dijkstra to search.Solver.
type Solver struct{}

// Name returns "dijkstra".
func (Solver) Name() string { return Name }

// Search runs Dijkstra.
func (Solver) Search(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	return Dijkstra(g, start, goal, opts...)
}
