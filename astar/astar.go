package astar

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/bestfirst"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of the A* solver.
const Name = "astar"

// Manhattan is the A* heuristic: |Δrow| + |Δcol| from p to goal.
func Manhattan(p, goal gridgraph.Position) int {
	return p.Manhattan(goal)
}

// AStar finds a shortest path from start to goal on g.
//
// Tie-break: entries with equal f leave the frontier in insertion order.
// A finalized position is never re-expanded; a neighbor reached with a
// strictly smaller g is re-queued with its new cost.
func AStar(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	return bestfirst.Search(g, start, goal, Manhattan, opts...)
}

// Solver adapts AStar to search.Solver.
type Solver struct{}

// Name returns "astar".
func (Solver) Name() string { return Name }

// Search runs AStar.
func (Solver) Search(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	return AStar(g, start, goal, opts...)
}
