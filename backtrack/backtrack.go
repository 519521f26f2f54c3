package backtrack

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of the backtracking solver.
const Name = "backtracking"

// walker encapsulates state during the search.
type walker struct {
	grid    *gridgraph.Grid
	goal    gridgraph.Position
	trace   *search.Tracer
	visited map[gridgraph.Position]bool
	path    []gridgraph.Position // current route, start at index 0
}

// Backtrack searches depth-first from start and returns the route stack
// the moment its top equals goal. Returns NotFound once start itself is
// popped with no alternative left.
func Backtrack(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	cfg, err := search.Build(opts...)
	if err != nil {
		return search.Abort(err, 0)
	}
	if err = search.CheckEndpoints(g, start, goal); err != nil {
		return search.Rejected(err)
	}

	w := &walker{
		grid:    g,
		goal:    goal,
		trace:   search.NewTracer(cfg),
		visited: map[gridgraph.Position]bool{start: true},
		path:    []gridgraph.Position{start},
	}
	if err = w.trace.Emit(search.Step{Kind: search.StepAdvance, Pos: start}); err != nil {
		return w.trace.Abort(err)
	}

	found, err := w.run()
	if err != nil {
		return w.trace.Abort(err)
	}
	if !found {
		return search.Exhausted(w.trace.Expanded())
	}
	return search.Success(w.path, w.trace.Expanded())
}

// run advances or retreats until the goal is on top or the stack empties.
func (w *walker) run() (bool, error) {
	for len(w.path) > 0 {
		top := w.path[len(w.path)-1]
		if top == w.goal {
			return true, nil
		}
		if err := w.trace.Tick(); err != nil {
			return false, err
		}

		next, ok := w.firstUnvisited(top)
		if !ok {
			// dead end: undo, top stays visited
			w.path = w.path[:len(w.path)-1]
			if err := w.trace.Emit(search.Step{Kind: search.StepRetreat, Pos: top, Cost: len(w.path)}); err != nil {
				return false, err
			}
			continue
		}

		w.visited[next] = true
		w.path = append(w.path, next)
		if err := w.trace.Emit(search.Step{Kind: search.StepAdvance, Pos: next, Cost: len(w.path) - 1}); err != nil {
			return false, err
		}
	}
	return false, nil
}

// firstUnvisited returns the first free neighbor of p not yet visited.
func (w *walker) firstUnvisited(p gridgraph.Position) (gridgraph.Position, bool) {
	for _, n := range w.grid.Neighbors(p) {
		if !w.visited[n] {
			return n, true
		}
	}
	return gridgraph.Position{}, false
}

// Solver adapts Backtrack to search.Solver.
type Solver struct{}

// Name returns "backtracking".
func (Solver) Name() string { return Name }

// Search runs Backtrack.
func (Solver) Search(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	return Backtrack(g, start, goal, opts...)
}
