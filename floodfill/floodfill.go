package floodfill

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of the flood fill solver.
const Name = "floodfill"

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   gridgraph.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	trace   *search.Tracer
	queue   []queueItem
	visited map[gridgraph.Position]bool
	depth   map[gridgraph.Position]int
	prev    map[gridgraph.Position]gridgraph.Position
}

func newWalker(g *gridgraph.Grid, cfg search.Options) *walker {
	return &walker{
		grid:    g,
		trace:   search.NewTracer(cfg),
		visited: make(map[gridgraph.Position]bool),
		depth:   make(map[gridgraph.Position]int),
		prev:    make(map[gridgraph.Position]gridgraph.Position),
	}
}

// FloodFill finds a shortest path from start to goal on g by breadth-first
// expansion. Returns NotFound when the queue empties without the goal.
func FloodFill(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	cfg, err := search.Build(opts...)
	if err != nil {
		return search.Abort(err, 0)
	}
	if err = search.CheckEndpoints(g, start, goal); err != nil {
		return search.Rejected(err)
	}

	w := newWalker(g, cfg)
	found, err := w.run(start, &goal)
	if err != nil {
		return w.trace.Abort(err)
	}
	if !found {
		return search.Exhausted(w.trace.Expanded())
	}
	return search.Success(search.Reconstruct(w.prev, start, goal), w.trace.Expanded())
}

// Region returns the BFS distance of every cell reachable from start,
// start included at 0. A blocked or out-of-bounds start yields
// search.ErrInvalidEndpoint.
func Region(g *gridgraph.Grid, start gridgraph.Position, opts ...search.Option) (map[gridgraph.Position]int, error) {
	cfg, err := search.Build(opts...)
	if err != nil {
		return nil, err
	}
	if err = search.CheckEndpoints(g, start, start); err != nil {
		return nil, err
	}

	w := newWalker(g, cfg)
	if _, err = w.run(start, nil); err != nil {
		return nil, err
	}
	return w.depth, nil
}

// run drains the queue from start. With a non-nil goal it stops as soon
// as the goal is dequeued and reports true.
func (w *walker) run(start gridgraph.Position, goal *gridgraph.Position) (bool, error) {
	if err := w.enqueue(start, 0); err != nil {
		return false, err
	}
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.trace.Tick(); err != nil {
			return false, err
		}
		if err := w.trace.Emit(search.Step{Kind: search.StepExpand, Pos: item.pos, Cost: item.depth}); err != nil {
			return false, err
		}
		if goal != nil && item.pos == *goal {
			return true, nil
		}
		for _, nbr := range w.grid.Neighbors(item.pos) {
			// first time seen?
			if w.visited[nbr] {
				continue
			}
			w.prev[nbr] = item.pos
			if err := w.enqueue(nbr, item.depth+1); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// enqueue marks p visited at depth d and appends it to the queue.
func (w *walker) enqueue(p gridgraph.Position, d int) error {
	w.visited[p] = true
	w.depth[p] = d
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
	return w.trace.Emit(search.Step{Kind: search.StepEnqueue, Pos: p, Cost: d})
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// Solver adapts FloodFill to search.Solver.
type Solver struct{}

// Name returns "floodfill".
func (Solver) Name() string { return Name }

// Search runs FloodFill.
func (Solver) Search(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	return FloodFill(g, start, goal, opts...)
}
