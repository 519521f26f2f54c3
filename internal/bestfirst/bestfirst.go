// Package bestfirst implements the frontier machinery shared by A* and
// Dijkstra: a min-heap keyed by f = g + h with insertion-order tie-break,
// a best-known cost map, a predecessor map, and a closed set.
//
// Notes on implementation choices:
//
//   - Unit step cost: g(next) = g(cur) + 1.
//   - Lazy decrease-key: a neighbor reached with a strictly smaller g is
//     pushed again; stale heap entries are skipped when popped.
//   - A popped position is finalized and never re-expanded.
//   - The goal test happens on pop, so the returned path is optimal for
//     any consistent heuristic.
package bestfirst

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Heuristic estimates the remaining cost from p to goal.
type Heuristic func(p, goal gridgraph.Position) int

// Zero is the heuristic-free estimate used by Dijkstra.
func Zero(_, _ gridgraph.Position) int { return 0 }

// Search runs best-first search from start to goal on g.
func Search(g *gridgraph.Grid, start, goal gridgraph.Position, h Heuristic, opts ...search.Option) search.Result {
	cfg, err := search.Build(opts...)
	if err != nil {
		return search.Abort(err, 0)
	}
	if err = search.CheckEndpoints(g, start, goal); err != nil {
		return search.Rejected(err)
	}

	r := &runner{
		grid:   g,
		goal:   goal,
		h:      h,
		trace:  search.NewTracer(cfg),
		cost:   make(map[gridgraph.Position]int),
		prev:   make(map[gridgraph.Position]gridgraph.Position),
		closed: make(map[gridgraph.Position]bool),
	}
	if err = r.push(start, 0); err != nil {
		return r.trace.Abort(err)
	}

	found, err := r.process()
	if err != nil {
		return r.trace.Abort(err)
	}
	if !found {
		return search.Exhausted(r.trace.Expanded())
	}
	return search.Success(search.Reconstruct(r.prev, start, goal), r.trace.Expanded())
}

// runner holds the mutable state for a single best-first execution.
type runner struct {
	grid   *gridgraph.Grid                           // read-only
	goal   gridgraph.Position                        // target cell
	h      Heuristic                                 // remaining-cost estimate
	trace  *search.Tracer                            // hooks, limits, counters
	cost   map[gridgraph.Position]int                // best known g
	prev   map[gridgraph.Position]gridgraph.Position // predecessor on best path
	closed map[gridgraph.Position]bool               // finalized positions
	pq     nodePQ                                    // min-heap by (f, seq)
	seq    int                                       // insertion counter
}

// push records g as the best known cost of p and adds it to the frontier.
func (r *runner) push(p gridgraph.Position, g int) error {
	r.cost[p] = g
	heap.Push(&r.pq, &nodeItem{pos: p, g: g, f: g + r.h(p, r.goal), seq: r.seq})
	r.seq++

	return r.trace.Emit(search.Step{Kind: search.StepEnqueue, Pos: p, Cost: g})
}

// process pops the lowest-f entry until the goal is finalized or the
// frontier empties.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.pos

		// stale entry: either finalized already or superseded by a cheaper push
		if r.closed[u] || item.g > r.cost[u] {
			continue
		}
		if err := r.trace.Tick(); err != nil {
			return false, err
		}
		r.closed[u] = true
		if err := r.trace.Emit(search.Step{Kind: search.StepExpand, Pos: u, Cost: item.g}); err != nil {
			return false, err
		}
		if u == r.goal {
			return true, nil
		}
		if err := r.relax(u, item.g); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax updates every open neighbor of u reached with a strictly smaller g.
func (r *runner) relax(u gridgraph.Position, g int) error {
	next := g + 1
	for _, v := range r.grid.Neighbors(u) {
		if r.closed[v] {
			continue
		}
		if old, seen := r.cost[v]; seen && next >= old {
			continue
		}
		r.prev[v] = u
		if err := r.push(v, next); err != nil {
			return err
		}
	}

	return nil
}

// nodeItem is a frontier entry.
type nodeItem struct {
	pos gridgraph.Position
	g   int // cost from start
	f   int // g + h
	seq int // insertion order, breaks f ties
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
