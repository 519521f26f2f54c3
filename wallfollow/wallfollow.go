package wallfollow

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Name is the registry name of the wall follower.
const Name = "wallfollower"

// InitialHeading is the direction the walker faces at start (+column).
var InitialHeading = gridgraph.Right

// statesPerCell bounds distinct (heading, rule) pairs per position.
const statesPerCell = 8

// walker is the complete state of one walk.
type walker struct {
	grid      *gridgraph.Grid
	trace     *search.Tracer
	pos       gridgraph.Position
	heading   gridgraph.Direction
	rightHand bool
	stack     []gridgraph.Position
}

// Solve reports whether the walker reaches goal from start.
// Invalid endpoints, exhaustion, and detected cycles all report false.
func Solve(g *gridgraph.Grid, start, goal gridgraph.Position) bool {
	return Follow(g, start, goal).Found()
}

// Follow walks from start and, on success, returns start followed by the
// backtrack stack as the path. A retreat leaves the walker in place, so
// repeated stack entries are collapsed; consecutive positions are always
// adjacent, though a position may recur later in the path.
func Follow(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	cfg, err := search.Build(opts...)
	if err != nil {
		return search.Abort(err, 0)
	}
	if err = search.CheckEndpoints(g, start, goal); err != nil {
		return search.Rejected(err)
	}

	w := &walker{
		grid:      g,
		trace:     search.NewTracer(cfg),
		pos:       start,
		heading:   InitialHeading,
		rightHand: true,
	}
	limit := statesPerCell*g.Len() + 1
	for n := 0; w.pos != goal; n++ {
		if n >= limit {
			return search.Exhausted(w.trace.Expanded())
		}
		if err = w.trace.Tick(); err != nil {
			return w.trace.Abort(err)
		}
		ok, err := w.step()
		if err != nil {
			return w.trace.Abort(err)
		}
		if !ok {
			return search.Exhausted(w.trace.Expanded())
		}
	}

	path := make([]gridgraph.Position, 0, len(w.stack)+1)
	path = append(path, start)
	for _, p := range w.stack {
		if p != path[len(path)-1] {
			path = append(path, p)
		}
	}
	return search.Success(path, w.trace.Expanded())
}

// step applies one round of the rules. It returns false when the walker
// is stuck with an empty stack.
func (w *walker) step() (bool, error) {
	right := w.heading.TurnRight()
	switch {
	case w.rightHand && w.open(right):
		w.heading = right
		w.pos = w.pos.Add(right)
	case w.open(w.heading):
		w.pos = w.pos.Add(w.heading)
	default:
		w.heading = w.heading.TurnLeft()
		if w.open(w.heading) {
			w.pos = w.pos.Add(w.heading)
			break
		}
		if w.rightHand {
			w.rightHand = false
			w.heading = w.heading.TurnRight()
			if err := w.trace.Emit(search.Step{Kind: search.StepRuleSwitch, Pos: w.pos, Cost: len(w.stack)}); err != nil {
				return false, err
			}
			if w.open(w.heading) {
				w.pos = w.pos.Add(w.heading)
				break
			}
		}
		if len(w.stack) == 0 {
			return false, nil
		}
		w.pos = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if err := w.trace.Emit(search.Step{Kind: search.StepRetreat, Pos: w.pos, Cost: len(w.stack)}); err != nil {
			return false, err
		}
	}

	w.stack = append(w.stack, w.pos)
	return true, w.trace.Emit(search.Step{Kind: search.StepAdvance, Pos: w.pos, Cost: len(w.stack)})
}

// open reports whether the cell one step in d is a valid neighbor.
func (w *walker) open(d gridgraph.Direction) bool {
	return w.grid.IsFree(w.pos.Add(d))
}

// Solver adapts Follow to search.Solver.
type Solver struct{}

// Name returns "wallfollower".
func (Solver) Name() string { return Name }

// Search runs Follow.
func (Solver) Search(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) search.Result {
	return Follow(g, start, goal, opts...)
}
