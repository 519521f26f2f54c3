package search

import (
	"errors"
	"iter"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Solver is the capability shared by every strategy.
// Search must not mutate g and must keep all state local to the call.
type Solver interface {
	Name() string
	Search(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) Result
}

var errTraceStopped = errors.New("search: trace consumer stopped")

// Trace runs s and yields its steps lazily. Breaking out of the range
// loop stops the underlying search. Trace installs its own OnStep hook,
// overriding any WithOnStep in opts.
func Trace(s Solver, g *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		hook := WithOnStep(func(st Step) error {
			if !yield(st) {
				return errTraceStopped
			}
			return nil
		})
		s.Search(g, start, goal, append(opts[:len(opts):len(opts)], hook)...)
	}
}
