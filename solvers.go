package gridpath

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/backtrack"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/floodfill"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/wallfollow"
)

// Version is the release of the gridpath module.
const Version = "0.3.0"

// ErrUnknownSolver is returned by Lookup for an unregistered name.
var ErrUnknownSolver = errors.New("gridpath: unknown solver")

// registry lists the strategies in menu order.
var registry = []search.Solver{
	astar.Solver{},
	backtrack.Solver{},
	dijkstra.Solver{},
	floodfill.Solver{},
	wallfollow.Solver{},
}

// Solvers returns every registered strategy in menu order.
// The returned slice is a copy.
func Solvers() []search.Solver {
	out := make([]search.Solver, len(registry))
	copy(out, registry)
	return out
}

// Names returns the registered solver names in menu order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name()
	}
	return names
}

// Lookup returns the solver registered under name.
func Lookup(name string) (search.Solver, error) {
	for _, s := range registry {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}

// Comparison pairs a solver name with its result.
type Comparison struct {
	Solver string
	Result search.Result
}

// Compare runs every registered solver against g concurrently, one
// goroutine per solver, and returns the results in menu order. ctx is
// passed to each search; extra opts are applied after it.
// The grid is only read, so no locking is needed; an OnStep hook in
// opts is called from several goroutines at once.
func Compare(ctx context.Context, g *gridgraph.Grid, start, goal gridgraph.Position, opts ...search.Option) []Comparison {
	out := make([]Comparison, len(registry))
	base := append([]search.Option{search.WithContext(ctx)}, opts...)

	var wg sync.WaitGroup
	for i, s := range registry {
		wg.Add(1)
		go func(i int, s search.Solver) {
			defer wg.Done()
			out[i] = Comparison{Solver: s.Name(), Result: s.Search(g, start, goal, base...)}
		}(i, s)
	}
	wg.Wait()

	return out
}
