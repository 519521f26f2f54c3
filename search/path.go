package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// CheckEndpoints validates a search request. It returns ErrNilGrid for a
// nil grid and ErrInvalidEndpoint, naming the offending endpoint, when
// start or goal is outside the grid or blocked.
func CheckEndpoints(g *gridgraph.Grid, start, goal gridgraph.Position) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.IsFree(start) {
		return fmt.Errorf("%w: start %v", ErrInvalidEndpoint, start)
	}
	if !g.IsFree(goal) {
		return fmt.Errorf("%w: goal %v", ErrInvalidEndpoint, goal)
	}
	return nil
}

// Reconstruct walks the predecessor map backward from goal to start, then
// reverses it. prev must describe a tree rooted at start.
func Reconstruct(prev map[gridgraph.Position]gridgraph.Position, start, goal gridgraph.Position) []gridgraph.Position {
	path := []gridgraph.Position{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ValidatePath checks that path starts at start, ends at goal, only
// touches free cells, and moves between 4-adjacent cells.
func ValidatePath(g *gridgraph.Grid, path []gridgraph.Position, start, goal gridgraph.Position) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != start {
		return fmt.Errorf("%w: begins at %v, want %v", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != goal {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, goal)
	}
	for i, p := range path {
		if !g.IsFree(p) {
			return fmt.Errorf("%w: step %d at %v is not free", ErrInvalidPath, i, p)
		}
		if i > 0 && !path[i-1].Adjacent(p) {
			return fmt.Errorf("%w: step %d jumps %v→%v", ErrInvalidPath, i, path[i-1], p)
		}
	}
	return nil
}
