// Package dijkstra_test validates uniform-cost search: scenarios, tie-break,
// endpoint validation, and agreement with A* on path length.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/internal/fixture"
	"github.com/katalvlaran/gridpath/search"
)

// ------------------------------------------------------------------------
// 1. Validation: invalid endpoints never panic.
// ------------------------------------------------------------------------

func TestDijkstra_InvalidEndpoints(t *testing.T) {
	g := fixture.Grid(fixture.ReferenceMaze)

	res := dijkstra.Dijkstra(g, fixture.P(1, 1), fixture.P(5, 5))
	require.Equal(t, search.InvalidEndpoint, res.Status)
	require.ErrorIs(t, res.Err(), search.ErrInvalidEndpoint)

	res = dijkstra.Dijkstra(g, fixture.P(0, 0), fixture.P(5, 4))
	require.Equal(t, search.InvalidEndpoint, res.Status)

	res = dijkstra.Dijkstra(g, fixture.P(0, 0), fixture.P(0, 9))
	require.Equal(t, search.InvalidEndpoint, res.Status)
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestDijkstra_Scenarios(t *testing.T) {
	open := fixture.Grid([][]int{{1, 1}, {1, 1}})
	res := dijkstra.Dijkstra(open, fixture.P(0, 0), fixture.P(1, 1))
	require.Equal(t, fixture.Path([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}), res.Path)

	diag := fixture.Grid([][]int{{1, 0}, {0, 1}})
	res = dijkstra.Dijkstra(diag, fixture.P(0, 0), fixture.P(1, 1))
	require.Equal(t, search.NotFound, res.Status)
	require.ErrorIs(t, res.Err(), search.ErrNotFound)
	require.Equal(t, 1, res.Expanded)

	maze := fixture.Grid(fixture.ReferenceMaze)
	res = dijkstra.Dijkstra(maze, fixture.P(0, 0), fixture.P(5, 5))
	require.True(t, res.Found())
	require.Equal(t, 11, res.Len())
	require.Equal(t, 29, res.Expanded)
	require.NoError(t, search.ValidatePath(maze, res.Path, fixture.P(0, 0), fixture.P(5, 5)))
}

func TestDijkstra_Trivial(t *testing.T) {
	g := fixture.Grid([][]int{{1}})
	res := dijkstra.Dijkstra(g, fixture.P(0, 0), fixture.P(0, 0))
	require.True(t, res.Found())
	require.Equal(t, fixture.Path([2]int{0, 0}), res.Path)
}

// ------------------------------------------------------------------------
// 3. Heuristic-free baseline.
// ------------------------------------------------------------------------

// TestDijkstra_MatchesAStarLength compares against A*, which must return
// the same optimal length while finalizing no more cells.
func TestDijkstra_MatchesAStarLength(t *testing.T) {
	g := fixture.Grid(fixture.Open(10, 10))
	start, goal := fixture.P(5, 0), fixture.P(5, 9)

	dj := dijkstra.Dijkstra(g, start, goal)
	as := astar.AStar(g, start, goal)
	require.Equal(t, as.Len(), dj.Len())
	require.Equal(t, 70, dj.Expanded)
	require.LessOrEqual(t, as.Expanded, dj.Expanded)
}
