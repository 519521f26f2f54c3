// Package backtrack implements exhaustive depth-first search with explicit
// undo on a gridgraph.Grid.
//
// The current route is kept on an explicit stack that starts at the start
// position. Each step advances into the first unvisited free neighbor in
// the fixed grid order, or pops the top when there is none. Popped
// positions stay visited, so cycles never cause a revisit and the total
// number of advances is bounded by the number of free cells.
//
// The returned path is a reachability witness: the first route depth-first
// order happens to find, not necessarily the shortest. The search is
// iterative, so large grids cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(N) advances and retreats for N free cells.
//   - Memory: O(N) for the visited set and the route stack.
package backtrack
