// Package astar provides heuristic-guided shortest-path search on a
// gridgraph.Grid using the Manhattan distance.
//
// Overview:
//
//   - The frontier is ordered by f = g + h, where g is the step count from
//     start and h = |Δrow| + |Δcol| to the goal.
//   - On a 4-connected unit-cost grid the Manhattan distance is admissible
//     and consistent, so the first time the goal is popped its path is optimal.
//   - Equal f values are expanded in discovery order, making output
//     reproducible across runs.
//
// Complexity:
//
//   - Time:  O(N log N) for N free cells, usually far fewer expansions
//     than Dijkstra on open maps.
//   - Space: O(N) for cost, predecessor, and closed maps plus the heap.
//
// Outcome:
//
//   - Found with the path, NotFound once the frontier empties, or
//     InvalidEndpoint when start or goal is blocked or out of bounds.
//     AStar never panics and never returns an error value.
package astar
