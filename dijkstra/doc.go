// Package dijkstra provides uniform-cost shortest-path search on a
// gridgraph.Grid.
//
// Overview:
//
//   - Dijkstra is A* with the heuristic fixed at zero: the frontier is
//     ordered by accumulated step count g alone.
//   - Ties on g leave the frontier in discovery order.
//   - It relies on a min-heap with lazy decrease-key; stale entries are
//     ignored when popped.
//
// When to use:
//
//   - As a heuristic-free baseline for A* on the same grid; both return
//     paths of identical, minimal length.
//   - When the goal location should not bias exploration order.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N free cells.
//   - Space: O(N) for cost, predecessor, and finalized maps, plus the heap.
//
// Error handling:
//
//   - Invalid endpoints surface as search.InvalidEndpoint and an
//     unreachable goal as search.NotFound; Result.Err maps both to
//     sentinel errors.
package dijkstra
