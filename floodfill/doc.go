// Package floodfill provides breadth-first reachability and unweighted
// shortest paths on a gridgraph.Grid.
//
// Flood fill expands from the start in rings of increasing distance using
// a FIFO queue, so the goal is first dequeued along a shortest path. It
// needs no priority structure. Positions are marked visited the moment
// they are enqueued, so no cell is ever queued twice.
//
// Region reports every cell reachable from a start position together with
// its distance, which is what a paint-bucket style fill needs.
package floodfill
