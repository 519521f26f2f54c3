// Package gridgraph treats a fixed-size 2D occupancy grid as an implicit
// 4-connected graph for the search strategies of gridpath.
//
// What:
//
//   - Grid wraps a rectangular matrix of Free/Blocked cells. It is immutable once built.
//   - Position is a (Row, Col) value type, comparable and usable as a map key.
//   - Direction is a unit step (Up, Down, Left, Right) with exact 90° rotations.
//   - Neighbors enumerates in-bounds free cells in a fixed order: Down, Right, Up, Left.
//   - ConnectedComponents labels free regions, answering reachability in O(1).
//
// Why:
//
//   - Every search in gridpath breaks ties by neighbor order, so that order is
//     part of the contract and never depends on map iteration.
//   - Out-of-bounds positions are never an error: IsFree fails closed.
//
// Complexity:
//
//   - NewGrid:             O(R×C) time and memory.
//   - IsFree, At, InBounds: O(1).
//   - Neighbors:           O(1), at most 4 results.
//   - ConnectedComponents: O(R×C), Memory: O(R×C).
//
// Options:
//
//   - GridOptions.FreeThreshold: minimum integer value considered "free".
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// Thread safety:
//
//   - A *Grid has no mutating methods; it may be shared by any number of
//     concurrent searches.
package gridgraph
