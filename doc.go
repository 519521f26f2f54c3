// Package gridpath is a toolkit of classic maze-solving strategies over
// 4-connected occupancy grids, from optimal best-first searches to the
// naive wall follower.
//
// What is gridpath?
//
//	A small, dependency-light library bringing together:
//		• Grid model: immutable free/blocked cells, positions, headings
//		• Shortest paths: A* (Manhattan) and Dijkstra
//		• Shortest hop count: flood fill (BFS)
//		• Exploration: depth-first backtracking
//		• Reactive walking: right/left-hand wall follower
//		• Observation: a uniform step stream for animation or metrics
//
// Why gridpath?
//
//   - One contract: every strategy satisfies search.Solver
//   - Deterministic: fixed neighbor order and insertion-order tie-breaks
//   - Safe to share: grids are read-only, search state is per call
//   - Hookable: WithOnStep, WithContext and WithMaxSteps on every search
//
// Layout:
//
//	gridgraph/         Grid, Cell, Position, Direction, connected components
//	search/            Status, Result, Step, Options, Solver, Trace, path checks
//	astar/             A* with the Manhattan heuristic
//	dijkstra/          uniform-cost best-first search
//	floodfill/         breadth-first search and reachability regions
//	backtrack/         depth-first search with an explicit stack
//	wallfollow/        right-hand rule with a single left-hand fallback
//	cmd/gridpath       command-line front end
//
// This package ties the strategies together: Solvers lists them in menu
// order, Lookup resolves one by name and Compare runs them all
// concurrently against the same grid.
//
// Quick ASCII example (# blocked, . free, S start, G goal):
//
//	S . . . . .
//	. # # # . .
//	. . . . . .
//	# . # . . .
//	. . # . . .
//	. . . . # G
//
//	go get github.com/katalvlaran/gridpath
package gridpath
