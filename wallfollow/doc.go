// Package wallfollow implements a contact-following maze walker that keeps
// its right hand on the wall, falls back to the left-hand rule when cornered,
// and uses a stack of previous positions to back out of dead ends.
//
// Unlike the other gridpath strategies it keeps no visited set and no cost
// bookkeeping, only the current position, a heading, a rule flag, and the
// backtrack stack. It is neither optimal nor complete: some solvable mazes
// are reported unsolved. The rule ordering below is kept exactly so that
// results stay comparable across versions.
//
// Per step, while the walker is not on the goal:
//
//  1. Right-hand rule active and the cell to the right is free: turn right and move.
//  2. Else the cell ahead is free: move straight.
//  3. Else turn left; if that cell is free, move.
//  4. Else, if still on the right-hand rule: switch to the left-hand rule,
//     turn back right (undoing step 3), and move if that cell is free.
//  5. Else pop the backtrack stack into the current position, or fail
//     when the stack is empty.
//  6. Push the current position.
//
// Termination:
//
// The stack is never cleared and its top always equals the current
// position after the first push, so the walker is a deterministic machine
// over (position, heading, rule). More than 8 iterations per cell without
// reaching the goal means it is cycling, and the walk stops as NotFound.
package wallfollow
