// Package grid models an immutable 2D field of traversal costs for
// 4-directional pathfinding.
//
// What:
//
//   - Grid wraps a rectangular [][]int64 cost matrix, deep-copied on build.
//   - A single reserved sentinel (Impassable) marks blocked cells, so
//     passability has one source of truth instead of a parallel flag grid.
//   - Coord is a validated (row, col) pair; Manhattan gives the L1 distance.
//   - Neighbors enumerates passable 4-directional neighbors in a fixed
//     N, E, S, W order, so every traversal built on top is deterministic.
//   - ValidPath structurally checks a produced path: non-empty, consecutive
//     steps exactly one Manhattan unit apart, every cell passable.
//
// Why:
//
//   - Pathfinding engines: A*, uniform-cost search, and friends all consume
//     the same read-only cost field.
//   - Verification harnesses: structural path checks belong next to the
//     grid, not inside any engine under test.
//
// Complexity:
//
//   - New:       O(R×C) time and memory (deep copy).
//   - InBounds, Passable, Cost, Neighbors, Manhattan: O(1).
//   - ValidPath: O(len(path)).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellCost:    a cell cost is negative and not the Impassable sentinel.
//   - ErrOutOfBounds:    a coordinate lies outside the grid.
//   - ErrImpassableCell: a cost lookup targeted a blocked cell.
package grid
