// Package oracle computes trusted ground-truth shortest-path costs on a
// grid using uniform-cost best-first search.
//
// What:
//
//   - ShortestCost runs a Dijkstra-style search keyed purely by accumulated
//     cost g — no heuristic — and returns the true minimum cost of entering
//     every cell on the way from start to end (the start cell's own cost
//     is excluded).
//   - Unreachable (math.MaxInt64) is returned when no passable route exists.
//
// Why:
//
//   - Verification harnesses need an independent reference to judge a
//     candidate engine against. This package deliberately shares no code
//     with the astar package: its heap, its cost bookkeeping, and its loop
//     are separate implementations, so a bug in one cannot hide in both.
//
// Complexity:
//
//   - Time:  O((R×C) log (R×C)) — each cell finalized at most once, each
//     relaxation may push a heap entry (lazy decrease-key).
//   - Space: O(R×C) for the best-cost map plus heap entries.
//
// Errors:
//
//   - ErrNilGrid:             the grid pointer is nil.
//   - ErrOutOfBounds:         start or end lies outside the grid.
//   - ErrImpassableEndpoint:  start or end names a blocked cell.
package oracle
