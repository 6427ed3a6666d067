// Package astar implements A* best-first search over a grid cost field.
//
// What:
//
//   - Search expands cells in order of f = g + h, where g is the best known
//     accumulated cost from the start and h is a heuristic estimate of the
//     remaining cost (Manhattan distance by default).
//   - Ties on f are broken by insertion sequence, so two runs over the same
//     input always expand cells in the same order and return the same path.
//   - Predecessors live in a coordinate-keyed map, never as raw node links:
//     cost improvements simply overwrite the map entry, so revisits cannot
//     leave a dangling or inconsistent back-reference.
//   - Result carries the reconstructed path, its total cost, and a Found
//     flag; "no path" is an ordinary tagged outcome (Cost = Unreachable),
//     never an error.
//
// Why:
//
//   - Route planning on static 4-connected maps with per-cell entry costs.
//   - As the canonical subject for the proof package's verification
//     harness, including deliberately defective variants assembled via
//     WithHeuristic.
//
// Admissibility:
//
//   - The Manhattan heuristic never overestimates only when every traversal
//     cost is at least 1. The engine does not enforce that precondition;
//     callers feeding cheaper cells trade away the optimality guarantee.
//
// Complexity:
//
//   - Time:  O((R×C) log (R×C)) with lazy decrease-key.
//   - Space: O(R×C) for score, predecessor, and closed bookkeeping.
//
// Errors:
//
//   - ErrNilGrid:            the grid pointer is nil.
//   - ErrOutOfBounds:        start or end lies outside the grid.
//   - ErrImpassableEndpoint: start or end names a blocked cell.
package astar
