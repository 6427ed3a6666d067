// Package pathproof pairs a grid pathfinding engine with a reusable,
// statistically grounded correctness harness.
//
// 🚀 What is pathproof?
//
//	A small, focused library that brings together:
//		• grid/   — immutable 2D cost fields with a single impassability sentinel
//		• oracle/ — a uniform-cost reference search used as ground truth
//		• astar/  — the A* engine under verification (Manhattan heuristic,
//		            deterministic tie-breaking, coordinate-keyed predecessors)
//		• proof/  — named property predicates plus a two-phase verification
//		            engine (fixed base case + seeded randomized induction)
//
// ✨ Why choose pathproof?
//
//   - Trust through independence – the oracle shares no code with the engine
//     it judges, so a shared bug cannot slip through
//   - Reproducible fuzzing – every randomized run is seeded and logged,
//     so a failing trial can be replayed exactly
//   - Composable – inject any candidate algorithm and any property list;
//     defective implementations are first-class test subjects
//
// Quick ASCII example:
//
//	    start
//	      ▼
//	    [1][3][1]
//	    [1][#][1]     # = impassable cell
//	    [1][1][1]
//	              ▲
//	             end
//
// The proof engine synthesizes grids like the one above, asks the oracle for
// the true minimum cost, runs the candidate, and checks every registered
// property — halting with full diagnostics on the first violation.
//
//	go get github.com/katalvlaran/pathproof
package pathproof
