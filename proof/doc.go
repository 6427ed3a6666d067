// Package proof statistically verifies grid search implementations against
// the uniform-cost reference oracle.
//
// What:
//
//   - Algorithm is any injected candidate with the engine contract
//     (grid, start, end) → (Result, error). Correct implementations,
//     deliberately defective ones, and third-party engines are all
//     first-class subjects.
//   - Property is a named, stateless predicate over a synthesized TestCase
//     and the candidate's Result. Optimality (cost equals the oracle's)
//     and Validity (path survives grid.ValidPath) ship built in.
//   - Engine drives the two-phase protocol: a fixed deterministic base
//     case (start == end on a minimal grid) followed by a seeded
//     randomized inductive step over freshly generated grids.
//   - Every step appends to an ordered, severity-tagged log; the first
//     failing trial halts the run with full reproduction context (grid
//     dump, endpoints, oracle vs reported cost, failing property).
//
// Why:
//
//   - Randomized conformance testing catches classes of bugs example-based
//     tests miss — the classic "order the open set by h alone" defect falls
//     within a handful of trials on small random grids.
//   - The oracle is structurally independent of any candidate, so a shared
//     bug cannot vouch for itself.
//
// Reproducibility:
//
//   - The generator is owned by the engine and seeded explicitly
//     (WithSeed) or from the clock; the seed is always logged, so any
//     failing run can be replayed exactly.
//
// State machine:
//
//	StateNotRun → StateBaseCaseChecked → StateInductiveRunning →
//	StatePassed | StateFailed
//
// Any failure is terminal for the run; engines are one-shot by design —
// build a fresh Engine per verification.
//
// Errors:
//
//   - ErrNilAlgorithm: no candidate was injected.
//   - ErrNoProperties: the property list resolved empty.
//   - ErrBadSizeRange: inductive grid sizes are not 2 ≤ min ≤ max.
//   - ErrBadCellCost:  the maximum generated cell cost is below 1.
package proof
