// Package build provides deterministic generators for common digraph
// shapes: paths, cycles, complete graphs, 4-connected grids, and seeded
// random sparse graphs. The search package's tests, benchmarks and
// examples feed on these instead of hand-assembling adjacency lists.
//
// All generators return a ready *digraph.Digraph and only sentinel errors:
//
//   - ErrTooFewVertices      n below the shape's minimum.
//   - ErrNilWeightFunc       Complete called without a weight function.
//   - ErrInvalidProbability  RandomSparse probability outside [0, 1].
//   - ErrBadWeightLimit      RandomSparse weight limit not positive.
//   - ErrBadDimensions       Grid with a non-positive row or column count.
//
// Determinism: vertices are implied by the digraph's fixed count; edges are
// emitted in a stable order (ascending indices), and RandomSparse draws
// from a rand.Rand seeded by the caller, so a fixed seed reproduces the
// same graph.
//
// Grid can also fill the heuristic table with Manhattan distance scaled by
// the step weight — an admissible and consistent estimate on a uniform
// grid, which makes it exact fuel for A*.
package build
