// Package search implements single-source/single-destination path search
// over a digraph.Digraph: Dijkstra, A*, and a stack-based DFS reachability
// walk. Dijkstra and A* are label-setting algorithms built on the indexed
// min-heap from package minheap; its O(log n) DecreaseKey is what makes the
// relaxation step cheap.
//
// Entry points (shared signature):
//
//	ShortestPath(g, source, dest, &visited, &path)          → (distance, error)
//	ShortestPathHeuristic(g, source, dest, &visited, &path) → (distance, error)
//	ReachabilityPath(g, source, dest, &visited, &path)      → (distance, error)
//
// visited and path are output arguments: the caller passes pointers to
// empty slices, the search appends the vertices it finalizes (in the order
// it finalizes them) to visited and the reconstructed source→dest path to
// path. When dest is unreachable the returned distance is +Inf and path
// stays empty. A non-nil error means a contract violation; the outputs are
// untouched in that case.
//
// Algorithm shape (Dijkstra and A*):
//
//  1. dist[source] = 0, every other vertex +Inf; one heap entry per vertex
//     with priority dist[v] (Dijkstra) or dist[v] + heur[v][dest] (A*).
//  2. While the heap is non-empty and its minimum priority is finite:
//     extract the minimum, record its vertex as visited, stop if it is
//     dest, otherwise relax each outgoing arc — a strictly better
//     candidate distance updates dist/previous and lowers the target's
//     heap priority via DecreaseKey.
//  3. Walk previous[] backward from dest and reverse to obtain the path.
//
// A vertex is finalized the moment it leaves the heap. With non-negative
// weights Dijkstra's result is exact; A* is exact as well provided the
// caller-supplied heuristic is admissible and consistent. An inconsistent
// heuristic may finalize a vertex too early — the returned distance is then
// possibly suboptimal (finalized vertices are never reopened).
//
// ReachabilityPath replaces the heap with a LIFO stack, so it finds *a*
// path, not a shortest one: the returned distance is the length of the
// specific path it discovered.
//
// Guarantees hold only while the graph is not mutated during the search.
// Each call allocates its own working state; concurrent searches over one
// graph are safe.
//
// Errors (sentinel):
//
//   - ErrNilGraph         g is nil.
//   - ErrVertexOutOfRange source or dest outside [0, n).
//   - ErrNilOutput        visited or path pointer is nil.
//   - ErrOutputNotEmpty   visited or path already holds elements.
package search
