// Package digraph implements a weighted directed graph over the vertex set
// {0, …, n-1}, the substrate for the search package's algorithms.
//
// Representation:
//
//   - One singly-linked arc list per source vertex, prepended on AddEdge,
//     so insertion is O(1) and parallel edges (repeated (u,v) pairs, equal
//     or differing weights) are kept as-is — the edge set is a multiset.
//   - An optional dense heuristic table heur[u][v], allocated lazily on the
//     first SetHeuristic call. An absent table reads as 0 everywhere, which
//     turns A* into plain Dijkstra.
//
// Weights must be non-negative for the search package's optimality
// guarantees. The graph performs range checks on vertex arguments but does
// not police weights beyond that — negative weights are a caller error.
// Likewise the heuristic table's admissibility (never overestimating the
// true shortest distance) and consistency are caller obligations; the graph
// stores what it is given.
//
// The vertex count is fixed at construction and edge lists are expected to
// be fully built before any search runs. Concurrent read-only traversal is
// safe; mutation during a search is not.
//
// Errors (sentinel):
//
//   - ErrBadVertexCount     negative n passed to New.
//   - ErrVertexOutOfRange   vertex argument outside [0, n).
//   - ErrNegativeHeuristic  negative estimate passed to SetHeuristic.
package digraph
