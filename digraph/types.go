// Package digraph defines the Digraph type, its adjacency representation,
// and sentinel errors for graph construction and queries.
package digraph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to New.
	ErrBadVertexCount = errors.New("digraph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex argument outside [0, n).
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrNegativeHeuristic indicates a negative heuristic estimate; an
	// admissible estimate underestimates a non-negative distance, so it can
	// never be negative itself.
	ErrNegativeHeuristic = errors.New("digraph: heuristic estimate must be non-negative")
)

// Edge is one outgoing arc as reported by OutEdges: the target vertex and
// the arc's weight. Parallel arcs yield repeated Edge values.
type Edge struct {
	// To is the target vertex.
	To int

	// Weight is the arc's non-negative weight.
	Weight float64
}

// arc is one node of a vertex's singly-linked adjacency list.
type arc struct {
	to     int
	weight float64
	next   *arc
}
