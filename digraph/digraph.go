package digraph

import "fmt"

// Digraph is a weighted directed graph over vertices {0, …, n-1} with
// per-vertex linked adjacency lists (parallel edges allowed) and an
// optional dense heuristic-distance table for A*.
type Digraph struct {
	n    int         // number of vertices
	m    int         // number of edges (arcs), counting parallels
	adj  []*arc      // adj[u] heads u's list of outgoing arcs, newest first
	heur [][]float64 // heur[u][v] estimate of dist(u,v); nil until SetHeuristic
}

// New returns a graph with n vertices and no edges.
// Returns ErrBadVertexCount if n is negative.
func New(n int) (*Digraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	return &Digraph{n: n, adj: make([]*arc, n)}, nil
}

// VertexCount reports the number of vertices. O(1).
func (g *Digraph) VertexCount() int { return g.n }

// EdgeCount reports the number of arcs, counting parallel arcs
// individually. O(1).
func (g *Digraph) EdgeCount() int { return g.m }

// AddEdge prepends the arc u→v with weight w to u's adjacency list. O(1).
// Parallel arcs accumulate; nothing deduplicates them. The weight must be
// non-negative for shortest-path optimality, but that is the caller's
// obligation — only the endpoints are range-checked here.
func (g *Digraph) AddEdge(u, v int, w float64) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: target %d (n=%d)", ErrVertexOutOfRange, v, g.n)
	}

	g.adj[u] = &arc{to: v, weight: w, next: g.adj[u]}
	g.m++

	return nil
}

// SetHeuristic stores h as the heuristic estimate of the distance from u
// to v, allocating the n×n table on first use. h must be non-negative; its
// admissibility and consistency are documented caller obligations that the
// graph does not verify.
func (g *Digraph) SetHeuristic(u, v int, h float64) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: target %d (n=%d)", ErrVertexOutOfRange, v, g.n)
	}
	if h < 0 {
		return fmt.Errorf("%w: heur(%d,%d)=%g", ErrNegativeHeuristic, u, v, h)
	}

	if g.heur == nil {
		g.heur = make([][]float64, g.n)
		for i := range g.heur {
			g.heur[i] = make([]float64, g.n)
		}
	}
	g.heur[u][v] = h

	return nil
}

// Heuristic reports the stored estimate of the distance from u to v,
// 0 when no estimate was ever set. O(1).
func (g *Digraph) Heuristic(u, v int) (float64, error) {
	if u < 0 || u >= g.n {
		return 0, fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("%w: target %d (n=%d)", ErrVertexOutOfRange, v, g.n)
	}
	if g.heur == nil {
		return 0, nil
	}

	return g.heur[u][v], nil
}

// HeuristicsTo returns a copy of the heuristic estimates from every vertex
// toward dest: a slice of length n with element u equal to heur[u][dest].
// All zeros when no estimate was ever set. O(n).
func (g *Digraph) HeuristicsTo(dest int) ([]float64, error) {
	if dest < 0 || dest >= g.n {
		return nil, fmt.Errorf("%w: target %d (n=%d)", ErrVertexOutOfRange, dest, g.n)
	}

	col := make([]float64, g.n)
	if g.heur != nil {
		for u := 0; u < g.n; u++ {
			col[u] = g.heur[u][dest]
		}
	}

	return col, nil
}

// HasEdge reports whether at least one arc u→v exists, regardless of weight
// (a weight-0 arc counts). O(out-degree(u)) linear scan.
func (g *Digraph) HasEdge(u, v int) (bool, error) {
	if u < 0 || u >= g.n {
		return false, fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return false, fmt.Errorf("%w: target %d (n=%d)", ErrVertexOutOfRange, v, g.n)
	}

	for a := g.adj[u]; a != nil; a = a.next {
		if a.to == v {
			return true, nil
		}
	}

	return false, nil
}

// OutEdges returns u's outgoing arcs in list order (most recently added
// first), parallel arcs included. The slice is a snapshot; mutating it does
// not affect the graph. O(out-degree(u)).
func (g *Digraph) OutEdges(u int) ([]Edge, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, u, g.n)
	}

	var out []Edge
	for a := g.adj[u]; a != nil; a = a.next {
		out = append(out, Edge{To: a.to, Weight: a.weight})
	}

	return out, nil
}
