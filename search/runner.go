package search

import (
	"fmt"
	"math"

	"github.com/velomir/shortpath/digraph"
	"github.com/velomir/shortpath/minheap"
)

// runner holds the working state of one label-setting search (Dijkstra or
// A*). All of it is allocated per call and discarded afterward; the graph
// is read-only throughout.
type runner struct {
	g        *digraph.Digraph
	source   int
	dest     int
	dist     []float64        // best-known distance from source, +Inf initially
	previous []int            // predecessor on the best-known path, none initially
	entries  []*minheap.Entry // one entry per vertex, keyed by vertex id
	heap     *minheap.Heap
	heurTo   []float64 // heurTo[v] = estimate of dist(v, dest); nil for Dijkstra
}

// newRunner builds the initial state: dist[source]=0 and +Inf elsewhere,
// one heap entry per vertex with priority dist[v] plus the heuristic term
// when present, and a heap over all n entries.
func newRunner(g *digraph.Digraph, source, dest int, heurTo []float64) (*runner, error) {
	n := g.VertexCount()
	r := &runner{
		g:        g,
		source:   source,
		dest:     dest,
		dist:     make([]float64, n),
		previous: make([]int, n),
		entries:  make([]*minheap.Entry, n),
		heurTo:   heurTo,
	}

	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.previous[v] = none
	}
	r.dist[source] = 0
	for v := 0; v < n; v++ {
		r.entries[v] = minheap.NewEntry(v, r.priority(v, r.dist[v]))
	}

	heap, err := minheap.NewFromEntries(r.entries)
	if err != nil {
		return nil, fmt.Errorf("search: building heap: %w", err)
	}
	r.heap = heap

	return r, nil
}

// priority maps a vertex's tentative distance to its heap priority:
// the distance itself for Dijkstra, distance plus the heuristic estimate
// toward dest for A*. +Inf stays +Inf either way.
func (r *runner) priority(v int, d float64) float64 {
	if r.heurTo == nil {
		return d
	}

	return d + r.heurTo[v]
}

// run executes the main loop: extract the minimum, record it as visited,
// stop on dest, otherwise relax its outgoing arcs. The loop also stops once
// only unreachable (+Inf priority) entries remain. On success the
// source→dest path, if any, is appended to *path and dist[dest] returned.
func (r *runner) run(visited, path *[]int) (float64, error) {
	for r.heap.Size() > 0 {
		// 1) Stop when even the closest remaining vertex is unreachable.
		min, err := r.heap.PeekMin()
		if err != nil {
			return 0, fmt.Errorf("search: peek: %w", err)
		}
		if math.IsInf(min.Value(), 1) {
			break
		}

		// 2) Finalize the closest vertex.
		entry, err := r.heap.ExtractMin()
		if err != nil {
			return 0, fmt.Errorf("search: extract: %w", err)
		}
		u := entry.Key
		*visited = append(*visited, u)

		// 3) Destination reached: its label is final, reconstruct and stop.
		if u == r.dest {
			appendPath(r.previous, r.source, r.dest, path)

			return r.dist[r.dest], nil
		}

		// 4) Relax every arc out of u.
		if err = r.relax(u); err != nil {
			return 0, err
		}
	}

	// Heap exhausted (or only +Inf left) without reaching dest.
	return r.dist[r.dest], nil
}

// relax attempts to improve the label of every vertex v reachable by one
// arc from u. A strictly better candidate updates dist/previous and lowers
// v's heap priority in place via DecreaseKey — the indexed heap makes that
// O(log n) with no search.
func (r *runner) relax(u int) error {
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("search: out-edges of %d: %w", u, err)
	}

	var candidate float64
	for _, e := range edges {
		candidate = r.dist[u] + e.Weight
		if candidate >= r.dist[e.To] {
			continue
		}

		// A vertex whose entry already left the heap is final. Reaching it
		// with a better candidate is possible only under an inconsistent
		// heuristic; it is not reopened (documented as possibly-suboptimal).
		if !r.entries[e.To].InHeap() {
			continue
		}

		r.dist[e.To] = candidate
		r.previous[e.To] = u
		if err = r.heap.DecreaseKey(r.entries[e.To], r.priority(e.To, candidate)); err != nil {
			return fmt.Errorf("search: decrease-key on %d: %w", e.To, err)
		}
	}

	return nil
}
