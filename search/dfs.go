package search

import (
	"fmt"
	"math"

	"github.com/gammazero/deque"

	"github.com/velomir/shortpath/digraph"
)

// ReachabilityPath runs a depth-first search from source toward dest on g
// and returns the length of the path it discovered, or +Inf when dest is
// unreachable. It answers "is there a path, and here is one" — the LIFO
// stack replaces the priority queue, so nothing orders exploration by
// distance and the returned length carries no shortest-path guarantee; it
// is meaningful only along the specific path appended to *path.
//
// Vertices are appended to *visited in the order they are popped from the
// stack. Outputs and the contract on them match ShortestPath.
//
// Complexity: O(V + E) time, O(V) space beyond the graph.
func ReachabilityPath(g *digraph.Digraph, source, dest int, visited, path *[]int) (float64, error) {
	if err := validate(g, source, dest, visited, path); err != nil {
		return 0, err
	}

	n := g.VertexCount()

	// closed marks fully processed vertices; inStack keeps a vertex from
	// being pushed twice while it waits to be processed.
	closed := make([]bool, n)
	inStack := make([]bool, n)

	dist := make([]float64, n)
	previous := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = math.Inf(1)
		previous[v] = none
	}
	dist[source] = 0

	var stack deque.Deque[int]
	stack.PushBack(source)
	inStack[source] = true

	for stack.Len() > 0 {
		u := stack.PopBack()
		inStack[u] = false
		closed[u] = true
		*visited = append(*visited, u)

		if u == dest {
			break
		}

		edges, err := g.OutEdges(u)
		if err != nil {
			return 0, fmt.Errorf("search: out-edges of %d: %w", u, err)
		}
		for _, e := range edges {
			if closed[e.To] {
				continue
			}

			if !inStack[e.To] {
				stack.PushBack(e.To)
				inStack[e.To] = true
			}

			// Opportunistic improvement: keep the better predecessor
			// distance for any vertex not yet closed. No guarantee follows;
			// this only keeps the reconstructed path self-consistent.
			if candidate := dist[u] + e.Weight; candidate < dist[e.To] {
				dist[e.To] = candidate
				previous[e.To] = u
			}
		}
	}

	if math.IsInf(dist[dest], 1) {
		return dist[dest], nil
	}

	appendPath(previous, source, dest, path)

	return dist[dest], nil
}
