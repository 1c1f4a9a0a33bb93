package search

import "github.com/velomir/shortpath/digraph"

// ShortestPath runs Dijkstra's algorithm from source toward dest on g and
// returns the exact shortest distance, or +Inf when dest is unreachable.
// Vertices are appended to *visited in the order they are finalized
// (extracted from the heap); the source→dest path witnessing the returned
// distance is appended to *path (empty when unreachable).
//
// Exactness relies on every edge weight being non-negative: a vertex is
// only extracted once its true shortest distance is known.
//
// visited and path must be non-nil pointers to empty slices; they are left
// untouched when an error is returned.
//
// Complexity: O((V + E) log V) time, O(V) space beyond the graph.
func ShortestPath(g *digraph.Digraph, source, dest int, visited, path *[]int) (float64, error) {
	if err := validate(g, source, dest, visited, path); err != nil {
		return 0, err
	}

	r, err := newRunner(g, source, dest, nil)
	if err != nil {
		return 0, err
	}

	return r.run(visited, path)
}
