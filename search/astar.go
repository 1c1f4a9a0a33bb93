package search

import "github.com/velomir/shortpath/digraph"

// ShortestPathHeuristic runs A* from source toward dest on g: Dijkstra
// guided by the graph's heuristic table, ordering the heap by
// dist[v] + heur[v][dest] instead of dist[v] alone. Outputs and the
// unreachable (+Inf, empty path) behavior match ShortestPath.
//
// Preconditions on the caller-supplied heuristic, never verified at
// runtime: it must be admissible (heur[v][dest] never overestimates the
// true distance from v to dest) and consistent. Under those the returned
// distance is exact and typically found with fewer finalized vertices than
// unguided Dijkstra. Under an inconsistent heuristic the returned distance
// is possibly suboptimal — finalized vertices are never reopened. With no
// table set the heuristic reads as all zeros and this is exactly Dijkstra.
//
// Complexity: O((V + E) log V) time, O(V) space beyond the graph.
func ShortestPathHeuristic(g *digraph.Digraph, source, dest int, visited, path *[]int) (float64, error) {
	if err := validate(g, source, dest, visited, path); err != nil {
		return 0, err
	}

	heurTo, err := g.HeuristicsTo(dest)
	if err != nil {
		return 0, err
	}

	r, err := newRunner(g, source, dest, heurTo)
	if err != nil {
		return 0, err
	}

	return r.run(visited, path)
}
