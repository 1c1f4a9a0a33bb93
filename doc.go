// Package shortpath is a small library for single-source shortest-path
// search over weighted directed graphs, built around an indexed binary
// min-heap with O(log n) decrease-key. Its only runtime dependency is
// the deque backing the DFS stack.
//
// What's inside:
//
//	minheap/ — the indexed min-heap: entries carry a back-pointer to
//	           their own heap slot, so DecreaseKey finds them in O(1)
//	           and re-heapifies in O(log n). This is the piece that
//	           makes label-setting search fast.
//	digraph/ — adjacency-list weighted digraph over vertices {0..n-1};
//	           parallel edges allowed, optional dense heuristic table
//	           for A*.
//	search/  — Dijkstra, A* (heuristic-guided Dijkstra), and a
//	           stack-based DFS reachability walk, all returning a
//	           distance plus visit-order and path outputs.
//	build/   — deterministic graph generators (path, cycle, complete,
//	           4-connected grid with Manhattan heuristics, seeded
//	           random sparse) used throughout tests and benchmarks.
//
// Quick taste:
//
//	g, _ := digraph.New(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 10)
//
//	var visited, path []int
//	dist, _ := search.ShortestPath(g, 0, 2, &visited, &path)
//	// dist == 3, path == [0 1 2]
//
// Everything is synchronous and allocation-scoped: a search call builds its
// own working arrays and heap, leaves the graph untouched, and returns a
// definite distance (+Inf for unreachable) or fails fast on malformed
// input. Negative edge weights, graph mutation during a search, and
// all-pairs queries are out of scope.
package shortpath
