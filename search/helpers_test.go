// Package search_test shares graph fixtures and path validators across the
// Dijkstra, A*, and reachability test files.
package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velomir/shortpath/digraph"
)

// testingT is the surface the shared assertion helpers need, satisfied by
// both *testing.T and *rapid.T so the property tests can reuse them.
type testingT interface {
	require.TestingT
	Helper()
}

// triangle builds the documented three-vertex fixture:
// 0→1 (w=1), 1→2 (w=2), 0→2 (w=10). Shortest 0→2 is 3 via [0 1 2];
// the direct edge is a valid but longer DFS outcome.
func triangle(t *testing.T) *digraph.Digraph {
	t.Helper()

	g, err := digraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 10))

	return g
}

// requireValidPath asserts the reconstructed path starts at source, ends at
// dest, follows existing edges, and that walking it along the cheapest
// parallel edge of each hop sums to dist.
func requireValidPath(t testingT, g *digraph.Digraph, source, dest int, path []int, dist float64) {
	t.Helper()

	require.NotEmpty(t, path)
	require.Equal(t, source, path[0], "path must start at source")
	require.Equal(t, dest, path[len(path)-1], "path must end at dest")

	var sum float64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		edges, err := g.OutEdges(u)
		require.NoError(t, err)

		cheapest := math.Inf(1)
		for _, e := range edges {
			if e.To == v && e.Weight < cheapest {
				cheapest = e.Weight
			}
		}
		require.False(t, math.IsInf(cheapest, 1), "no edge %d→%d on path", u, v)
		sum += cheapest
	}
	require.InDelta(t, dist, sum, 1e-9, "cheapest-edge walk must sum to the returned distance")
}

// requireUntouchedOutputs asserts a failed call left the outputs empty.
func requireUntouchedOutputs(t testingT, visited, path []int) {
	t.Helper()
	require.Empty(t, visited)
	require.Empty(t, path)
}
