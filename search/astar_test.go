// Package search_test contains unit tests for the A* entry point: the
// zero-heuristic equivalence with Dijkstra, exactness under an admissible
// consistent heuristic, guidance effects on the visit order, and the
// documented behavior under an inadmissible heuristic.
package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velomir/shortpath/build"
	"github.com/velomir/shortpath/digraph"
	"github.com/velomir/shortpath/search"
)

func TestShortestPathHeuristic_Validation(t *testing.T) {
	g := triangle(t)
	var visited, path []int

	_, err := search.ShortestPathHeuristic(nil, 0, 2, &visited, &path)
	assert.ErrorIs(t, err, search.ErrNilGraph)

	_, err = search.ShortestPathHeuristic(g, 0, 7, &visited, &path)
	assert.ErrorIs(t, err, search.ErrVertexOutOfRange)

	_, err = search.ShortestPathHeuristic(g, 0, 2, nil, &path)
	assert.ErrorIs(t, err, search.ErrNilOutput)

	dirty := []int{1}
	_, err = search.ShortestPathHeuristic(g, 0, 2, &visited, &dirty)
	assert.ErrorIs(t, err, search.ErrOutputNotEmpty)
}

func TestShortestPathHeuristic_NoTableEqualsDijkstra(t *testing.T) {
	// With no heuristic table the estimates read as zero, so A* must agree
	// with Dijkstra on distance and path.
	g := triangle(t)

	var dv, dp, av, ap []int
	want, err := search.ShortestPath(g, 0, 2, &dv, &dp)
	require.NoError(t, err)
	got, err := search.ShortestPathHeuristic(g, 0, 2, &av, &ap)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, dp, ap)
	assert.Equal(t, dv, av)
}

func TestShortestPathHeuristic_ExplicitZeroTable(t *testing.T) {
	// Explicit zeros behave identically to an absent table.
	g := triangle(t)
	for u := 0; u < 3; u++ {
		for v := 0; v < 3; v++ {
			require.NoError(t, g.SetHeuristic(u, v, 0))
		}
	}

	var visited, path []int
	dist, err := search.ShortestPathHeuristic(g, 0, 2, &visited, &path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestShortestPathHeuristic_GridExactAndGuided(t *testing.T) {
	// On a unit grid the Manhattan heuristic is admissible and consistent:
	// A* must return the exact distance, finalizing no more vertices than
	// Dijkstra needs.
	const rows, cols = 8, 8
	g, err := build.Grid(rows, cols, 1, true)
	require.NoError(t, err)

	source, dest := 0, rows*cols-1

	var dv, dp []int
	wantDist, err := search.ShortestPath(g, source, dest, &dv, &dp)
	require.NoError(t, err)

	var av, ap []int
	gotDist, err := search.ShortestPathHeuristic(g, source, dest, &av, &ap)
	require.NoError(t, err)

	assert.Equal(t, wantDist, gotDist)
	requireValidPath(t, g, source, dest, ap, gotDist)
	assert.LessOrEqual(t, len(av), len(dv),
		"an informative heuristic must not finalize more vertices than Dijkstra")
}

func TestShortestPathHeuristic_GuidanceOrdersVisits(t *testing.T) {
	// Fork: 0→1→3 and 0→2→3, equal weights. An exact estimate toward dest
	// steers the search down one branch; the decoy branch with a large
	// (but still admissible-toward-itself) estimate is never finalized.
	g, err := digraph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	// Exact remaining distances toward 3 along the 1-branch; the 2-branch
	// is made to look expensive.
	require.NoError(t, g.SetHeuristic(0, 3, 2))
	require.NoError(t, g.SetHeuristic(1, 3, 1))
	require.NoError(t, g.SetHeuristic(2, 3, 1.5))

	var visited, path []int
	dist, err := search.ShortestPathHeuristic(g, 0, 3, &visited, &path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist)
	assert.Equal(t, []int{0, 1, 3}, path)
	assert.NotContains(t, visited, 2, "the decoy branch should never be finalized")
}

func TestShortestPathHeuristic_Unreachable(t *testing.T) {
	g, err := digraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.SetHeuristic(0, 2, 5))

	var visited, path []int
	dist, err := search.ShortestPathHeuristic(g, 0, 2, &visited, &path)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))
	assert.Empty(t, path)
}

func TestShortestPathHeuristic_InadmissibleMayOvershoot(t *testing.T) {
	// An inadmissible estimate (overestimating the cheap route) can make
	// A* finalize dest via the expensive direct edge. The result is the
	// documented possibly-suboptimal-but-valid distance: a real path, just
	// not the minimum. This pins the documented precondition rather than a
	// guarantee.
	g := triangle(t)
	// True remaining distance from 1 is 2; claim 100.
	require.NoError(t, g.SetHeuristic(1, 2, 100))

	var visited, path []int
	dist, err := search.ShortestPathHeuristic(g, 0, 2, &visited, &path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, dist, "the overestimate hides the cheap route")
	assert.Equal(t, []int{0, 2}, path)
	requireValidPath(t, g, 0, 2, path, dist)
}
