package build

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/velomir/shortpath/digraph"
)

// Path builds the chain 0→1→…→n-1 with every edge weighing w.
// Requires n ≥ 2.
func Path(n int, w float64) (*digraph.Digraph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d, need at least 2", ErrTooFewVertices, n)
	}

	g, err := digraph.New(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i-1, i, w); err != nil {
			return nil, fmt.Errorf("build: Path edge %d→%d: %w", i-1, i, err)
		}
	}

	return g, nil
}

// Cycle builds the directed cycle 0→1→…→n-1→0 with every edge weighing w.
// Requires n ≥ 3.
func Cycle(n int, w float64) (*digraph.Digraph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: n=%d, need at least 3", ErrTooFewVertices, n)
	}

	g, err := Path(n, w)
	if err != nil {
		return nil, err
	}
	if err = g.AddEdge(n-1, 0, w); err != nil {
		return nil, fmt.Errorf("build: Cycle closing edge %d→0: %w", n-1, err)
	}

	return g, nil
}

// Complete builds the complete digraph on n vertices: one edge u→v for
// every ordered pair u ≠ v, weighted by weight(u, v). Edges are emitted in
// ascending (u, v) order. Requires n ≥ 1 and a non-nil weight function.
func Complete(n int, weight WeightFunc) (*digraph.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d, need at least 1", ErrTooFewVertices, n)
	}
	if weight == nil {
		return nil, ErrNilWeightFunc
	}

	g, err := digraph.New(n)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if err = g.AddEdge(u, v, weight(u, v)); err != nil {
				return nil, fmt.Errorf("build: Complete edge %d→%d: %w", u, v, err)
			}
		}
	}

	return g, nil
}

// Grid builds a rows×cols 4-connected lattice: cell (r, c) is vertex
// r*cols + c, and every pair of orthogonal neighbors is joined by arcs in
// both directions, each weighing w. With heuristic set, the heuristic table
// is filled with Manhattan distance times w — on a uniform grid that never
// overestimates and is consistent, so A* stays exact on it.
// Requires rows ≥ 1, cols ≥ 1 and w ≥ 0.
func Grid(rows, cols int, w float64, heuristic bool) (*digraph.Digraph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}

	n := rows * cols
	g, err := digraph.New(n)
	if err != nil {
		return nil, err
	}

	// Arcs to the right and down, plus their reverses, cover all neighbor
	// pairs exactly once per direction.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				if err = addBoth(g, u, u+1, w); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err = addBoth(g, u, u+cols, w); err != nil {
					return nil, err
				}
			}
		}
	}

	if heuristic {
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				manhattan := math.Abs(float64(u/cols-v/cols)) + math.Abs(float64(u%cols-v%cols))
				if err = g.SetHeuristic(u, v, manhattan*w); err != nil {
					return nil, fmt.Errorf("build: Grid heuristic (%d,%d): %w", u, v, err)
				}
			}
		}
	}

	return g, nil
}

// addBoth inserts the arc u→v and its reverse, both weighing w.
func addBoth(g *digraph.Digraph, u, v int, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("build: Grid edge %d→%d: %w", u, v, err)
	}
	if err := g.AddEdge(v, u, w); err != nil {
		return fmt.Errorf("build: Grid edge %d→%d: %w", v, u, err)
	}

	return nil
}

// RandomSparse builds an Erdős–Rényi style digraph on n vertices: each
// ordered pair u ≠ v receives an edge independently with probability p,
// weighted uniformly from [0, maxWeight). Pairs are tried in ascending
// (u, v) order from a rand.Rand seeded with seed, so a fixed seed
// reproduces the same graph. Requires n ≥ 1, 0 ≤ p ≤ 1 and maxWeight > 0.
func RandomSparse(n int, p, maxWeight float64, seed int64) (*digraph.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d, need at least 1", ErrTooFewVertices, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%g", ErrInvalidProbability, p)
	}
	if maxWeight <= 0 {
		return nil, fmt.Errorf("%w: maxWeight=%g", ErrBadWeightLimit, maxWeight)
	}

	g, err := digraph.New(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || rng.Float64() >= p {
				continue
			}
			if err = g.AddEdge(u, v, rng.Float64()*maxWeight); err != nil {
				return nil, fmt.Errorf("build: RandomSparse edge %d→%d: %w", u, v, err)
			}
		}
	}

	return g, nil
}
