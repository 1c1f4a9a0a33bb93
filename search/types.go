// Package search defines sentinel errors and shared validation for the
// path-search entry points.
package search

import (
	"errors"
	"fmt"

	"github.com/velomir/shortpath/digraph"
)

// Sentinel errors for search entry points. All of them signal caller
// contract violations detected before any work is done.
var (
	// ErrNilGraph indicates a nil *digraph.Digraph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrVertexOutOfRange indicates a source or destination outside [0, n).
	ErrVertexOutOfRange = errors.New("search: vertex out of range")

	// ErrNilOutput indicates a nil visited or path output pointer.
	ErrNilOutput = errors.New("search: output slice pointer is nil")

	// ErrOutputNotEmpty indicates a visited or path output that already
	// holds elements; outputs must start empty.
	ErrOutputNotEmpty = errors.New("search: output slice must be empty")
)

// none marks the absence of a predecessor in previous[].
const none = -1

// validate applies the shared entry-point contract: non-nil graph,
// in-range endpoints, non-nil and empty output slices.
func validate(g *digraph.Digraph, source, dest int, visited, path *[]int) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return fmt.Errorf("%w: source %d (n=%d)", ErrVertexOutOfRange, source, n)
	}
	if dest < 0 || dest >= n {
		return fmt.Errorf("%w: dest %d (n=%d)", ErrVertexOutOfRange, dest, n)
	}
	if visited == nil {
		return fmt.Errorf("%w: visited", ErrNilOutput)
	}
	if path == nil {
		return fmt.Errorf("%w: path", ErrNilOutput)
	}
	if len(*visited) != 0 {
		return fmt.Errorf("%w: visited has %d elements", ErrOutputNotEmpty, len(*visited))
	}
	if len(*path) != 0 {
		return fmt.Errorf("%w: path has %d elements", ErrOutputNotEmpty, len(*path))
	}

	return nil
}

// appendPath reconstructs the source→dest walk recorded in previous[] and
// appends it to *path: collect dest backward to source, then reverse.
// Callers invoke it only when dest was reached (dist[dest] finite).
func appendPath(previous []int, source, dest int, path *[]int) {
	reverse := []int{}
	for current := dest; current != source; current = previous[current] {
		reverse = append(reverse, current)
	}

	*path = append(*path, source)
	for i := len(reverse) - 1; i >= 0; i-- {
		*path = append(*path, reverse[i])
	}
}
