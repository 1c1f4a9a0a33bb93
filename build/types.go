// Package build defines the weight-function type and sentinel errors for
// the graph generators.
package build

import "errors"

// WeightFunc assigns a weight to the edge u→v in generators that emit one
// edge per vertex pair. It must return non-negative values for the result
// to be usable with the search package.
type WeightFunc func(u, v int) float64

// Sentinel errors for graph generators.
var (
	// ErrTooFewVertices indicates a vertex count below the shape's minimum.
	ErrTooFewVertices = errors.New("build: too few vertices")

	// ErrNilWeightFunc indicates Complete was called with a nil WeightFunc.
	ErrNilWeightFunc = errors.New("build: weight function is nil")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("build: probability must be in [0, 1]")

	// ErrBadWeightLimit indicates a non-positive maximum weight.
	ErrBadWeightLimit = errors.New("build: weight limit must be positive")

	// ErrBadDimensions indicates a non-positive grid dimension.
	ErrBadDimensions = errors.New("build: grid dimensions must be positive")
)
