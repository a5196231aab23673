// Package tsp - unified dispatcher for the solvers.
//
// Solve routes a distance matrix to the algorithm named by Options.Algo. It
// adds no behavior of its own: validation, timing and error wrapping happen in
// the individual solvers so that direct calls and dispatched calls are
// indistinguishable.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspcompare/matrix"
)

// Solve runs the solver selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm for an unknown Algo, otherwise whatever the
// selected solver returns.
func Solve(dist matrix.Matrix, opts Options) (Result, error) {
	switch opts.Algo {
	case AlgoNearestNeighbor:
		return NearestNeighbor(dist, opts)
	case AlgoNearestInsertion:
		return NearestInsertion(dist, opts)
	case AlgoBruteForce:
		return BruteForce(dist, opts)
	default:
		return Result{}, fmt.Errorf("Solve: algo=%d: %w", int(opts.Algo), ErrUnsupportedAlgorithm)
	}
}
