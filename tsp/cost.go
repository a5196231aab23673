// Package tsp - cost utilities shared by all solvers and tests.
//
// These helpers recompute the weight of a tour or edge list from scratch so
// that callers can cross-check the cost a solver accumulated incrementally.
//
// Design:
//   - Generic path over matrix.Matrix; errors from At are wrapped, not swallowed.
//   - Summation follows the tour order, matching the solvers' own order.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspcompare/matrix"
)

// TourCost sums dist along tour[i]→tour[i+1].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch for tours shorter than 2 or with
// indices the matrix rejects.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	return EdgesCost(dist, EdgesFromTour(tour))
}

// EdgesCost sums dist over the given directed edges.
//
// Complexity: O(len(edges)).
func EdgesCost(dist matrix.Matrix, edges []Edge) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}

	var (
		sum float64
		w   float64
		err error
	)
	for _, e := range edges {
		if w, err = dist.At(e.From, e.To); err != nil {
			return 0, fmt.Errorf("EdgesCost(%v): %w: %w", e, ErrDimensionMismatch, err)
		}
		sum += w
	}

	return sum, nil
}
