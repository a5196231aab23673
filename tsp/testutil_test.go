// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspcompare/matrix"
	"github.com/katalvlaran/tspcompare/pointset"
	"github.com/katalvlaran/tspcompare/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsCost is the tolerance for comparing an accumulated cost with a recomputed one.
	epsCost = 1e-9

	// seedDet is a deterministic seed for instance generation.
	seedDet = int64(20)
)

// square10 is the unit square scaled by 10, in cyclic order.
var square10 = []pointset.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

// denseOf builds a Euclidean matrix from pts, failing the test on error.
func denseOf(t testing.TB, pts []pointset.Point) *matrix.Dense {
	t.Helper()
	d, err := matrix.Euclidean(pts)
	require.NoError(t, err)

	return d
}

// randomDense generates n random points with the given seed and returns their matrix.
func randomDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	pts, err := pointset.Generate(n, pointset.WithSeed(seed))
	require.NoError(t, err)

	return denseOf(t, pts)
}

// rowsDense builds a Dense from explicit rows.
func rowsDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}

	return d
}

// requireValidResult asserts the Result invariants shared by every solver.
func requireValidResult(t *testing.T, dist matrix.Matrix, res tsp.Result, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, n))
	require.NoError(t, tsp.ValidateCycleEdges(res.Edges, n))
	require.Equal(t, res.Tour, tsp.TourFromEdges(res.Edges))

	fromTour, err := tsp.TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.InDelta(t, fromTour, res.Cost, epsCost)

	fromEdges, err := tsp.EdgesCost(dist, res.Edges)
	require.NoError(t, err)
	require.InDelta(t, fromEdges, res.Cost, epsCost)
}

// isSquareCycle reports whether a closed tour over square10 walks the perimeter.
func isSquareCycle(tour []int) bool {
	if len(tour) != 5 {
		return false
	}
	for i := 0; i < 4; i++ {
		diff := (tour[i+1] - tour[i] + 4) % 4
		if diff != 1 && diff != 3 {
			return false
		}
	}

	return true
}

// lineDense places n points on a horizontal line 10 apart; the optimal tour
// walks out and back and costs 2·10·(n-1).
func lineDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	pts := make([]pointset.Point, n)
	for i := range pts {
		pts[i] = pointset.Point{X: 10 * i, Y: 0}
	}

	return denseOf(t, pts)
}
