package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspcompare/pointset"
	"github.com/katalvlaran/tspcompare/tsp"
	"github.com/stretchr/testify/require"
)

func TestNearestInsertion_Square(t *testing.T) {
	d := denseOf(t, square10)

	res, err := tsp.NearestInsertion(d, tsp.DefaultOptions())
	require.NoError(t, err)
	// Seed (0,1); vertex 2 is spliced into 0→1 first, then 3 into 0→2.
	require.Equal(t, []tsp.Edge{{From: 0, To: 3}, {From: 3, To: 2}, {From: 2, To: 1}, {From: 1, To: 0}}, res.Edges)
	require.Equal(t, []int{0, 3, 2, 1, 0}, res.Tour)
	require.InDelta(t, 40.0, res.Cost, epsCost)
	require.Equal(t, tsp.AlgoNearestInsertion, res.Algorithm)
	requireValidResult(t, d, res, 4)
}

func TestNearestInsertion_SeedAndInsertionTieBreak(t *testing.T) {
	d := rowsDense(t, [][]float64{
		{0, 2, 1},
		{2, 0, 1},
		{1, 1, 0},
	})

	res, err := tsp.NearestInsertion(d, tsp.DefaultOptions())
	require.NoError(t, err)
	// (0,2) and (1,2) tie at 1; row-major scan keeps (0,2). Vertex 1 costs 2
	// on both seed edges; the first edge 0→2 wins.
	require.Equal(t, []tsp.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, res.Edges)
	require.Equal(t, 4.0, res.Cost)
}

func TestNearestInsertion_TwoVertices(t *testing.T) {
	d := denseOf(t, []pointset.Point{{X: 0, Y: 0}, {X: 3, Y: 4}})

	res, err := tsp.NearestInsertion(d, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, res.Tour)
	require.Equal(t, []tsp.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, res.Edges)
	require.Equal(t, 10.0, res.Cost)
}

func TestNearestInsertion_RejectsSingleVertex(t *testing.T) {
	d := denseOf(t, []pointset.Point{{X: 50, Y: 50}})

	_, err := tsp.NearestInsertion(d, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrTooFewVertices)
}

func TestNearestInsertion_CycleInvariants(t *testing.T) {
	for n := 2; n <= 40; n += 2 {
		d := randomDense(t, n, int64(100+n))

		res, err := tsp.NearestInsertion(d, tsp.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, res.Edges, n)
		requireValidResult(t, d, res, n)
	}
}

func TestNearestInsertion_Deterministic(t *testing.T) {
	d := randomDense(t, 25, seedDet)

	a, err := tsp.NearestInsertion(d, tsp.DefaultOptions())
	require.NoError(t, err)
	b, err := tsp.NearestInsertion(d, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, a.Edges, b.Edges)
	require.Equal(t, a.Cost, b.Cost)
}
