package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspcompare/tsp"
	"github.com/stretchr/testify/require"
)

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{2, 0, 1, 2}, 3))
	require.NoError(t, tsp.ValidateTour([]int{0, 0}, 1))

	bad := []struct {
		name string
		tour []int
		n    int
	}{
		{"zero n", []int{}, 0},
		{"short", []int{0, 1, 0}, 3},
		{"open", []int{0, 1, 2, 1}, 3},
		{"duplicate", []int{0, 1, 1, 0}, 3},
		{"out of range", []int{0, 3, 1, 0}, 3},
	}
	for _, tc := range bad {
		require.ErrorIs(t, tsp.ValidateTour(tc.tour, tc.n), tsp.ErrDimensionMismatch, tc.name)
	}
}

func TestValidateCycleEdges(t *testing.T) {
	good := []tsp.Edge{{From: 1, To: 2}, {From: 2, To: 0}, {From: 0, To: 1}}
	require.NoError(t, tsp.ValidateCycleEdges(good, 3))

	bad := map[string][]tsp.Edge{
		"count":     {{From: 0, To: 1}, {From: 1, To: 0}},
		"broken":    {{From: 0, To: 1}, {From: 2, To: 0}, {From: 1, To: 2}},
		"revisit":   {{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 0}},
		"out range": {{From: 0, To: 5}, {From: 5, To: 1}, {From: 1, To: 0}},
	}
	for name, edges := range bad {
		require.ErrorIs(t, tsp.ValidateCycleEdges(edges, 3), tsp.ErrDimensionMismatch, name)
	}
}

func TestEdgesTourRoundTrip(t *testing.T) {
	tour := []int{3, 1, 0, 2, 3}
	edges := tsp.EdgesFromTour(tour)
	require.Equal(t, []tsp.Edge{{From: 3, To: 1}, {From: 1, To: 0}, {From: 0, To: 2}, {From: 2, To: 3}}, edges)
	require.Equal(t, tour, tsp.TourFromEdges(edges))
	require.Equal(t, "3->1", edges[0].String())

	require.Nil(t, tsp.EdgesFromTour([]int{0}))
	require.Nil(t, tsp.TourFromEdges(nil))
}

func TestTourCost(t *testing.T) {
	d := denseOf(t, square10)

	c, err := tsp.TourCost(d, []int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 40.0, c)

	_, err = tsp.TourCost(d, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(d, []int{0, 9, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.EdgesCost(nil, nil)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)
}
