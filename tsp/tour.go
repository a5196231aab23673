// Package tsp - tour utilities shared by all solvers.
//
// This file contains helpers that operate purely on tour structure (index
// sequences and directed edge lists), without depending on distance matrices:
//   - ValidateTour: enforce Hamiltonian cycle invariants on a closed sequence.
//   - ValidateCycleEdges: the same invariants on a traversal-ordered edge list.
//   - EdgesFromTour / TourFromEdges: convert between the two representations.
//
// Design:
//   - No logging, no panics on user input only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import "fmt"

// ValidateTour checks that tour is a closed Hamiltonian cycle over {0..n-1}:
// len(tour) == n+1, tour[0] == tour[n], and tour[0:n] is a permutation.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateCycleEdges checks that edges are n directed edges forming a single
// cycle that leaves every vertex of {0..n-1} exactly once, listed in traversal
// order (edges[k].To == edges[k+1].From, wrapping around).
//
// Complexity: O(n) time, O(n) space.
func ValidateCycleEdges(edges []Edge, n int) error {
	if n <= 0 || len(edges) != n {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		k    int
		e    Edge
	)
	for k, e = range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return ErrDimensionMismatch
		}
		if seen[e.From] {
			return ErrDimensionMismatch
		}
		seen[e.From] = true
		if e.To != edges[(k+1)%n].From {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// EdgesFromTour lists the directed edges tour[i]→tour[i+1] of a closed tour.
// A tour of length L yields L-1 edges; nil or single-element input yields nil.
//
// Complexity: O(n).
func EdgesFromTour(tour []int) []Edge {
	if len(tour) < 2 {
		return nil
	}
	edges := make([]Edge, len(tour)-1)
	for i := range edges {
		edges[i] = Edge{From: tour[i], To: tour[i+1]}
	}

	return edges
}

// TourFromEdges turns a traversal-ordered edge list into a closed tour that
// starts at edges[0].From. It trusts the ordering; use ValidateCycleEdges first
// for untrusted input.
//
// Complexity: O(n).
func TourFromEdges(edges []Edge) []int {
	if len(edges) == 0 {
		return nil
	}
	tour := make([]int, len(edges)+1)
	for i, e := range edges {
		tour[i] = e.From
	}
	tour[len(edges)] = edges[0].From

	return tour
}

// String renders an edge as "u->v".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.From, e.To)
}
