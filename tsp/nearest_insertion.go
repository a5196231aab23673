// Package tsp - nearest-insertion cycle growing.
//
// Algorithm:
//  1. Seed with the globally closest pair (a, b): the 2-vertex cycle a→b→a,
//     cost 2·D[a][b].
//  2. While vertices remain, evaluate every (unvisited v, cycle edge u→w)
//     pair by its insertion cost D[u][v] + D[v][w] − D[u][w]; splice the
//     cheapest v between u and w and add the insertion cost.
//
// Tie-breaks (both strict "<", first encountered wins):
//   - seed: pairs scanned row-major over the upper triangle (i<j);
//   - insertion: v ascending in the outer loop, cycle edges in traversal
//     order (starting at the seed edge a→b) in the inner loop.
//
// The cycle is kept as a slice of directed edges in traversal order; the
// spliced edge is replaced in place and its successor inserted right after it.
package tsp

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/tspcompare/matrix"
	"github.com/katalvlaran/tspcompare/timing"
)

const methodNearestInsertion = "NearestInsertion"

// NearestInsertion builds a Hamiltonian cycle by repeated cheapest insertion.
//
// n < 2 has no seed edge and is rejected with ErrTooFewVertices.
//
// Complexity: O(n³) time (n insertions × n candidates × |cycle| edges), O(n) space.
func NearestInsertion(dist matrix.Matrix, opts Options) (Result, error) {
	d, err := loadDistances(methodNearestInsertion, dist)
	if err != nil {
		return Result{}, err
	}
	n := len(d)
	if n < 2 {
		return Result{}, fmt.Errorf("%s: n=%d, need a seed pair: %w", methodNearestInsertion, n, ErrTooFewVertices)
	}

	sw := timing.Start()

	// Stage 1: seed edge.
	var (
		a, b    = -1, -1
		seedW   = math.Inf(1)
		i, j    int
		visited = make([]bool, n)
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if d[i][j] < seedW {
				a, b, seedW = i, j, d[i][j]
			}
		}
	}
	visited[a], visited[b] = true, true

	cycle := make([]Edge, 0, n)
	cycle = append(cycle, Edge{From: a, To: b}, Edge{From: b, To: a})
	cost := 2 * seedW

	// Stage 2: cheapest insertion until every vertex is on the cycle.
	var (
		bestV, bestPos int
		bestInc, inc   float64
		v, p           int
		e              Edge
	)
	for len(cycle) < n {
		bestV, bestPos, bestInc = -1, -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			for p, e = range cycle {
				inc = d[e.From][v] + d[v][e.To] - d[e.From][e.To]
				if inc < bestInc {
					bestV, bestPos, bestInc = v, p, inc
				}
			}
		}

		e = cycle[bestPos]
		cycle[bestPos] = Edge{From: e.From, To: bestV}
		cycle = slices.Insert(cycle, bestPos+1, Edge{From: bestV, To: e.To})
		visited[bestV] = true
		cost += bestInc
	}

	return Result{
		Algorithm: AlgoNearestInsertion,
		Tour:      TourFromEdges(cycle),
		Edges:     cycle,
		Cost:      cost,
		Timing:    sw.Stop(),
	}, nil
}
