// Package tsp - greedy nearest-neighbor tour construction.
//
// Algorithm:
//   - Start at opts.StartVertex (or a uniform random vertex for RandomStart).
//   - Repeatedly move to the closest unvisited vertex.
//   - Close the cycle back to the start.
//
// Tie-break: candidates are scanned in ascending vertex index and replaced
// only on a strictly smaller distance, so the lowest index wins a tie.
//
// No backtracking: a locally optimal step can strand a distant vertex for
// last, so the tour is not guaranteed optimal.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspcompare/matrix"
	"github.com/katalvlaran/tspcompare/timing"
)

const methodNearestNeighbor = "NearestNeighbor"

// NearestNeighbor builds a Hamiltonian cycle greedily from a start vertex.
//
// n = 1 yields the trivial tour [v, v] with zero cost.
//
// Errors: matrix validation sentinels (see loadDistances), ErrStartOutOfRange.
//
// Complexity: O(n²) time, O(n) extra space.
func NearestNeighbor(dist matrix.Matrix, opts Options) (Result, error) {
	d, err := loadDistances(methodNearestNeighbor, dist)
	if err != nil {
		return Result{}, err
	}
	n := len(d)

	sw := timing.Start()
	start, err := resolveStart(n, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: start=%d: %w", methodNearestNeighbor, opts.StartVertex, err)
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n+1)
		cur     = start
		cost    float64
		next    int
		best    float64
		v       int
	)
	tour = append(tour, start)
	visited[start] = true

	for len(tour) < n {
		next, best = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if !visited[v] && d[cur][v] < best {
				next, best = v, d[cur][v]
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cost += best
		cur = next
	}
	cost += d[cur][start]
	tour = append(tour, start)

	return Result{
		Algorithm: AlgoNearestNeighbor,
		Tour:      tour,
		Edges:     EdgesFromTour(tour),
		Cost:      cost,
		Timing:    sw.Stop(),
	}, nil
}
