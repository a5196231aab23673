// Package tsp - exhaustive search for the exact optimum.
//
// Vertex 0 is fixed as the start and end of every tour, which removes the n
// rotations of each cycle: the search space is the (n-1)! permutations of
// {1..n-1}, enumerated in lexicographic order. Each cycle is still visited
// once per direction, and the first optimum in lexicographic order wins.
//
// Cost: Θ((n-1)!·n). Beyond roughly 10–12 vertices the search takes minutes
// to hours, so BruteForce refuses n > Options.BruteForceLimit unless the
// caller sets Options.AllowIntractable.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspcompare/matrix"
	"github.com/katalvlaran/tspcompare/timing"
)

const methodBruteForce = "BruteForce"

// BruteForce returns a minimum-cost tour starting and ending at vertex 0.
//
// n = 1 yields the trivial tour [0, 0] with zero cost.
//
// Errors: matrix validation sentinels, ErrIntractable.
//
// Complexity: Θ((n-1)!·n) time, O(n) space. Blocks until the search completes.
func BruteForce(dist matrix.Matrix, opts Options) (Result, error) {
	d, err := loadDistances(methodBruteForce, dist)
	if err != nil {
		return Result{}, err
	}
	n := len(d)

	limit := opts.bruteForceLimit()
	if n > limit {
		if !opts.AllowIntractable {
			return Result{}, fmt.Errorf("%s: n=%d exceeds limit %d: %w", methodBruteForce, n, limit, ErrIntractable)
		}
		opts.logger().Warn("exhaustive search acknowledged beyond limit",
			"algorithm", AlgoBruteForce.String(), "vertices", n, "limit", limit,
			"permutations", factorialString(n-1))
	}

	sw := timing.Start()

	best := make([]int, n+1)
	bestCost := math.Inf(1)
	if n == 1 {
		bestCost = 0
	}

	var (
		perm = make([]int, n-1)
		last = n - 2
		cost float64
		i    int
	)
	for i = range perm {
		perm[i] = i + 1
	}
	for n > 1 {
		cost = d[0][perm[0]]
		for i = 1; i <= last; i++ {
			cost += d[perm[i-1]][perm[i]]
		}
		cost += d[perm[last]][0]

		if cost < bestCost {
			bestCost = cost
			copy(best[1:n], perm)
		}
		if !nextPermutation(perm) {
			break
		}
	}

	return Result{
		Algorithm: AlgoBruteForce,
		Tour:      best,
		Edges:     EdgesFromTour(best),
		Cost:      bestCost,
		Timing:    sw.Stop(),
	}, nil
}

// nextPermutation rearranges a into the next lexicographic permutation and
// reports whether one existed.
//
// Complexity: O(len(a)) worst case, amortized O(1).
func nextPermutation(a []int) bool {
	var i, j int
	i = len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j = len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for i, j = i+1, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}

	return true
}

// factorialString renders k! for log messages, switching to scientific
// notation once the value no longer fits comfortably in an integer.
func factorialString(k int) string {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	if f < 1e15 {
		return fmt.Sprintf("%.0f", f)
	}

	return fmt.Sprintf("%.3g", f)
}
