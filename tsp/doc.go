// Package tsp provides baseline Travelling Salesman Problem solvers for
// symmetric distance matrices.
//
// It includes three algorithms on a matrix.Matrix:
//
//   - NearestNeighbor - greedy nearest-unvisited walk from a start vertex.
//
//   - Complexity: O(n²)
//
//   - NearestInsertion - grows a cycle from the closest pair by cheapest insertion.
//
//   - Complexity: O(n³)
//
//   - BruteForce - exact search over all (n-1)! tours with vertex 0 fixed.
//
//   - Complexity: Θ((n-1)!·n); guarded by Options.BruteForceLimit.
//
// Every solver returns a Result with the closed tour (len n+1, first == last),
// its directed edges in traversal order, the total cost and a timing.Measurement
// that brackets the core loop only. Solve dispatches on Options.Algo.
//
// Input matrices must be square, finite, non-negative, symmetric and have a
// zero diagonal; violations are reported with the sentinels in types.go.
//
// Tie-breaks are deterministic and documented on each solver: the first
// candidate in scan order wins among equals.
package tsp
