// Package matrix provides the dense distance tables used by the TSP solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Euclidean, the builder that turns a point set into a symmetric
//     distance matrix with a zero diagonal.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal)
//     shared by every consumer that needs a well-formed instance.
//   - Edges, the undirected edge listing used by console reports.
//
// Distance matrices are O(n²) in memory, which is fine for the instance
// sizes this module targets (tens of vertices).
package matrix
