// Package tspcompare is a small laboratory for comparing Travelling Salesman
// heuristics against the exact answer on random Euclidean instances.
//
// 🚀 What is inside?
//
//	A console program plus reusable packages that bring together:
//		• Random instances: integer points in a bounding box, seeded or not
//		• Distance matrices: symmetric, zero-diagonal, row-major Dense storage
//		• Solvers: Nearest Neighbor, Nearest Insertion, Brute Force (exact)
//		• Timing: process CPU time per solver run, wall clock as fallback
//		• Reports: graph listing and per-run tour, weight and elapsed time
//
// Packages:
//
//	pointset/  - random point generation with explicit RNG ownership
//	matrix/    - Dense matrix, Euclidean builder, structural validators
//	tsp/       - the three solvers, tour helpers, dispatcher
//	timing/    - CPU/wall stopwatch
//	instance/  - point set + matrix aggregate, regenerated rather than mutated
//	report/    - locale-aware console rendering
//	cmd/tspcompare - interactive menu binary
//
// Quick example:
//
//	(0,10)───(10,10)
//	  │          │
//	(0,0) ───(10,0)
//
//	Every solver returns the perimeter 40 on this square; brute force is
//	guaranteed to, the heuristics happen to.
//
// Brute force is exponential on purpose. It refuses instances above
// tsp.DefaultBruteForceLimit vertices unless the caller acknowledges the cost.
//
//	go install github.com/katalvlaran/tspcompare/cmd/tspcompare@latest
package tspcompare
