// Package tsp_test provides runnable, deterministic examples that demonstrate
// how to solve a small Euclidean instance with each solver. Each example
// prints a tour and cost with a stable // Output: block.
//
// Contents:
//  1. ExampleNearestNeighbor   (fixed start, n=4)
//  2. ExampleNearestInsertion  (n=4)
//  3. ExampleBruteForce        (exact, n=4)
//  4. ExampleSolve             (dispatcher, generated instance)
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tspcompare/matrix"
	"github.com/katalvlaran/tspcompare/pointset"
	"github.com/katalvlaran/tspcompare/tsp"
)

// exampleSquare returns the distance matrix of a 10×10 square.
func exampleSquare() *matrix.Dense {
	d, err := matrix.Euclidean([]pointset.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}})
	if err != nil {
		panic(err)
	}

	return d
}

func ExampleNearestNeighbor() {
	opts := tsp.DefaultOptions()
	opts.StartVertex = 0

	res, err := tsp.NearestNeighbor(exampleSquare(), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("tour=%v cost=%.2f\n", res.Tour, res.Cost)
	// Output:
	// tour=[0 1 2 3 0] cost=40.00
}

func ExampleNearestInsertion() {
	res, err := tsp.NearestInsertion(exampleSquare(), tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("edges=%v\n", res.Edges)
	fmt.Printf("tour=%v cost=%.2f\n", res.Tour, res.Cost)
	// Output:
	// edges=[0->3 3->2 2->1 1->0]
	// tour=[0 3 2 1 0] cost=40.00
}

func ExampleBruteForce() {
	res, err := tsp.BruteForce(exampleSquare(), tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("tour=%v cost=%.2f\n", res.Tour, res.Cost)
	// Output:
	// tour=[0 1 2 3 0] cost=40.00
}

func ExampleSolve() {
	pts, err := pointset.Generate(8, pointset.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dist, err := matrix.Euclidean(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := tsp.DefaultOptions()
	opts.StartVertex = 0

	var costs [3]float64
	for i, algo := range []tsp.Algorithm{tsp.AlgoNearestNeighbor, tsp.AlgoNearestInsertion, tsp.AlgoBruteForce} {
		opts.Algo = algo
		res, err := tsp.Solve(dist, opts)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		costs[i] = res.Cost
	}
	fmt.Println("exact tour is no longer than either heuristic:",
		costs[2] <= costs[0]+1e-9 && costs[2] <= costs[1]+1e-9)
	// Output:
	// exact tour is no longer than either heuristic: true
}
