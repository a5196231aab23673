// Package tsp_test - benchmarks for the three solvers.
//
// Policy:
//   - Deterministic instances (seeded point sets); inputs built outside the timer.
//   - Brute force is sized to finish quickly (n=9 → 8! tours).
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspcompare/tsp"
)

func BenchmarkNearestNeighbor_n200(b *testing.B) {
	d := randomDense(b, 200, seedDet)
	opts := tsp.DefaultOptions()
	opts.StartVertex = 0

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.NearestNeighbor(d, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNearestInsertion_n100(b *testing.B) {
	d := randomDense(b, 100, seedDet)
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.NearestInsertion(d, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBruteForce_n9(b *testing.B) {
	d := randomDense(b, 9, seedDet)
	opts := tsp.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.BruteForce(d, opts); err != nil {
			b.Fatal(err)
		}
	}
}
