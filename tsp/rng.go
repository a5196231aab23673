// Package tsp - RNG utilities.
//
// Randomness in this package is limited to the nearest-neighbor start vertex.
// Callers normally pass an explicit *rand.Rand through Options.Rand; the
// helper below provides the fallback when they do not.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package tsp

import (
	"math/rand"
	"time"
)

// rngFromSeed returns the fallback *rand.Rand.
// Policy: seed==0 ⇒ seed from the wall clock; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}
