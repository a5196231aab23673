// SPDX-License-Identifier: MIT

// Package pointset generates random planar point sets for Euclidean TSP instances.
//
// A point set is a slice of integer coordinates indexed 0..n-1. Coordinates are
// drawn uniformly from an inclusive rectangular domain; the default domain is
// x ∈ [50,800], y ∈ [50,600] (see DefaultBounds).
//
// Randomness is always explicit: pass WithRand or WithSeed to control the
// stream. Without either option Generate seeds a fresh source from the wall
// clock, so two calls are not reproducible.
//
// Errors:
//   - ErrTooFewVertices: n ≤ 0 (an empty instance is rejected, not produced).
//
// Complexity: Generate runs in O(n) time and O(n) space.
package pointset
