// SPDX-License-Identifier: MIT

package pointset

import "fmt"

// Point is an integer coordinate pair. Points are values; once generated they
// are never modified.
type Point struct {
	X, Y int
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Generate draws n points uniformly from the configured bounds.
//
// Draw order is fixed: for i = 0..n-1 the X coordinate is drawn before Y, so a
// given seed always yields the same set.
//
// Errors: ErrTooFewVertices when n < 1.
//
// Complexity: O(n) time, O(n) space.
func Generate(n int, opts ...Option) ([]Point, error) {
	if n < 1 {
		return nil, pointsetErrorf(MethodGenerate, "n=%d", ErrTooFewVertices, n)
	}
	cfg := newConfig(opts...)

	var (
		pts   = make([]Point, n)
		spanX = cfg.bounds.MaxX - cfg.bounds.MinX + 1
		spanY = cfg.bounds.MaxY - cfg.bounds.MinY + 1
		i     int
	)
	for i = 0; i < n; i++ {
		pts[i].X = cfg.bounds.MinX + cfg.rng.Intn(spanX)
		pts[i].Y = cfg.bounds.MinY + cfg.rng.Intn(spanY)
	}

	return pts, nil
}
