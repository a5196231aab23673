// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/tspcompare/pointset"
)

// Edge is an undirected weighted pair with U < V.
type Edge struct {
	U, V   int
	Weight float64
}

// Euclidean builds the symmetric n×n distance matrix of pts:
// D[i][j] = D[j][i] = sqrt((xi-xj)² + (yi-yj)²), D[i][i] = 0.
//
// Only the strict upper triangle is computed; each value is mirrored so the
// result is exactly symmetric. The function is pure: the same points always
// produce a bitwise-identical matrix.
//
// Errors: ErrInvalidDimensions when pts is empty.
//
// Complexity: O(n²) time, O(n²) space.
func Euclidean(pts []pointset.Point) (*Dense, error) {
	n := len(pts)
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = math.Hypot(float64(pts[i].X-pts[j].X), float64(pts[i].Y-pts[j].Y))
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}

	return d, nil
}

// Edges lists every undirected edge of a square matrix in row-major order of
// the strict upper triangle: (0,1), (0,2), …, (n-2,n-1).
//
// Complexity: O(n²) time, n(n-1)/2 edges.
func (m *Dense) Edges() ([]Edge, error) {
	if m.r != m.c {
		return nil, validatorErrorf("Edges", ErrDimensionMismatch)
	}
	var (
		n     = m.r
		edges = make([]Edge, 0, n*(n-1)/2)
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Weight: m.data[i*n+j]})
		}
	}

	return edges, nil
}
