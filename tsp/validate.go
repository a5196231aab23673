// Package tsp - validation utilities shared by all solvers.
//
// This file contains small helpers that:
//  1. Validate distance matrices (shape, diagonal, negativity, ∞/NaN, symmetry).
//  2. Load a validated matrix into plain row slices for the hot loops.
//  3. Resolve the start vertex.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspcompare/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks in matrices.
const symTol = 1e-12

// loadDistances validates dist and copies it into row slices.
//
// Contract:
//   - dist must be non-nil, square, n ≥ 1.
//   - every entry finite and ≥ 0, diagonal zero, symmetric within symTol.
//
// Complexity: O(n²) time and space.
func loadDistances(method string, dist matrix.Matrix) ([][]float64, error) {
	if dist == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilMatrix)
	}
	if d, ok := dist.(*matrix.Dense); ok && d == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilMatrix)
	}

	n := dist.Rows()
	if n != dist.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", method, n, dist.Cols(), ErrNonSquare)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrTooFewVertices)
	}

	rows, err := copyRows(dist, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, fmt.Errorf("%s: D[%d][%d]=%v: %w", method, i, j, v, ErrInvalidWeight)
			}
		}
		if math.Abs(rows[i][i]) > symTol {
			return nil, fmt.Errorf("%s: D[%d][%d]=%v: %w", method, i, i, rows[i][i], ErrNonZeroDiagonal)
		}
		for j = i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > symTol {
				return nil, fmt.Errorf("%s: D[%d][%d]!=D[%d][%d]: %w", method, i, j, j, i, ErrAsymmetric)
			}
		}
	}

	return rows, nil
}

// copyRows reads dist into [][]float64, using the Dense row fast path when possible.
func copyRows(dist matrix.Matrix, n int) ([][]float64, error) {
	var (
		rows = make([][]float64, n)
		i, j int
		err  error
	)
	if d, ok := dist.(*matrix.Dense); ok {
		for i = 0; i < n; i++ {
			if rows[i], err = d.Row(i); err != nil {
				return nil, err
			}
		}

		return rows, nil
	}

	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if rows[i][j], err = dist.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return rows, nil
}

// resolveStart returns opts.StartVertex or a uniform draw when it is RandomStart.
//
// Complexity: O(1).
func resolveStart(n int, opts Options) (int, error) {
	if opts.StartVertex == RandomStart {
		r := opts.Rand
		if r == nil {
			r = rngFromSeed(opts.Seed)
		}

		return r.Intn(n), nil
	}
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return 0, ErrStartOutOfRange
	}

	return opts.StartVertex, nil
}
