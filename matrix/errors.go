// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with %w) and
// tests check them via errors.Is. No exported function panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites attach context with fmt.Errorf("ctx: %w", ErrX); callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that an empty point set was handed to a builder.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry differs from zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
