// SPDX-License-Identifier: MIT
// Package: tspcompare/pointset
//
// errors.go - sentinel errors for the pointset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w (see pointsetErrorf).
//   • Option constructors panic on meaningless values; Generate never panics.

package pointset

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the requested number of points is < 1.
var ErrTooFewVertices = errors.New("pointset: parameter too small")

// ErrInvalidBounds indicates an empty domain (min > max) or a negative corner.
var ErrInvalidBounds = errors.New("pointset: invalid bounds")

// MethodGenerate is the canonical name used to prefix Generate errors.
const MethodGenerate = "Generate"

// pointsetErrorf wraps err with the method context: "<method>: <msg>: <err>".
func pointsetErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
