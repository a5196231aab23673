// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read surface shared by every consumer of distance tables.
// Solvers depend on this interface only; *Dense is the production implementation.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange. Complexity: O(1).
	At(i, j int) (float64, error)
}
