// SPDX-License-Identifier: MIT
// Package matrix — public API predicates and facades.
//
// Purpose:
//   - Shape predicates that answer "may I call Add/Multiply?" without allocating.
//   - Thin package-level facades over the methods for call sites that read
//     better as functions (Sum(a, b) vs a.Add(b)).

package matrix

// SameDimensions reports whether a and b have the same number of rows and columns.
// Symmetric; false when either operand is nil.
// Complexity: O(1).
func SameDimensions(a, b *Matrix) bool {
	if a == nil || b == nil {
		return false
	}

	return a.r == b.r && a.c == b.c
}

// CanMultiply reports whether a × b is defined, i.e. a.Cols() == b.Rows().
// False when either operand is nil.
// Complexity: O(1).
func CanMultiply(a, b *Matrix) bool {
	if a == nil || b == nil {
		return false
	}

	return a.c == b.r
}

// Sum is a facade for a.Add(b). A nil a is reported as ErrNilMatrix.
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(b) }

// Product is a facade for a.Multiply(b).
func Product(a, b *Matrix) (*Matrix, error) { return a.Multiply(b) }
