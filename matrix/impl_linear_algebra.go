// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels: element-wise addition and
// matrix multiplication. Both validate operands fail-fast, allocate a fresh
// result and never mutate their inputs.
//
// Determinism:
//   - Fixed loop orders; products accumulate in ascending inner index k with
//     plain float64 addition (no compensated summation).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opMultiply = "Multiply"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop over both buffers.
//
// Behavior highlights:
//   - Result carries b's shape (equal to a's by precondition) and a's numeric policy.
//   - IEEE-754 propagation applies unchanged (NaN + x = NaN, +Inf + -Inf = NaN).
//   - The copied NaN/Inf policy governs later Set calls only: a result entry that
//     overflows to ±Inf, or inherits NaN, is stored as is.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (a *Matrix) Add(b *Matrix) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := &Matrix{
		r:              b.r,
		c:              b.c,
		data:           make([]float64, len(b.data)),
		validateNaNInf: a.validateNaNInf,
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Multiply performs the standard matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (a.Cols == b.Rows).
//   - Stage 2: i→k→j triple loop over row-major strides into a zeroed result.
//
// Behavior highlights:
//   - For every (i,j), C[i,j] starts at 0 (fresh buffer) and receives A[i,k]*B[k,j]
//     for k = 0,1,...,n-1 in that order, so the summation order matches the
//     textbook inner-product formula exactly.
//   - No zero-skipping: 0 * NaN and 0 * Inf must still yield NaN.
//   - Each product is rounded to float64 before it is added, so no platform
//     fuses the multiply-add into a single rounding.
//   - The result takes a's NaN/Inf policy for later Set calls; entries that
//     overflow to ±Inf or become NaN during the product are stored as is.
//
// Inputs:
//   - a: left matrix (r × n); b: right matrix (n × c).
//
// Returns:
//   - *Matrix of shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleShape.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (a *Matrix) Multiply(b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Matrix{
		r:              aRows,
		c:              bCols,
		data:           make([]float64, aRows*bCols),
		validateNaNInf: a.validateNaNInf,
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				// explicit conversion rounds the product before the add (no FMA)
				res.data[rowOffsetR+j] += float64(av * b.data[rowOffsetB+j])
			}
		}
	}

	return res, nil
}
