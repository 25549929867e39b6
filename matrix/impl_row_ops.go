// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations (in place).
//
// Purpose:
//   - The generator set for row-echelon reduction: scale a row, swap two rows,
//     add one row into another. No elimination driver lives here.
//
// Policy:
//   - Every row index is validated first; an out-of-range index returns
//     ErrOutOfRange and leaves the matrix untouched. This is the same
//     recoverable-error contract as At/Set and Add/Multiply.
//   - The NaN/Inf policy of Set does not apply here: results follow IEEE-754.

package matrix

import "fmt"

const (
	opRowScalar   = "ApplyRowScalar"
	opRowSwap     = "ApplyRowSwap"
	opRowAddition = "ApplyRowAddition"
)

// ApplyRowScalar multiplies every entry of row by scalar, in place.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(c).
func (m *Matrix) ApplyRowScalar(row int, scalar float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRowScalar, err)
	}
	if err := ValidateRowIndex(m, row); err != nil {
		return matrixErrorf(opRowScalar, err)
	}

	r := m.data[row*m.c : (row+1)*m.c]
	for j := range r {
		r[j] *= scalar
	}

	return nil
}

// ApplyRowSwap exchanges the contents of rowA and rowB, in place.
// rowA == rowB is a valid no-op.
//
// Errors: ErrNilMatrix, ErrOutOfRange (either index).
// Complexity: O(c).
func (m *Matrix) ApplyRowSwap(rowA, rowB int) error {
	if err := m.validateRowPair(opRowSwap, rowA, rowB); err != nil {
		return err
	}
	if rowA == rowB {
		return nil
	}

	ra := m.data[rowA*m.c : (rowA+1)*m.c]
	rb := m.data[rowB*m.c : (rowB+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// ApplyRowAddition sets target[j] += source[j] for every column j, in place.
// MAIN DESCRIPTION:
//   - source is left unmodified unless target == source, in which case the
//     row is doubled (each entry is read before it is written).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (either index).
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Matrix) ApplyRowAddition(target, source int) error {
	if err := m.validateRowPair(opRowAddition, target, source); err != nil {
		return err
	}

	rt := m.data[target*m.c : (target+1)*m.c]
	rs := m.data[source*m.c : (source+1)*m.c]
	for j := range rt {
		rt[j] += rs[j]
	}

	return nil
}

// validateRowPair checks m and both row indices, tagging errors with op.
func (m *Matrix) validateRowPair(op string, a, b int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateRowIndex(m, a); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", op, a, b, err)
	}
	if err := ValidateRowIndex(m, b); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", op, a, b, err)
	}

	return nil
}
