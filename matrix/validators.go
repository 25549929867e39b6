// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep kernels minimal by delegating nil/shape/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
//
// Errors: ErrNilMatrix, ErrIncompatibleShape.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return fmt.Errorf("ValidateMulCompatible: %dx%d * %dx%d: %w", a.r, a.c, b.r, b.c, ErrIncompatibleShape)
	}

	return nil
}

// ValidateRowIndex ensures m is non-nil and 0 ≤ row < m.Rows().
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func ValidateRowIndex(m *Matrix, row int) error {
	if m == nil {
		return validatorErrorf("ValidateRowIndex", ErrNilMatrix)
	}
	if row < 0 || row >= m.r {
		return fmt.Errorf("ValidateRowIndex: row %d of %d: %w", row, m.r, ErrOutOfRange)
	}

	return nil
}

// validateGrid checks that values is a non-empty rectangular grid and, when
// finiteOnly is set, that every entry is finite. It returns the derived shape.
//
// Errors: ErrBadShape, ErrRaggedRows, ErrNaNInf.
// Complexity: O(r*c) when finiteOnly, O(r) otherwise.
func validateGrid(values [][]float64, finiteOnly bool) (rows, cols int, err error) {
	rows = len(values)
	if rows == 0 {
		return 0, 0, validatorErrorf("validateGrid: no rows", ErrBadShape)
	}
	cols = len(values[0])
	if cols == 0 {
		return 0, 0, validatorErrorf("validateGrid: no columns", ErrBadShape)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		if len(values[i]) != cols {
			return 0, 0, fmt.Errorf("validateGrid: row %d has %d entries, want %d: %w",
				i, len(values[i]), cols, ErrRaggedRows)
		}
		if !finiteOnly {
			continue
		}
		for j = 0; j < cols; j++ {
			if isNaNInf(values[i][j]) {
				return 0, 0, fmt.Errorf("validateGrid: (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return rows, cols, nil
}

// isNaNInf reports whether v is NaN or ±Inf.
func isNaNInf(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
