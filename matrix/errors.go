// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No exported operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with
// fmt.Errorf("<tag>: %w", ErrX); callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested or supplied shape is empty
	// (no rows, no columns, or non-positive dimensions).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows is returned when the supplied grid has rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Indexers (At/Set/Row) and row operations return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned by Add when the operands differ in shape.
	ErrDimensionMismatch = errors.New("matrix: invalid addition: dimension mismatch")

	// ErrIncompatibleShape is returned by Multiply when the left operand's
	// column count differs from the right operand's row count.
	ErrIncompatibleShape = errors.New("matrix: invalid multiplication: incompatible shape")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the finite-only policy is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
