// Package matrix provides a dense, row-major matrix of float64 values and the
// elementary algebra on it.
//
// The matrix package provides:
//
//   - A single validated constructor (New) that derives the shape from a
//     rectangular grid and copies it; NewZeros and NewIdentity for fixed shapes.
//   - Shape predicates (SameDimensions, CanMultiply) and exact (Equals) or
//     tolerance-based (EqualApprox) comparison.
//   - Add and Multiply, returning fresh matrices or a wrapped ErrDimensionMismatch /
//     ErrIncompatibleShape.
//   - The elementary row operations used by Gaussian elimination, applied in
//     place: ApplyRowScalar, ApplyRowSwap, ApplyRowAddition.
//   - Text rendering (String, Fprint, Print) and copies to/from gonum's mat.Dense.
//
// Errors are sentinels matched with errors.Is; no exported function panics on
// bad input, including a nil *Matrix: error-returning methods report
// ErrNilMatrix, and the rest return zero values (Rows 0, Clone nil, String "<nil>").
// Matrices are not safe for concurrent mutation.
package matrix
