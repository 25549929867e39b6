// Package lvmat is a small dense-matrix toolkit: a rectangular float64 matrix
// with equality tests, addition, multiplication and the elementary row
// operations used by Gaussian elimination.
//
// Under the hood, everything is organized as:
//
//	matrix/     — the Matrix type: construction, predicates, Add/Multiply,
//	              ApplyRowScalar/ApplyRowSwap/ApplyRowAddition, printing, gonum interop
//	cmd/lvmat/  — a driver that builds sample matrices and prints them
//
// Quick example:
//
//	a, _ := matrix.New([][]float64{{2, 3}, {4, 5}})
//	b, _ := matrix.New([][]float64{{-5, 2}, {5, -1}})
//	p, err := a.Multiply(b) // [[5 1] [5 3]]
//	if err != nil {
//		// errors.Is(err, matrix.ErrIncompatibleShape)
//	}
//	p.Print()
//
// Not included: determinants, inverses, decompositions, pivoting, sparse storage.
package lvmat
