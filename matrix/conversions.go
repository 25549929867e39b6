// SPDX-License-Identifier: MIT
// Package matrix: conversions to and from gonum dense matrices.
//
// Both directions copy; neither side aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxFromGonum = "FromGonum"

// ToGonum copies m into a new *mat.Dense of the same shape.
// The zero-value Matrix (0×0) and a nil Matrix map to an empty mat.Dense.
// Complexity: O(r*c).
func (m *Matrix) ToGonum() *mat.Dense {
	if m == nil || m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum copies any gonum matrix into a new Matrix.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrBadShape when src has no rows or columns (e.g. a zero-value mat.Dense).
//   - ErrNaNInf for non-finite entries under WithValidateNaNInf.
//
// Complexity: O(r*c) reads through src.At.
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", ctxFromGonum, r, c, ErrBadShape)
	}

	m, err := NewZeros(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(ctxFromGonum, err)
			}
		}
	}

	return m, nil
}
