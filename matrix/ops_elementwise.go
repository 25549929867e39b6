// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons.
//
// Equals is the exact contract: bit-for-bit float64 equality, so NaN never
// equals anything (a NaN-bearing matrix is not equal to itself). EqualApprox
// is the tolerance-based companion for results that went through rounding.
// Tests use Equals for integer-valued fixtures and EqualApprox otherwise.

package matrix

import "gonum.org/v1/gonum/floats/scalar"

// Equals reports whether m and other have the same shape and identical entries
// under exact float64 comparison.
// A nil operand compares unequal to everything, including another nil.
// Complexity: O(r*c), early exit on the first differing entry.
func (m *Matrix) Equals(other *Matrix) bool {
	if !SameDimensions(m, other) {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether m and other have the same shape and every pair of
// entries is within the configured absolute or relative tolerance
// (see WithTolerance; defaults DefaultAbsTol/DefaultRelTol).
//
// Behavior highlights:
//   - +Inf matches +Inf and -Inf matches -Inf; NaN matches nothing.
//   - Shape mismatch or a nil operand yields false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) EqualApprox(other *Matrix, opts ...Option) bool {
	if !SameDimensions(m, other) {
		return false
	}
	o := gatherOptions(opts...)
	for idx := range m.data {
		if !scalar.EqualWithinAbsOrRel(m.data[idx], other.data[idx], o.absTol, o.relTol) {
			return false
		}
	}

	return true
}
