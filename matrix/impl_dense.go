// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep the shape derived from the supplied grid; New is the only path to a populated Matrix.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; NewZeros: O(r*c) zero-init; At/Set: O(1); Clone/Values: O(r*c).

package matrix

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"
	ctxZeros = "NewZeros"
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRow   = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = "  "
	_fmtRowClose = "\n"
	_fmtNil      = "<nil>"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Output shape: "Matrix.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense rectangular matrix of float64 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (carried over from New's options).
//
// Fields are unexported: shape comes from a validated constructor (or is the
// 0×0 zero value), so len(data) == r*c always holds. Each Matrix exclusively
// owns its buffer.
type Matrix struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard for Set
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a Matrix from a row-major grid, deriving rows and cols from it.
// MAIN DESCRIPTION:
//   - The single validated constructor for caller-supplied data.
//
// Implementation:
//   - Stage 1: resolve options and validate the grid (non-empty, rectangular, finite if requested).
//   - Stage 2: copy rows into a fresh flat buffer.
//
// Behavior highlights:
//   - The caller's slices are never retained; later edits to values do not leak in.
//
// Errors:
//   - ErrBadShape (no rows or empty first row), ErrRaggedRows, ErrNaNInf (under WithValidateNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(values [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	rows, cols, err := validateGrid(values, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		copy(buf[i*cols:(i+1)*cols], values[i])
	}

	return &Matrix{r: rows, c: cols, data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// NewZeros creates a rows×cols zero matrix.
// Errors: ErrBadShape when rows <= 0, cols <= 0, or rows*cols overflows int.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || cols > math.MaxInt/rows {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxZeros, rows, cols, ErrBadShape)
	}
	o := gatherOptions(opts...)

	return &Matrix{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	id, err := NewZeros(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// Rows returns the row count (0 for a nil matrix).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil matrix).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns a bare ErrNilMatrix or ErrOutOfRange; public methods wrap it with coordinates.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with the optional finite-only policy chosen at construction.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNaNInf(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Matrix) Row(i int) ([]float64, error) {
	if _, err := m.indexOf(i, 0); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns a deep copy of the matrix as a row-major grid (nil for a nil matrix).
// Complexity: O(r*c).
func (m *Matrix) Values() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy). Clone of nil is nil.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String renders the matrix one row per line, entries separated by two spaces,
// each entry in its shortest round-trip decimal form.
//
// Example: [[2,3],[4,5]] renders as "2  3\n4  5\n".
//
// A nil matrix renders as "<nil>", matching fmt's rendering of nil pointers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix) String() string {
	if m == nil {
		return _fmtNil
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Fprint writes String() to w.
func (m *Matrix) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, m.String())

	return err
}

// Print writes the matrix to standard output.
// Write errors on stdout are ignored; use Fprint to observe them.
func (m *Matrix) Print() {
	_ = m.Fprint(os.Stdout)
}
