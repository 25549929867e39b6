// Package matrix_test contains unit tests for construction, accessors and
// rendering of Matrix.
package matrix_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDerivesShape verifies that rows and cols come from the grid.
func TestNewDerivesShape(t *testing.T) {
	m := m3(t)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	r, c := m4(t).Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 1, c)
}

// TestNewRejectsBadGrids covers empty, column-less and ragged input.
func TestNewRejectsBadGrids(t *testing.T) {
	_, err := matrix.New(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New([][]float64{})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New([][]float64{{}, {}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	require.Contains(t, err.Error(), "row 1")

	_, err = matrix.New([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestNewCopiesInput ensures the caller's grid is not aliased.
func TestNewCopiesInput(t *testing.T) {
	grid := [][]float64{{1, 2}, {3, 4}}
	m := MustNew(t, grid)

	grid[0][0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	out := m.Values()
	out[1][1] = -7
	RequireValues(t, [][]float64{{1, 2}, {3, 4}}, m)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 42
	RequireValues(t, [][]float64{{1, 2}, {3, 4}}, m)
}

// TestNewNaNInfPolicy checks the opt-in finite-only ingestion policy.
func TestNewNaNInfPolicy(t *testing.T) {
	grid := [][]float64{{1, math.NaN()}, {math.Inf(1), 0}}

	_, err := matrix.New(grid)
	require.NoError(t, err, "default policy stores NaN/Inf")

	_, err = matrix.New(grid, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.New(grid, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err, "last option wins")

	m := MustNew(t, [][]float64{{1}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Clone().Set(0, 0, math.NaN()), matrix.ErrNaNInf, "Clone keeps the policy")
}

// TestNewZerosAndIdentity covers the fixed-shape constructors.
func TestNewZerosAndIdentity(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	RequireValues(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	_, err = matrix.NewZeros(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewZeros(3, -1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	RequireValues(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// rows*cols must fit in int
	_, err = matrix.NewZeros(math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewZeros(2, math.MaxInt/2+1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewIdentity(math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSetOutOfRange ensures indexers return ErrOutOfRange rather than panic.
func TestAtSetOutOfRange(t *testing.T) {
	m := m1(t)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 9))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := m1(t)
	c := m.Clone()
	require.True(t, c.Equals(m))

	require.NoError(t, c.Set(0, 0, 3))
	RequireValues(t, [][]float64{{2, 3}, {4, 5}}, m)
	RequireValues(t, [][]float64{{3, 3}, {4, 5}}, c)
}

// TestStringOutput checks the two-space separated, one-row-per-line rendering.
func TestStringOutput(t *testing.T) {
	require.Equal(t, "2  3\n4  5\n", m1(t).String())
	require.Equal(t, "4\n3\n5\n", m4(t).String())

	m := MustNew(t, [][]float64{{0.1, -2.5, 1e21}, {math.NaN(), math.Inf(1), math.Inf(-1)}})
	require.Equal(t, "0.1  -2.5  1e+21\nNaN  +Inf  -Inf\n", m.String())

	var buf bytes.Buffer
	require.NoError(t, m2(t).Fprint(&buf))
	require.Equal(t, "-5  2\n5  -1\n", buf.String())
}

// TestNilMatrixIsSafe ensures a nil receiver yields errors or zero values, never a panic.
func TestNilMatrixIsSafe(t *testing.T) {
	var m *matrix.Matrix

	require.NotPanics(t, func() {
		require.Zero(t, m.Rows())
		require.Zero(t, m.Cols())
		r, c := m.Shape()
		require.Zero(t, r+c)

		_, err := m.At(0, 0)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
		_, err = m.Row(0)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)

		require.Nil(t, m.Values())
		require.Nil(t, m.Clone())
		require.Equal(t, "<nil>", m.String())

		var buf bytes.Buffer
		require.NoError(t, m.Fprint(&buf))
		require.Equal(t, "<nil>", buf.String())

		gr, gc := m.ToGonum().Dims()
		require.Zero(t, gr+gc)
	})
}
