// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel and row-operation tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew builds a Matrix from a literal grid or fails the test.
func MustNew(t *testing.T, values [][]float64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(values, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", values, err)
	}

	return m
}

// RequireValues asserts the full grid of m equals want (exact comparison).
func RequireValues(t *testing.T, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.Values())
}

// RandomMatrix FILLS an r×c matrix with values in [-1, 1) from a seeded source.
// Deterministic for a fixed seed.
func RandomMatrix(t *testing.T, r, c int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			grid[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustNew(t, grid)
}

// Fixtures shared across files: two 2×2 matrices, a 3×3 and a 3×1 column.

func m1(t *testing.T) *matrix.Matrix {
	return MustNew(t, [][]float64{{2, 3}, {4, 5}})
}

func m2(t *testing.T) *matrix.Matrix {
	return MustNew(t, [][]float64{{-5, 2}, {5, -1}})
}

func m3(t *testing.T) *matrix.Matrix {
	return MustNew(t, [][]float64{{4, 3, 8}, {-1, 0, 3}, {5, -7, -4}})
}

func m4(t *testing.T) *matrix.Matrix {
	return MustNew(t, [][]float64{{4}, {3}, {5}})
}
