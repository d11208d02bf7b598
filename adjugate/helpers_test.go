// SPDX-License-Identifier: MIT
// Package adjugate_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the engine tests.

package adjugate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to mask its concrete type and force the copy path.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity returns I_n.
func mustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// randomDiagDominant fills an n×n matrix with values in [-1,1) and adds n
// to the diagonal, which keeps it comfortably invertible.
func randomDiagDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// requireClose asserts AllClose(a, b) with an absolute tolerance.
func requireClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// MustCell reads (i,j) or fails the test.
func MustCell(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
