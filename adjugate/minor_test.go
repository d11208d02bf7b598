// SPDX-License-Identifier: MIT
package adjugate_test

import (
	"testing"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

func TestMinor_PreservesOrder(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	got, err := adjugate.Minor(m, 1, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {7, 9}}, got.ToRows())

	got, err = adjugate.Minor(m, 0, 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 5}, {7, 8}}, got.ToRows())

	// Input untouched.
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m.ToRows())
}

func TestMinor_Errors(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := adjugate.Minor(m, 2, 0)
	require.ErrorIs(t, err, adjugate.ErrInvalidIndex)
	_, err = adjugate.Minor(m, 0, -1)
	require.ErrorIs(t, err, adjugate.ErrInvalidIndex)

	one := mustRows(t, [][]float64{{5}})
	_, err = adjugate.Minor(one, 0, 0)
	require.ErrorIs(t, err, adjugate.ErrTooSmall)

	rect := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = adjugate.Minor(rect, 0, 0)
	require.ErrorIs(t, err, adjugate.ErrNonSquare)

	_, err = adjugate.Minor(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMinor_GenericMatrix(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	got, err := adjugate.Minor(hide{m}, 0, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3}}, got.ToRows())
}
