// SPDX-License-Identifier: MIT
package adjugate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/matrix"
	"github.com/katalvlaran/cofactor/tracer"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// nanMatrix reports NaN at one cell; Dense itself refuses to store it.
type nanMatrix struct {
	matrix.Matrix
	i, j int
}

func (m nanMatrix) At(i, j int) (float64, error) {
	if i == m.i && j == m.j {
		return math.NaN(), nil
	}
	return m.Matrix.At(i, j)
}

func TestInvert_TwoByTwo(t *testing.T) {
	m := mustRows(t, [][]float64{{4, 7}, {2, 6}})

	det, err := adjugate.Determinant(m)
	require.NoError(t, err)
	require.InDelta(t, 10.0, det, eps)

	inv, err := adjugate.Invert(m)
	require.NoError(t, err)
	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	got := inv.ToRows()
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], got[i][j], eps, "cell (%d,%d)", i, j)
		}
	}
}

func TestInvert_Singular(t *testing.T) {
	cases := map[string][][]float64{
		"proportional rows": {{1, 2}, {2, 4}},
		"zero row":          {{0, 0, 0}, {1, 2, 3}, {4, 5, 6}},
		"duplicate rows":    {{1, 2, 3}, {1, 2, 3}, {4, 5, 7}},
		"zero 1x1":          {{0}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			rec := tracer.NewRecorder()
			_, err := adjugate.Invert(mustRows(t, rows), adjugate.WithTracer(rec))
			require.ErrorIs(t, err, adjugate.ErrSingular)

			var ie *adjugate.InverseError
			require.True(t, errors.As(err, &ie))
			require.True(t, ie.HasDet)
			require.InDelta(t, 0.0, ie.Determinant, eps)
			require.Contains(t, err.Error(), "det = 0")

			// Nothing past step 1 is reported.
			for _, ev := range rec.Filter(adjugate.KindHeading) {
				require.Equal(t, adjugate.StepDeterminant, ev.Step)
			}
		})
	}
}

func TestInvert_Identity(t *testing.T) {
	for n := 1; n <= 4; n++ {
		I := mustIdentity(t, n)
		inv, err := adjugate.Invert(I)
		require.NoError(t, err)
		require.Equal(t, I.ToRows(), inv.ToRows())
	}
}

func TestInvert_OneByOne(t *testing.T) {
	inv, err := adjugate.Invert(mustRows(t, [][]float64{{4}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.25}}, inv.ToRows())

	cof, err := adjugate.Cofactors(mustRows(t, [][]float64{{-3}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1}}, cof.ToRows())
}

func TestInvert_InverseProperty(t *testing.T) {
	fixed := [][][]float64{
		{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}},
		{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}},
		{{0, 2, 1, 0}, {1, 0, 0, 3}, {0, 1, 1, 1}, {2, 0, 1, 0}},
	}
	var inputs []*matrix.Dense
	for _, rows := range fixed {
		inputs = append(inputs, mustRows(t, rows))
	}
	for n, seed := 3, int64(1); n <= 6; n, seed = n+1, seed+1 {
		inputs = append(inputs, randomDiagDominant(t, n, seed))
	}

	for _, m := range inputs {
		inv, err := adjugate.Invert(m)
		require.NoError(t, err)
		I, err := matrix.IdentityLike(m)
		require.NoError(t, err)

		left, err := matrix.Mul(m, inv)
		require.NoError(t, err)
		requireClose(t, I, left, 1e-8)

		right, err := matrix.Mul(inv, m)
		require.NoError(t, err)
		requireClose(t, I, right, 1e-8)

		res, err := adjugate.Residual(m, inv)
		require.NoError(t, err)
		require.Less(t, res, 1e-8)
	}
}

func TestInvert_SnapsTinyEntriesToZero(t *testing.T) {
	m := mustRows(t, [][]float64{{1e13, 0}, {0, 1}})
	for _, s := range []adjugate.Strategy{adjugate.StrategyRecursive, adjugate.StrategyIterative} {
		inv, err := adjugate.Invert(m, adjugate.WithStrategy(s))
		require.NoError(t, err)
		// 1/1e13 falls below SnapTolerance; the off-diagonal cofactors are -0.
		require.Equal(t, [][]float64{{0, 0}, {0, 1}}, inv.ToRows())
		for _, cell := range [][2]int{{0, 0}, {0, 1}, {1, 0}} {
			v := MustCell(t, inv, cell[0], cell[1])
			require.False(t, math.Signbit(v), "cell %v is -0", cell)
		}
	}
}

func TestInvert_InputUnchanged(t *testing.T) {
	rows := [][]float64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	m := mustRows(t, rows)
	_, err := adjugate.Invert(m)
	require.NoError(t, err)
	require.Equal(t, rows, m.ToRows())
}

func TestInvert_Validation(t *testing.T) {
	_, err := adjugate.Invert(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = adjugate.Invert(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = adjugate.Invert(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, adjugate.ErrNonSquare)

	big := mustIdentity(t, 3)
	_, err = adjugate.Invert(big, adjugate.WithMaxOrder(2))
	require.ErrorIs(t, err, adjugate.ErrTooLarge)
	_, err = adjugate.Invert(big, adjugate.WithMaxOrder(3))
	require.NoError(t, err)

	bad := nanMatrix{Matrix: mustIdentity(t, 2), i: 1, j: 0}
	_, err = adjugate.Invert(bad)
	require.ErrorIs(t, err, adjugate.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestInvert_GenericMatrix(t *testing.T) {
	m := mustRows(t, [][]float64{{4, 7}, {2, 6}})
	a, err := adjugate.Invert(m)
	require.NoError(t, err)
	b, err := adjugate.Invert(hide{m})
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows())
}

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		det, err := adjugate.Determinant(mustIdentity(t, n))
		require.NoError(t, err)
		require.Equal(t, 1.0, det, "n=%d", n)
	}
}

func TestDeterminant_Known(t *testing.T) {
	cases := []struct {
		rows [][]float64
		want float64
	}{
		{[][]float64{{7}}, 7},
		{[][]float64{{1, 2}, {3, 4}}, -2},
		{[][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{[][]float64{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}}, -2},
		{[][]float64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}
	for _, tc := range cases {
		for _, s := range []adjugate.Strategy{adjugate.StrategyRecursive, adjugate.StrategyIterative} {
			got, err := adjugate.Determinant(mustRows(t, tc.rows), adjugate.WithStrategy(s))
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, eps, "%v via %s", tc.rows, s)
		}
	}
}

func TestAdjoint_TwoByTwo(t *testing.T) {
	adj, err := adjugate.Adjoint(mustRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, -7}, {-2, 4}}, adj.ToRows())
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { adjugate.WithMaxOrder(-1) })
	require.Panics(t, func() { adjugate.WithStrategy(adjugate.Strategy(9)) })

	e := adjugate.New(adjugate.WithTracer(nil), nil)
	require.Equal(t, adjugate.StrategyRecursive, e.Strategy())
	require.Equal(t, 0, e.MaxOrder())
}

func TestParseStrategy(t *testing.T) {
	s, err := adjugate.ParseStrategy("")
	require.NoError(t, err)
	require.Equal(t, adjugate.StrategyRecursive, s)

	s, err = adjugate.ParseStrategy("iterative")
	require.NoError(t, err)
	require.Equal(t, adjugate.StrategyIterative, s)
	require.Equal(t, "iterative", s.String())

	_, err = adjugate.ParseStrategy("gauss")
	require.Error(t, err)
}

func TestSolve(t *testing.T) {
	s, err := adjugate.Solve(mustRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	require.Equal(t, 10.0, s.Determinant)
	require.Equal(t, [][]float64{{6, -7}, {-2, 4}}, s.Adjoint.ToRows())
	require.InDelta(t, 0.6, MustCell(t, s.Inverse, 0, 0), eps)

	// The adjoint is not aliased by the inverse.
	require.NotSame(t, s.Adjoint, s.Inverse)
}
