// SPDX-License-Identifier: MIT
package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/input"
)

func f(v float64) *float64 { return &v }

func TestParseRows(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want [][]float64
	}{
		{"semicolons", "4 7; 2 6", [][]float64{{4, 7}, {2, 6}}},
		{"newlines", "1 2\n3 4\n", [][]float64{{1, 2}, {3, 4}}},
		{"commas", "1, 2.5; -3, 4e1", [][]float64{{1, 2.5}, {-3, 40}}},
		{"single", "  9 ", [][]float64{{9}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := input.ParseRows(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, m.ToRows())
		})
	}
}

func TestParseRows_Errors(t *testing.T) {
	_, err := input.ParseRows("")
	require.ErrorIs(t, err, input.ErrEmpty)

	_, err = input.ParseRows("1 2; 3")
	require.ErrorIs(t, err, adjugate.ErrNonSquare)

	_, err = input.ParseRows("1 x; 3 4")
	require.ErrorIs(t, err, adjugate.ErrInvalidInput)

	_, err = input.ParseRows("1 NaN; 3 4")
	require.ErrorIs(t, err, adjugate.ErrInvalidInput)

	_, err = input.ParseRows("1 1e400; 3 4")
	require.ErrorIs(t, err, adjugate.ErrInvalidInput)

	_, err = input.ParseRows("1 0 0; 0 1 0; 0 0 1", input.WithMaxOrder(2))
	require.ErrorIs(t, err, adjugate.ErrTooLarge)
}

func TestBlankCells(t *testing.T) {
	_, err := input.ParseRows("1, ; 3, 4")
	require.ErrorIs(t, err, adjugate.ErrInvalidInput)

	m, err := input.ParseRows("1, ; 3, 4", input.WithBlankAsZero())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {3, 4}}, m.ToRows())
}

func TestFromCells(t *testing.T) {
	m, err := input.FromCells([][]*float64{{f(2), nil}, {f(0), f(1)}}, input.WithBlankAsZero())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, 1}}, m.ToRows())

	_, err = input.FromCells(nil)
	require.ErrorIs(t, err, input.ErrEmpty)

	require.Panics(t, func() { input.WithMaxOrder(-1) })
}

func TestParseDocument(t *testing.T) {
	yml := []byte("matrix:\n  - [4, 7]\n  - [2, ~]\nsteps: true\nstrategy: iterative\n")
	doc, err := input.ParseDocument(yml)
	require.NoError(t, err)
	require.True(t, doc.Steps)
	require.Equal(t, "iterative", doc.Strategy)

	_, err = doc.Dense()
	require.ErrorIs(t, err, adjugate.ErrInvalidInput)

	m, err := doc.Dense(input.WithBlankAsZero())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 7}, {2, 0}}, m.ToRows())

	js := []byte(`{"matrix": [[1, 2], [3, 4]]}`)
	doc, err = input.ParseDocument(js)
	require.NoError(t, err)
	m, err = doc.Dense()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	_, err = input.ParseDocument([]byte("steps: true\n"))
	require.ErrorIs(t, err, input.ErrEmpty)

	_, err = input.ParseDocument([]byte("matrix: [[1, 2]\n"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matrix:\n  - [1, 0]\n  - [0, 1]\n"), 0o600))

	doc, err := input.LoadFile(path)
	require.NoError(t, err)
	m, err := doc.Dense()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, m.ToRows())

	_, err = input.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
