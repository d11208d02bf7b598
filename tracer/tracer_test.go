// SPDX-License-Identifier: MIT
package tracer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/matrix"
	"github.com/katalvlaran/cofactor/tracer"
)

func invert(t *testing.T, rows [][]float64, tr adjugate.Tracer) {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	_, err = adjugate.Invert(m, adjugate.WithTracer(tr))
	require.NoError(t, err)
}

func TestRecorder(t *testing.T) {
	rec := tracer.NewRecorder()
	require.Zero(t, rec.Len())

	invert(t, [][]float64{{4, 7}, {2, 6}}, rec)
	require.Positive(t, rec.Len())
	require.Len(t, rec.Filter(adjugate.KindHeading), 4)

	rec.Reset()
	require.Zero(t, rec.Len())
	require.Empty(t, rec.Events())
}

func TestMulti(t *testing.T) {
	a, b := tracer.NewRecorder(), tracer.NewRecorder()
	invert(t, [][]float64{{2, 1}, {1, 1}}, tracer.Multi{a, nil, b})
	require.Equal(t, a.Events(), b.Events())
	require.Positive(t, a.Len())
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := tracer.NewWriter(&buf)
	invert(t, [][]float64{{4, 7}, {2, 6}}, w)
	require.NoError(t, w.Err())

	out := buf.String()
	require.Contains(t, out, "Original Matrix:\n  | 4  7 |\n  | 2  6 |\n")
	require.Contains(t, out, "\n== Step 1: Calculate determinant ==\n")
	require.Contains(t, out, "(4 × 6) - (7 × 2) = 10\n")
	require.Contains(t, out, "Inverse Matrix:\n  | 3/5  -7/10 |\n  | -1/5  2/5 |\n")

	i1 := strings.Index(out, "Step 1")
	i5 := strings.Index(out, "Step 5")
	require.Less(t, i1, i5)
}

func TestWriter_IndentsByDepth(t *testing.T) {
	var buf bytes.Buffer
	w := tracer.NewWriter(&buf)
	w.Emit(adjugate.TraceEvent{Kind: adjugate.KindNote, Depth: 2, Message: "x"})
	require.Equal(t, "    x\n", buf.String())
}

type failing struct{ n int }

func (f *failing) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriter_KeepsFirstError(t *testing.T) {
	f := &failing{}
	w := tracer.NewWriter(f)
	w.Emit(adjugate.TraceEvent{Kind: adjugate.KindNote, Message: "a"})
	w.Emit(adjugate.TraceEvent{Kind: adjugate.KindNote, Message: "b"})
	require.EqualError(t, w.Err(), "disk full")
	require.Equal(t, 1, f.n)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := tracer.NewLogger(zap.New(core), zapcore.DebugLevel)
	invert(t, [][]float64{{4, 7}, {2, 6}}, l)

	entries := logs.FilterMessage("trace step").All()
	require.NotEmpty(t, entries)

	first := entries[0].ContextMap()
	require.EqualValues(t, 1, first["seq"])
	require.Equal(t, "matrix", first["kind"])
	require.Equal(t, "Original Matrix", first["title"])

	var results int
	for _, e := range entries {
		ctx := e.ContextMap()
		if ctx["kind"] == "result" {
			results++
			require.Contains(t, ctx, "value")
		}
	}
	require.Positive(t, results)
}

func TestLogger_LevelGate(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := tracer.NewLogger(zap.New(core), zapcore.DebugLevel)
	invert(t, [][]float64{{1, 0}, {0, 1}}, l)
	require.Zero(t, logs.Len())

	// nil logger is a no-op.
	invert(t, [][]float64{{1, 0}, {0, 1}}, tracer.NewLogger(nil, zapcore.InfoLevel))
}
