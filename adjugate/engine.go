// SPDX-License-Identifier: MIT

// Package adjugate - the Engine and its shared plumbing.
//
// Purpose:
//   - Hold the resolved Options (tracer, order bound, strategy) for one caller.
//   - Validate inputs once at every public entry point.
//   - Number and stamp trace events (Seq, Step, Depth) before handing them to the Tracer.
//
// Concurrency:
//   - An Engine carries a sequence counter, so one Engine serves one goroutine
//     at a time. Engines are cheap; build one per request.

package adjugate

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/cofactor/matrix"
)

// Operation tags for error wrapping.
const (
	opInvert      = "Invert"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opTranspose   = "Transpose"
	opAdjoint     = "Adjoint"
	opMinor       = "Minor"
	opResidual    = "Residual"
)

// Engine computes determinants, cofactor/adjoint matrices and inverses by
// cofactor expansion, reporting every step to its Tracer.
type Engine struct {
	opts    Options
	seq     int  // last emitted Seq
	nesting int  // public-call nesting; Seq restarts at the outermost call
	step    Step // current inversion phase stamped on events
}

// New builds an Engine from the given options.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Strategy reports the configured determinant driver.
func (e *Engine) Strategy() Strategy { return e.opts.strategy }

// MaxOrder reports the configured order bound (0 = unbounded).
func (e *Engine) MaxOrder() int { return e.opts.maxOrder }

// enter marks the start of a public call; the returned func must be deferred.
func (e *Engine) enter() func() {
	if e.nesting == 0 {
		e.seq = 0
		e.step = StepNone
	}
	e.nesting++

	return func() { e.nesting-- }
}

// withStep switches the phase stamped on events and returns the restorer.
func (e *Engine) withStep(s Step) func() {
	prev := e.step
	e.step = s

	return func() { e.step = prev }
}

// emit stamps ev and forwards it to the tracer.
func (e *Engine) emit(ev TraceEvent) {
	e.seq++
	ev.Seq = e.seq
	if ev.Step == StepNone {
		ev.Step = e.step
	}
	e.opts.tracer.Emit(ev)
}

func (e *Engine) heading(s Step, title string) {
	e.emit(TraceEvent{Kind: KindHeading, Step: s, Title: title})
}

func (e *Engine) note(depth int, format string, args ...any) {
	e.emit(TraceEvent{Kind: KindNote, Depth: depth, Message: fmt.Sprintf(format, args...)})
}

func (e *Engine) result(depth int, v float64, format string, args ...any) {
	e.emit(TraceEvent{Kind: KindResult, Depth: depth, Value: v, Message: fmt.Sprintf(format, args...)})
}

// snapshot emits a private copy of m so later mutations never leak into sinks.
func (e *Engine) snapshot(depth int, title string, m *matrix.Dense) {
	e.emit(TraceEvent{Kind: KindMatrix, Depth: depth, Title: title, Matrix: m.Copy()})
}

// prepare validates a square input and returns it as *Dense.
// Order of checks: nil → square → order bound → finite values.
func (e *Engine) prepare(op string, m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, adjugateErrorf(op, err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", op, m.Rows(), m.Cols(), ErrNonSquare)
	}
	if m.Rows() < 1 {
		return nil, fmt.Errorf("%s: %w", op, matrix.ErrInvalidDimensions)
	}
	if e.opts.maxOrder > 0 && m.Rows() > e.opts.maxOrder {
		return nil, fmt.Errorf("%s: order %d > %d: %w", op, m.Rows(), e.opts.maxOrder, ErrTooLarge)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
	}

	return toDense(m)
}

// toDense returns m itself when it is a *Dense, otherwise a copy.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}
	n := m.Rows()
	d, err := matrix.NewDense(n, m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// at reads a cell whose indices the caller has already bounded.
func at(m *matrix.Dense, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

// num formats a scalar for trace messages (shortest round-trip form).
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// signOf returns (-1)^k.
func signOf(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}

// signGlyph renders a sign for trace lines.
func signGlyph(s float64) string {
	if s > 0 {
		return "+"
	}
	return "-"
}
