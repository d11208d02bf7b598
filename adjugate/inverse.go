// SPDX-License-Identifier: MIT

// Package adjugate - InverseComposer (Solve, Invert).
//
// Blueprint:
//
//	Stage 1 (Validate): non-nil, square, order bound, finite values.
//	Stage 2 (Gate): det(M); |det| < SingularTolerance fails with ErrSingular.
//	Stage 3 (Adjoint): Transpose(Cofactors(M)).
//	Stage 4 (Divide): inv = adj / det, entries below SnapTolerance snapped to 0.
//
// Every stage reports its heading and results to the Engine's Tracer.

package adjugate

import (
	"math"

	"github.com/katalvlaran/cofactor/matrix"
)

// Solution bundles the results of one inversion.
type Solution struct {
	Determinant float64
	Adjoint     *matrix.Dense
	Inverse     *matrix.Dense
}

// Solve inverts the square matrix m as adj(m)/det(m) and returns the
// determinant and adjoint alongside the inverse.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare, ErrTooLarge, ErrInvalidInput (validation).
//   - *InverseError wrapping ErrSingular, with the determinant attached.
//
// The input is never mutated; every returned matrix is freshly allocated.
func (e *Engine) Solve(m matrix.Matrix) (*Solution, error) {
	defer e.enter()()

	d, err := e.prepare(opInvert, m)
	if err != nil {
		return nil, err
	}
	e.snapshot(0, "Original Matrix", d)

	restore := e.withStep(StepDeterminant)
	e.heading(StepDeterminant, "Step 1: Calculate determinant")
	det, err := e.determinant(d)
	if err != nil {
		restore()
		return nil, adjugateErrorf(opInvert, err)
	}
	if math.Abs(det) < SingularTolerance {
		restore()
		return nil, &InverseError{Op: opInvert, Kind: ErrSingular, Determinant: det, HasDet: true}
	}
	e.result(0, det, "Determinant = %s", num(det))
	restore()

	adj, err := e.adjoint(d)
	if err != nil {
		return nil, adjugateErrorf(opInvert, err)
	}

	defer e.withStep(StepInverse)()
	e.heading(StepInverse, "Step 5: Calculate inverse matrix")
	e.note(0, "Inverse = (1/det) × adjoint = (1/%s) × adjoint matrix", num(det))

	inv := adj.Copy()
	if err = inv.Apply(func(_, _ int, v float64) float64 {
		q := v / det
		if math.Abs(q) < SnapTolerance {
			return 0
		}
		return q
	}); err != nil {
		return nil, adjugateErrorf(opInvert, err)
	}
	e.snapshot(0, "Inverse Matrix", inv)

	return &Solution{Determinant: det, Adjoint: adj, Inverse: inv}, nil
}

// Invert returns the inverse of the square matrix m; see Solve.
func (e *Engine) Invert(m matrix.Matrix) (*matrix.Dense, error) {
	s, err := e.Solve(m)
	if err != nil {
		return nil, err
	}

	return s.Inverse, nil
}

// Invert is a convenience wrapper around New(opts...).Invert(m).
func Invert(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).Invert(m)
}

// Solve is a convenience wrapper around New(opts...).Solve(m).
func Solve(m matrix.Matrix, opts ...Option) (*Solution, error) {
	return New(opts...).Solve(m)
}
