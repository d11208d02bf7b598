// SPDX-License-Identifier: MIT

package adjugate

import (
	"github.com/katalvlaran/cofactor/matrix"
)

// Cofactors validates m and returns its cofactor matrix:
// C[r][c] = (−1)^(r+c) · det(Minor(m, r, c)).
//
// A 1×1 matrix has no minors; its cofactor matrix is [1], which keeps
// adj(A)/det(A) correct for n = 1.
func (e *Engine) Cofactors(m matrix.Matrix) (*matrix.Dense, error) {
	defer e.enter()()

	d, err := e.prepare(opCofactors, m)
	if err != nil {
		return nil, err
	}

	return e.cofactors(d)
}

func (e *Engine) cofactors(m *matrix.Dense) (*matrix.Dense, error) {
	defer e.withStep(StepCofactor)()

	n := m.Rows()
	e.heading(StepCofactor, "Step 2: Find cofactor matrix")
	e.note(0, "C(i,j) = (-1)^(i+j) × det(M(i,j))")

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, adjugateErrorf(opCofactors, err)
	}
	if n == 1 {
		_ = out.Set(0, 0, 1)
		e.note(0, "C(1,1) = 1 (a 1×1 matrix has no minors)")
		e.snapshot(0, "Cofactor Matrix", out)
		return out, nil
	}

	var minor *matrix.Dense
	var md, sign, v float64
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if minor, err = minorOf(m, r, c); err != nil {
				return nil, adjugateErrorf(opCofactors, err)
			}
			if md, err = e.determinant(minor); err != nil {
				return nil, adjugateErrorf(opCofactors, err)
			}
			sign = signOf(r + c)
			v = sign * md
			if err = out.Set(r, c, v); err != nil {
				return nil, adjugateErrorf(opCofactors, err)
			}
			e.note(0, "C(%d,%d) = %s det(M(%d,%d)) = (-1)^(%d) × %s = %s",
				r+1, c+1, signGlyph(sign), r+1, c+1, r+c+2, num(md), num(v))
		}
	}
	e.snapshot(0, "Cofactor Matrix", out)

	return out, nil
}

// Transpose validates m and returns mᵀ, reporting it as step 3.
func (e *Engine) Transpose(m matrix.Matrix) (*matrix.Dense, error) {
	defer e.enter()()

	d, err := e.prepare(opTranspose, m)
	if err != nil {
		return nil, err
	}

	return e.transpose(d)
}

func (e *Engine) transpose(m *matrix.Dense) (*matrix.Dense, error) {
	defer e.withStep(StepTranspose)()

	e.heading(StepTranspose, "Step 3: Transpose the matrix")
	t, err := matrix.Transpose(m)
	if err != nil {
		return nil, adjugateErrorf(opTranspose, err)
	}
	e.snapshot(0, "Transposed Matrix", t)

	return t, nil
}

// Adjoint validates m and returns adj(m) = Transpose(Cofactors(m)).
func (e *Engine) Adjoint(m matrix.Matrix) (*matrix.Dense, error) {
	defer e.enter()()

	d, err := e.prepare(opAdjoint, m)
	if err != nil {
		return nil, err
	}

	return e.adjoint(d)
}

func (e *Engine) adjoint(m *matrix.Dense) (*matrix.Dense, error) {
	cof, err := e.cofactors(m)
	if err != nil {
		return nil, adjugateErrorf(opAdjoint, err)
	}
	adj, err := e.transpose(cof)
	if err != nil {
		return nil, adjugateErrorf(opAdjoint, err)
	}

	restore := e.withStep(StepAdjoint)
	e.snapshot(0, "Step 4: Adjoint Matrix", adj)
	restore()

	return adj, nil
}

// Cofactors is a convenience wrapper around New(opts...).Cofactors(m).
func Cofactors(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).Cofactors(m)
}

// Adjoint is a convenience wrapper around New(opts...).Adjoint(m).
func Adjoint(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).Adjoint(m)
}
