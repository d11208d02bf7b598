// SPDX-License-Identifier: MIT

// Package adjugate - determinant by first-row cofactor expansion.
//
// Behavior:
//   - n = 1: the single element; n = 2: a·d − b·c.
//   - n ≥ 3: det = Σ_c (−1)^c · M[0][c] · det(Minor(M,0,c)); columns whose
//     element has |x| <= ZeroElementTolerance are skipped.
//
// Complexity:
//   - O(n!) on purpose: every minor and sign stays individually explainable.
//     Callers bound n through WithMaxOrder.
//
// Both drivers below share the emit helpers, so the recursive and the
// iterative strategy produce the same trace sequence for the same input.

package adjugate

import (
	"math"
	"strconv"

	"github.com/katalvlaran/cofactor/matrix"
)

// Determinant validates m and returns its determinant.
func (e *Engine) Determinant(m matrix.Matrix) (float64, error) {
	defer e.enter()()

	d, err := e.prepare(opDeterminant, m)
	if err != nil {
		return 0, err
	}

	return e.determinant(d)
}

// Determinant is a convenience wrapper around New(opts...).Determinant(m).
func Determinant(m matrix.Matrix, opts ...Option) (float64, error) {
	return New(opts...).Determinant(m)
}

// determinant dispatches on the configured strategy; m is already validated.
func (e *Engine) determinant(m *matrix.Dense) (float64, error) {
	if e.opts.strategy == StrategyIterative {
		return e.detIterative(m)
	}

	return e.detRecursive(m, 0)
}

// detOpen emits the opening events for a matrix at the given depth.
// It returns (value, true) for the closed forms n = 1 and n = 2.
func (e *Engine) detOpen(m *matrix.Dense, depth int) (float64, bool) {
	e.snapshot(depth, "Find determinant", m)

	switch m.Rows() {
	case 1:
		v := at(m, 0, 0)
		e.result(depth, v, "Determinant = %s", num(v))
		return v, true
	case 2:
		a, b := at(m, 0, 0), at(m, 0, 1)
		c, d := at(m, 1, 0), at(m, 1, 1)
		v := a*d - b*c
		e.note(depth, "(%s × %s) - (%s × %s) = %s", num(a), num(d), num(b), num(c), num(v))
		e.result(depth, v, "Determinant = %s", num(v))
		return v, true
	}

	e.note(depth, "Using cofactor expansion along first row")
	return 0, false
}

// detColumn reports a used expansion column and returns its minor.
func (e *Engine) detColumn(m *matrix.Dense, c, depth int, elem float64) (*matrix.Dense, error) {
	minor, err := minorOf(m, 0, c)
	if err != nil {
		return nil, adjugateErrorf(opDeterminant, err)
	}
	e.note(depth, "Element a(1,%d) = %s, sign = %s", c+1, num(elem), signGlyph(signOf(c)))
	e.snapshot(depth, "Minor M(1,"+strconv.Itoa(c+1)+")", minor)

	return minor, nil
}

// detTerm reports and returns one signed term of the expansion.
func (e *Engine) detTerm(c, depth int, elem, minorDet float64) float64 {
	term := signOf(c) * elem * minorDet
	e.note(depth, "Term %d = (-1)^(1+%d) × %s × %s = %s", c+1, c+1, num(elem), num(minorDet), num(term))

	return term
}

// detClose reports the final sum of an expansion.
func (e *Engine) detClose(depth int, sum float64) {
	e.result(depth, sum, "Sum of all terms = %s", num(sum))
}

// usable reports whether the expansion must visit an element.
func usable(elem float64) bool {
	return math.Abs(elem) > ZeroElementTolerance
}

// detRecursive expands through Go recursion (depth grows by one per minor).
func (e *Engine) detRecursive(m *matrix.Dense, depth int) (float64, error) {
	if v, done := e.detOpen(m, depth); done {
		return v, nil
	}

	var sum float64
	n := m.Rows()
	for c := 0; c < n; c++ {
		elem := at(m, 0, c)
		if !usable(elem) {
			continue
		}
		minor, err := e.detColumn(m, c, depth, elem)
		if err != nil {
			return 0, err
		}
		md, err := e.detRecursive(minor, depth+1)
		if err != nil {
			return 0, err
		}
		sum += e.detTerm(c, depth, elem, md)
	}
	e.detClose(depth, sum)

	return sum, nil
}

// detFrame is one pending expansion of the iterative driver.
type detFrame struct {
	m    *matrix.Dense
	col  int     // column currently being expanded
	elem float64 // element of the pending term
	sum  float64 // running sum of completed terms
}

// detIterative walks the same expansion tree as detRecursive with an
// explicit stack. A child's value is handed back through (ret, haveRet).
func (e *Engine) detIterative(root *matrix.Dense) (float64, error) {
	if v, done := e.detOpen(root, 0); done {
		return v, nil
	}

	stack := []*detFrame{{m: root, col: -1}}
	var (
		ret     float64
		haveRet bool
	)
	for len(stack) > 0 {
		depth := len(stack) - 1
		f := stack[depth]
		n := f.m.Rows()

		if haveRet {
			f.sum += e.detTerm(f.col, depth, f.elem, ret)
			haveRet = false
		}

		// Advance to the next usable column.
		f.col++
		for f.col < n && !usable(at(f.m, 0, f.col)) {
			f.col++
		}
		if f.col == n {
			e.detClose(depth, f.sum)
			stack = stack[:depth]
			ret, haveRet = f.sum, true
			continue
		}

		f.elem = at(f.m, 0, f.col)
		minor, err := e.detColumn(f.m, f.col, depth, f.elem)
		if err != nil {
			return 0, err
		}
		if v, done := e.detOpen(minor, depth+1); done {
			ret, haveRet = v, true
			continue
		}
		stack = append(stack, &detFrame{m: minor, col: -1})
	}

	return ret, nil
}
