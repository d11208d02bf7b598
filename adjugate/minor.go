// SPDX-License-Identifier: MIT

package adjugate

import (
	"fmt"

	"github.com/katalvlaran/cofactor/matrix"
)

// Minor returns the (n-1)×(n-1) matrix left after deleting row i and column j
// of the square matrix m. Remaining rows and columns keep their relative order.
//
// Errors:
//   - ErrNonSquare when m is rectangular.
//   - ErrTooSmall when n < 2.
//   - ErrInvalidIndex when i or j is outside [0,n).
//
// Complexity: O(n^2).
func Minor(m matrix.Matrix, i, j int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, adjugateErrorf(opMinor, err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opMinor, m.Rows(), m.Cols(), ErrNonSquare)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, adjugateErrorf(opMinor, err)
	}

	return minorOf(d, i, j)
}

// minorOf is Minor without the interface conversion; the engine calls it
// with indices it already owns.
func minorOf(m *matrix.Dense, i, j int) (*matrix.Dense, error) {
	n := m.Rows()
	if n < 2 {
		return nil, fmt.Errorf("%s: order %d: %w", opMinor, n, ErrTooSmall)
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("%s(%d,%d) of order %d: %w", opMinor, i, j, n, ErrInvalidIndex)
	}

	return m.Induced(skip(n, i), skip(n, j))
}

// skip lists 0..n-1 without k.
func skip(n, k int) []int {
	idx := make([]int, 0, n-1)
	for x := 0; x < n; x++ {
		if x != k {
			idx = append(idx, x)
		}
	}

	return idx
}
