// SPDX-License-Identifier: MIT

package adjugate

import (
	"math"

	"github.com/katalvlaran/cofactor/matrix"
)

// Residual returns max |(m·inv − I)[r][c]|, how far the product of m and a
// computed inverse strays from the identity. m must be square and inv must
// have the same order.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func Residual(m, inv matrix.Matrix) (float64, error) {
	id, err := matrix.IdentityLike(m)
	if err != nil {
		return 0, adjugateErrorf(opResidual, err)
	}
	p, err := matrix.Product(m, inv)
	if err != nil {
		return 0, adjugateErrorf(opResidual, err)
	}
	diff, err := matrix.Sub(p, id)
	if err != nil {
		return 0, adjugateErrorf(opResidual, err)
	}

	var worst float64
	diff.Do(func(_, _ int, v float64) bool {
		worst = math.Max(worst, math.Abs(v))
		return true
	})

	return worst, nil
}
