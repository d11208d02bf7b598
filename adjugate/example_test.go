// SPDX-License-Identifier: MIT
package adjugate_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/matrix"
)

func ExampleInvert() {
	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
	inv, err := adjugate.Invert(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	// Output:
	// [0.6, -0.7]
	// [-0.2, 0.4]
}

func ExampleInvert_singular() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := adjugate.Invert(m)
	fmt.Println(errors.Is(err, adjugate.ErrSingular))
	// Output: true
}

func ExampleDeterminant() {
	m, _ := matrix.NewDenseFromRows([][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})
	det, _ := adjugate.Determinant(m)
	fmt.Println(det)
	// Output: -306
}
