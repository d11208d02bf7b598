// SPDX-License-Identifier: MIT

// Command cofactor inverts square matrices by the adjoint method and prints
// every step of the derivation.
//
//	cofactor invert --rows "4 7; 2 6" --steps
//	cofactor det --file run.yaml
//	cofactor fraction 0.333333
//	cofactor serve
//
// The exit status is 2 when the matrix is singular and 1 on any other error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if singular(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
