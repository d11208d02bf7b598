// SPDX-License-Identifier: MIT

// Package matrix offers the dense float64 storage the cofactor engine works on.
//
// The matrix package provides:
//
//   - The Matrix interface and its row-major implementation Dense, with
//     bounds-checked At/Set and a finite-only numeric policy.
//   - Copy-based submatrix extraction (Dense.Induced) used to build minors.
//   - Canonical kernels: Transpose, Sub, Mul, AllClose, NewIdentity.
//   - Centralized validators (nil, square, finite, shape compatibility).
//
// Every kernel allocates a fresh result and never mutates its operands, so a
// Dense handed to the engine stays valid for the caller after the call.
//
// See the examples in this package and adjugate for usage patterns.
package matrix
