// SPDX-License-Identifier: MIT

// Package adjugate inverts square matrices by the classical adjoint method.
//
// The computation is deliberately pedagogical: the determinant is expanded
// along the first row through every minor (O(n!)), the cofactor matrix is
// built from the determinants of all minors, transposed into the adjoint, and
// divided by the determinant. Every intermediate value is reported to a
// Tracer so a presentation layer can show the full derivation.
//
//	inv, err := adjugate.Invert(m,
//		adjugate.WithTracer(rec),
//		adjugate.WithMaxOrder(10))
//	if errors.Is(err, adjugate.ErrSingular) { ... }
//
// Building blocks, leaves first:
//
//	Minor        drop one row and one column
//	Determinant  first-row cofactor expansion (recursive or iterative driver)
//	Cofactors    signed determinants of every minor
//	Transpose    swap rows and columns
//	Adjoint      Transpose(Cofactors(M))
//	Invert       det gate, then adj/det
//
// The engine is synchronous and keeps no package-level state. An Engine
// numbers its trace events, so use one Engine per goroutine.
package adjugate
