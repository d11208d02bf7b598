// SPDX-License-Identifier: MIT
// Package adjugate: sentinel error kinds and the InverseError value.
//
// Every component failure propagates unchanged up to Invert. Callers match
// with errors.Is on the sentinels; *InverseError adds the numeric context
// (the computed determinant) for the singular case.

package adjugate

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned by Invert when |det| < SingularTolerance.
	// Terminal: the computation is deterministic, retrying changes nothing.
	ErrSingular = errors.New("adjugate: matrix is singular")

	// ErrInvalidIndex signals a minor requested with a row or column outside [0,n).
	ErrInvalidIndex = errors.New("adjugate: minor index out of range")

	// ErrTooSmall signals a minor requested from a matrix of order < 2.
	ErrTooSmall = errors.New("adjugate: matrix too small for a minor")

	// ErrInvalidInput signals NaN/±Inf in the input matrix.
	ErrInvalidInput = errors.New("adjugate: non-finite input value")

	// ErrNonSquare signals a rectangular input.
	ErrNonSquare = errors.New("adjugate: matrix is not square")

	// ErrTooLarge signals an order above the caller-configured MaxOrder.
	ErrTooLarge = errors.New("adjugate: matrix order exceeds configured bound")
)

// InverseError carries the failing operation, its error kind and, when it
// was computed, the determinant of the input.
type InverseError struct {
	Op          string
	Kind        error
	Determinant float64
	HasDet      bool
}

func (e *InverseError) Error() string {
	if e.HasDet {
		return fmt.Sprintf("%s: %v (det = %g)", e.Op, e.Kind, e.Determinant)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

// Unwrap exposes the kind so errors.Is(err, ErrSingular) holds.
func (e *InverseError) Unwrap() error { return e.Kind }

// adjugateErrorf wraps err with an operation tag, preserving it via %w.
func adjugateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
