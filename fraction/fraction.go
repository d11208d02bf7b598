// SPDX-License-Identifier: MIT

package fraction

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	// Tolerance is both the early-exit bound and the replacement margin.
	Tolerance = 1e-6

	// MaxDenominator is the largest denominator Approximate tries.
	MaxDenominator = 10000

	// IntegerTolerance: Format prints values this close to an integer as integers.
	IntegerTolerance = 1e-10
)

var (
	// ErrNonFinite is returned for NaN and ±Inf.
	ErrNonFinite = errors.New("fraction: value is not finite")

	// ErrOverflow is returned when the value does not fit an int64 numerator.
	ErrOverflow = errors.New("fraction: value out of int64 range")

	// ErrBadDenominator is returned by ApproximateBounded for maxDen < 1.
	ErrBadDenominator = errors.New("fraction: max denominator must be >= 1")
)

// Fraction is Num/Den in lowest terms with Den > 0.
type Fraction struct {
	Num int64
	Den int64
}

// IsInteger reports whether the fraction degenerates to a bare integer.
func (f Fraction) IsInteger() bool { return f.Den == 1 }

// Float returns Num/Den.
func (f Fraction) Float() float64 { return float64(f.Num) / float64(f.Den) }

// String renders "p" for integers and "p/q" otherwise.
func (f Fraction) String() string {
	if f.IsInteger() {
		return strconv.FormatInt(f.Num, 10)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Approximate returns the fraction that represents v for display.
func Approximate(v float64) (Fraction, error) {
	return ApproximateBounded(v, MaxDenominator)
}

// ApproximateBounded is Approximate with a caller-chosen denominator ceiling.
//
// Search rules:
//   - integers are returned as-is (Den = 1);
//   - the incumbent starts at 1/1;
//   - for d = 1…maxDen, n = round-half-up(v·d); the candidate replaces the
//     incumbent only when |v − n/d| < best − Tolerance;
//   - the search stops at the first d with |v − n/d| < Tolerance;
//   - the winner is reduced by gcd.
func ApproximateBounded(v float64, maxDen int) (Fraction, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Fraction{}, ErrNonFinite
	}
	if maxDen < 1 {
		return Fraction{}, ErrBadDenominator
	}
	if math.Abs(v) >= math.MaxInt64 {
		return Fraction{}, fmt.Errorf("%g: %w", v, ErrOverflow)
	}
	if v == math.Trunc(v) {
		return Fraction{Num: int64(v), Den: 1}, nil
	}

	num, den := int64(1), int64(1)
	minDiff := math.Abs(v - 1)
	for d := 1; d <= maxDen; d++ {
		fd := float64(d)
		n := roundHalfUp(v * fd)
		diff := math.Abs(v - n/fd)
		if diff < minDiff-Tolerance {
			num, den = int64(n), int64(d)
			minDiff = diff
		}
		if diff < Tolerance {
			break
		}
	}

	return reduce(num, den), nil
}

// roundHalfUp rounds ties toward +Inf (−2.5 → −2), unlike math.Round.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// reduce divides num and den by their gcd; den stays positive.
func reduce(num, den int64) Fraction {
	g := gcd(abs(num), abs(den))
	if g > 1 {
		num /= g
		den /= g
	}

	return Fraction{Num: num, Den: den}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Format renders a scalar for display: near-integers print as integers,
// other values as the approximated fraction, and values the approximator
// rejects fall back to strconv's shortest form.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if r := math.Round(v); math.Abs(v-r) <= IntegerTolerance {
		if math.Abs(r) < math.MaxInt64 {
			return strconv.FormatInt(int64(r), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	f, err := Approximate(v)
	if err != nil {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return f.String()
}
