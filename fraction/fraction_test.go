// SPDX-License-Identifier: MIT
package fraction_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cofactor/fraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproximate_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want fraction.Fraction
	}{
		{"half", 0.5, fraction.Fraction{Num: 1, Den: 2}},
		{"integer", 3.0, fraction.Fraction{Num: 3, Den: 1}},
		{"truncated third", 0.333333, fraction.Fraction{Num: 1, Den: 3}},
		{"negative half", -0.5, fraction.Fraction{Num: -1, Den: 2}},
		{"negative integer", -7, fraction.Fraction{Num: -7, Den: 1}},
		{"zero", 0, fraction.Fraction{Num: 0, Den: 1}},
		{"seven tenths", -0.7, fraction.Fraction{Num: -7, Den: 10}},
		{"improper", 2.75, fraction.Fraction{Num: 11, Den: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fraction.Approximate(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestApproximate_IntegerIsBare(t *testing.T) {
	f, err := fraction.Approximate(3.0)
	require.NoError(t, err)
	assert.True(t, f.IsInteger())
	assert.Equal(t, "3", f.String())
}

// Every p/q in lowest terms with q <= 1000 comes back unchanged: any other
// fraction with a smaller denominator is at least 1/(q·d) > 1e-6 away.
// Past q = 1000 that bound fails; see TestApproximate_EarlyExitBeyondThousand.
func TestApproximate_RoundTrip(t *testing.T) {
	for q := int64(1); q <= 1000; q += 7 {
		for p := -2 * q; p <= 2*q; p += 3 {
			if gcdTest(abs64(p), q) != 1 {
				continue
			}
			got, err := fraction.Approximate(float64(p) / float64(q))
			require.NoError(t, err)
			require.Equal(t, fraction.Fraction{Num: p, Den: q}, got, "p/q = %d/%d", p, q)
		}
	}
}

// The search stops at the first candidate within 1e-6, so 1/1001 is
// reported as 1/1000 (they differ by 1/1001000 < 1e-6).
func TestApproximate_EarlyExitBeyondThousand(t *testing.T) {
	got, err := fraction.Approximate(1.0 / 1001)
	require.NoError(t, err)
	assert.Equal(t, fraction.Fraction{Num: 1, Den: 1000}, got)

	got, err = fraction.Approximate(-1.0 / 1001)
	require.NoError(t, err)
	assert.Equal(t, fraction.Fraction{Num: -1, Den: 1000}, got)
}

// The replacement margin keeps an earlier candidate when a later one is
// closer by less than the tolerance: 1/3 is nearer to 0.4166665 than 1/2,
// but only by ~3e-7.
func TestApproximateBounded_TieMarginKeepsIncumbent(t *testing.T) {
	got, err := fraction.ApproximateBounded(0.4166665, 3)
	require.NoError(t, err)
	assert.Equal(t, fraction.Fraction{Num: 1, Den: 2}, got)

	// With room to search, the exact 5/12 wins.
	got, err = fraction.ApproximateBounded(0.4166665, fraction.MaxDenominator)
	require.NoError(t, err)
	assert.Equal(t, fraction.Fraction{Num: 5, Den: 12}, got)
}

func TestApproximate_NoCandidateWithinTolerance(t *testing.T) {
	// 1/2 is 1.5e-6 away and no other fraction with d <= 10000 is closer,
	// so the whole range is scanned and 1/2 survives.
	got, err := fraction.Approximate(0.5000015)
	require.NoError(t, err)
	assert.Equal(t, fraction.Fraction{Num: 1, Den: 2}, got)
}

func TestApproximate_Errors(t *testing.T) {
	_, err := fraction.Approximate(math.NaN())
	require.ErrorIs(t, err, fraction.ErrNonFinite)

	_, err = fraction.Approximate(math.Inf(-1))
	require.ErrorIs(t, err, fraction.ErrNonFinite)

	_, err = fraction.Approximate(1e300)
	require.ErrorIs(t, err, fraction.ErrOverflow)

	_, err = fraction.ApproximateBounded(0.5, 0)
	require.ErrorIs(t, err, fraction.ErrBadDenominator)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "3", fraction.Format(3))
	assert.Equal(t, "3", fraction.Format(3+1e-12))
	assert.Equal(t, "-7/10", fraction.Format(-0.7))
	assert.Equal(t, "3/5", fraction.Format(0.6))
	assert.Equal(t, "0", fraction.Format(math.Copysign(0, -1)))
	assert.Equal(t, "NaN", fraction.Format(math.NaN()))
	assert.Equal(t, "+Inf", fraction.Format(math.Inf(1)))
}

func TestFraction_Float(t *testing.T) {
	assert.InDelta(t, 0.75, fraction.Fraction{Num: 3, Den: 4}.Float(), 1e-15)
}

func gcdTest(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
