// SPDX-License-Identifier: MIT

// Package fraction converts decimals into small reduced fractions for display.
//
// Approximate searches denominators 1…10000 for the first fraction within
// 1e-6 of the value. A candidate only replaces the current best when it is
// better by more than the tolerance, so near-ties keep the earlier (smaller)
// denominator. The search is a formatting aid; the numeric engine never uses
// it for arithmetic.
package fraction
