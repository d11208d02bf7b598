// SPDX-License-Identifier: MIT

// Package adjugate: functional configuration for the Engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults and numeric thresholds (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves the effective configuration.
//
// Design goals:
//   - No global state: the tracer travels inside the Engine, never a package variable.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package adjugate

import "fmt"

// ---------- Numeric thresholds (single source of truth) ----------

const (
	// SingularTolerance: |det| below this makes Invert fail with ErrSingular.
	SingularTolerance = 1e-10

	// ZeroElementTolerance: first-row elements with |x| <= this are skipped
	// during cofactor expansion (their term is ≈0 anyway).
	ZeroElementTolerance = 1e-10

	// SnapTolerance: inverse entries with |v| < this are written as exactly 0.
	SnapTolerance = 1e-12
)

// Strategy selects how the determinant expansion is driven.
type Strategy uint8

const (
	// StrategyRecursive expands minors through Go recursion (depth = n).
	StrategyRecursive Strategy = iota
	// StrategyIterative expands minors with an explicit frame stack.
	// Trace output order is identical to StrategyRecursive.
	StrategyIterative
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRecursive:
		return "recursive"
	case StrategyIterative:
		return "iterative"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a configuration name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "recursive":
		return StrategyRecursive, nil
	case "iterative":
		return StrategyIterative, nil
	default:
		return StrategyRecursive, fmt.Errorf("adjugate: unknown strategy %q", name)
	}
}

// ---------- Defaults ----------

const (
	// DefaultMaxOrder of 0 means "no bound"; callers set their own ceiling.
	DefaultMaxOrder = 0

	// DefaultStrategy is the recursive expansion.
	DefaultStrategy = StrategyRecursive
)

// panic messages for invalid option arguments.
const (
	panicMaxOrderNegative = "adjugate: WithMaxOrder: order must be >= 0"
	panicStrategyUnknown  = "adjugate: WithStrategy: unknown strategy"
)

// Options is the resolved Engine configuration. Fields are unexported; use WithX.
type Options struct {
	tracer   Tracer
	maxOrder int
	strategy Strategy
}

// Option mutates Options during gatherOptions.
type Option func(*Options)

// WithTracer routes trace events to t. A nil t keeps the NopTracer.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithMaxOrder bounds the accepted matrix order (0 = unbounded).
// The expansion is O(n!), so interactive callers should keep n <= 10.
// Panics when n < 0.
func WithMaxOrder(n int) Option {
	if n < 0 {
		panic(panicMaxOrderNegative)
	}

	return func(o *Options) { o.maxOrder = n }
}

// WithStrategy selects the determinant driver. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyRecursive && s != StrategyIterative {
		panic(panicStrategyUnknown)
	}

	return func(o *Options) { o.strategy = s }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tracer:   NopTracer{},
		maxOrder: DefaultMaxOrder,
		strategy: DefaultStrategy,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
