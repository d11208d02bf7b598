// SPDX-License-Identifier: MIT
// Package adjugate: the Tracer port.
//
// The engine reports every computation step to a Tracer synchronously and
// in order. Rendering (text, HTML, logs) is the sink's business; the engine
// only guarantees ordering and completeness of the step sequence.

package adjugate

import "github.com/katalvlaran/cofactor/matrix"

// Kind classifies a TraceEvent.
type Kind uint8

const (
	// KindHeading opens one of the five inversion steps.
	KindHeading Kind = iota + 1
	// KindMatrix carries a matrix snapshot under a title.
	KindMatrix
	// KindNote carries an arithmetic line.
	KindNote
	// KindResult carries a final scalar of a sub-computation.
	KindResult
)

// String returns the lower-case kind name used by logging sinks.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindMatrix:
		return "matrix"
	case KindNote:
		return "note"
	case KindResult:
		return "result"
	default:
		return "unknown"
	}
}

// Step numbers the phases of Invert. Zero means "not inside Invert".
type Step uint8

const (
	StepNone Step = iota
	StepDeterminant
	StepCofactor
	StepTranspose
	StepAdjoint
	StepInverse
)

// TraceEvent is one human-readable computation step.
type TraceEvent struct {
	Seq     int           // 1-based position within one engine call chain
	Kind    Kind          // heading, matrix, note or result
	Step    Step          // inversion phase
	Depth   int           // determinant recursion depth (0 at the top level)
	Title   string        // heading text or matrix title
	Message string        // arithmetic line for notes and results
	Matrix  *matrix.Dense // private snapshot; nil unless Kind == KindMatrix
	Value   float64       // scalar for KindResult
}

// Tracer receives trace events. Emit must be cheap and must not block.
type Tracer interface {
	Emit(ev TraceEvent)
}

// TracerFunc adapts a plain function to Tracer.
type TracerFunc func(ev TraceEvent)

// Emit calls f(ev).
func (f TracerFunc) Emit(ev TraceEvent) { f(ev) }

// NopTracer discards every event.
type NopTracer struct{}

// Emit does nothing.
func (NopTracer) Emit(TraceEvent) {}
