// SPDX-License-Identifier: MIT

package tracer

import (
	"github.com/katalvlaran/cofactor/adjugate"
)

// Recorder keeps every event in emission order.
// It is not safe for concurrent use; the engine emits from one goroutine.
type Recorder struct {
	events []adjugate.TraceEvent
}

var _ adjugate.Tracer = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Emit appends ev.
func (r *Recorder) Emit(ev adjugate.TraceEvent) { r.events = append(r.events, ev) }

// Events returns the recorded events. The slice is shared; do not modify.
func (r *Recorder) Events() []adjugate.TraceEvent { return r.events }

// Len reports the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Reset drops every recorded event.
func (r *Recorder) Reset() { r.events = r.events[:0] }

// Filter returns the events of the given kind, in order.
func (r *Recorder) Filter(kind adjugate.Kind) []adjugate.TraceEvent {
	var out []adjugate.TraceEvent
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// Multi fans every event out to each sink in order.
type Multi []adjugate.Tracer

// Emit forwards ev to every non-nil sink.
func (m Multi) Emit(ev adjugate.TraceEvent) {
	for _, t := range m {
		if t != nil {
			t.Emit(ev)
		}
	}
}
