// SPDX-License-Identifier: MIT

package tracer

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/fraction"
)

// Writer prints events as indented plain text while they are emitted.
// Matrices print one bracketed row per line with fraction-formatted cells.
// The first write error is kept and later events are dropped.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer printing to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first write error, if any.
func (t *Writer) Err() error { return t.err }

// Emit prints ev.
func (t *Writer) Emit(ev adjugate.TraceEvent) {
	if t.err != nil {
		return
	}
	indent := strings.Repeat("  ", ev.Depth)
	var b strings.Builder
	switch ev.Kind {
	case adjugate.KindHeading:
		fmt.Fprintf(&b, "\n== %s ==\n", ev.Title)
	case adjugate.KindMatrix:
		fmt.Fprintf(&b, "%s%s:\n", indent, ev.Title)
		if ev.Matrix != nil {
			for _, row := range ev.Matrix.ToRows() {
				cells := make([]string, len(row))
				for j, v := range row {
					cells[j] = fraction.Format(v)
				}
				fmt.Fprintf(&b, "%s  | %s |\n", indent, strings.Join(cells, "  "))
			}
		}
	default:
		fmt.Fprintf(&b, "%s%s\n", indent, ev.Message)
	}
	_, t.err = io.WriteString(t.w, b.String())
}
