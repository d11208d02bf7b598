// SPDX-License-Identifier: MIT

package render

import (
	"html/template"
	"io"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/fraction"
)

// htmlCell is a matrix cell: either plain text or a p/q fraction.
type htmlCell struct {
	Text     string
	Num, Den int64
	Frac     bool
}

type htmlEvent struct {
	Kind    string
	Title   string
	Message string
	Rows    [][]htmlCell
}

type htmlPage struct {
	Events []htmlEvent
	Error  string
}

var page = template.Must(template.New("steps").Parse(`<h2>Matrix Inverse Calculation Steps:</h2>
{{- range .Events}}
{{- if eq .Kind "heading"}}
<p><strong>{{.Title}}</strong></p>
{{- else if eq .Kind "matrix"}}
<h3>{{.Title}}</h3>
<table class="matrix-table">
{{- range .Rows}}
<tr>{{range .}}<td>{{if .Frac}}<sup>{{.Num}}</sup> / <sub>{{.Den}}</sub>{{else}}{{.Text}}{{end}}</td>{{end}}</tr>
{{- end}}
</table><hr/>
{{- else if eq .Kind "result"}}
<p><b>{{.Message}}</b></p>
{{- else}}
<p>{{.Message}}</p>
{{- end}}
{{- end}}
{{- with .Error}}
<p><b style="color: red;">Error: {{.}}</b></p>
{{- end}}
`))

// HTML writes the step log as an HTML fragment. Fractions render as
// <sup>p</sup> / <sub>q</sub>. A non-nil failure is appended as an error line.
func HTML(w io.Writer, events []adjugate.TraceEvent, failure error) error {
	p := htmlPage{Events: make([]htmlEvent, 0, len(events))}
	for _, ev := range events {
		he := htmlEvent{Kind: ev.Kind.String(), Title: ev.Title, Message: ev.Message}
		if ev.Matrix != nil {
			for _, row := range ev.Matrix.ToRows() {
				cells := make([]htmlCell, len(row))
				for j, v := range row {
					cells[j] = cellOf(v)
				}
				he.Rows = append(he.Rows, cells)
			}
		}
		p.Events = append(p.Events, he)
	}
	if failure != nil {
		p.Error = failure.Error()
	}

	return page.Execute(w, p)
}

func cellOf(v float64) htmlCell {
	s := fraction.Format(v)
	fr, err := fraction.Approximate(v)
	if err != nil || fr.IsInteger() || s != fr.String() {
		return htmlCell{Text: s}
	}

	return htmlCell{Num: fr.Num, Den: fr.Den, Frac: true}
}
