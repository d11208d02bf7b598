// SPDX-License-Identifier: MIT

package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/fraction"
	"github.com/katalvlaran/cofactor/matrix"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	resultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// Cells formats every entry of m for display.
func Cells(m *matrix.Dense) [][]string {
	rows := m.ToRows()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = fraction.Format(v)
		}
	}

	return out
}

// Matrix renders m as a bordered table.
func Matrix(m *matrix.Dense) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Rows(Cells(m)...).
		String()
}

// Text writes the step log: headings, arithmetic lines and matrix tables,
// indented by determinant depth.
func Text(w io.Writer, events []adjugate.TraceEvent) error {
	var b strings.Builder
	for _, ev := range events {
		indent := lipgloss.NewStyle().MarginLeft(2 * ev.Depth)
		switch ev.Kind {
		case adjugate.KindHeading:
			b.WriteString("\n")
			b.WriteString(headingStyle.Render(ev.Title))
		case adjugate.KindMatrix:
			block := titleStyle.Render(ev.Title)
			if ev.Matrix != nil {
				block += "\n" + Matrix(ev.Matrix)
			}
			b.WriteString(indent.Render(block))
		case adjugate.KindResult:
			b.WriteString(indent.Render(resultStyle.Render(ev.Message)))
		default:
			b.WriteString(indent.Render(ev.Message))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())

	return err
}
