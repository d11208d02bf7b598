// SPDX-License-Identifier: MIT

// Package input - cells to *matrix.Dense.
//
// Every source funnels into FromCells, where a nil cell means "blank".
// Checks, in order: non-empty → square → order bound → cell values.

package input

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/matrix"
)

// ErrEmpty is returned when no rows were supplied.
var ErrEmpty = errors.New("input: empty matrix")

// Document is the YAML/JSON shape of a run file or request body.
// A null cell is blank.
type Document struct {
	Matrix   [][]*float64 `yaml:"matrix" json:"matrix"`
	Steps    bool         `yaml:"steps" json:"steps"`
	Strategy string       `yaml:"strategy" json:"strategy"`
}

// FromCells validates cells and copies them into a fresh square Dense.
//
// Errors:
//   - ErrEmpty when there are no rows.
//   - adjugate.ErrNonSquare when any row length differs from the row count.
//   - adjugate.ErrTooLarge when the order exceeds WithMaxOrder.
//   - adjugate.ErrInvalidInput for a blank cell (strict mode) or NaN/±Inf.
func FromCells(cells [][]*float64, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	n := len(cells)
	if n == 0 {
		return nil, ErrEmpty
	}
	for i, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("input: row %d has %d cells in a %d-row matrix: %w",
				i+1, len(row), n, adjugate.ErrNonSquare)
		}
	}
	if o.maxOrder > 0 && n > o.maxOrder {
		return nil, fmt.Errorf("input: order %d > %d: %w", n, o.maxOrder, adjugate.ErrTooLarge)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	for i, row := range cells {
		for j, c := range row {
			var v float64
			switch {
			case c == nil && o.blankAsZero:
				v = 0
			case c == nil:
				return nil, fmt.Errorf("input: cell a(%d,%d) is blank: %w", i+1, j+1, adjugate.ErrInvalidInput)
			case math.IsNaN(*c) || math.IsInf(*c, 0):
				return nil, fmt.Errorf("input: cell a(%d,%d) = %v: %w", i+1, j+1, *c, adjugate.ErrInvalidInput)
			default:
				v = *c
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("input: %w", err)
			}
		}
	}

	return m, nil
}

// ParseRows reads a matrix written as text rows. Rows are separated by ';'
// or newlines. Cells are separated by commas when a row contains one
// (an empty field is a blank cell), otherwise by whitespace.
//
//	"4 7; 2 6"   "1, , 3\n4, 5, 6\n7, 8, 9"
func ParseRows(s string, opts ...Option) (*matrix.Dense, error) {
	cells, err := splitRows(s)
	if err != nil {
		return nil, err
	}

	return FromCells(cells, opts...)
}

func splitRows(s string) ([][]*float64, error) {
	var cells [][]*float64
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var fields []string
		if strings.Contains(line, ",") {
			fields = strings.Split(line, ",")
		} else {
			fields = strings.Fields(line)
		}
		row := make([]*float64, len(fields))
		for j, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("input: row %d cell %d %q: %w", len(cells)+1, j+1, f, adjugate.ErrInvalidInput)
			}
			row[j] = &v
		}
		cells = append(cells, row)
	}

	return cells, nil
}

// ParseDocument decodes a YAML (or JSON, which YAML accepts) document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("input: decode document: %w", err)
	}
	if len(doc.Matrix) == 0 {
		return nil, ErrEmpty
	}

	return &doc, nil
}

// LoadFile reads and decodes a document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return ParseDocument(data)
}

// Dense builds the document's matrix; see FromCells.
func (d *Document) Dense(opts ...Option) (*matrix.Dense, error) {
	return FromCells(d.Matrix, opts...)
}
