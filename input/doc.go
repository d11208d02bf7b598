// SPDX-License-Identifier: MIT

// Package input turns user-supplied cells into square matrices for the
// adjugate engine.
//
// Three sources are accepted:
//
//	ParseRows("4 7; 2 6")          // text rows, ';' or newline separated
//	ParseDocument(data)            // YAML or JSON document with a "matrix" key
//	LoadFile("run.yaml")           // the same document read from disk
//
// Parsing is strict: a blank or non-numeric cell fails with
// adjugate.ErrInvalidInput. WithBlankAsZero reads blank cells as 0 instead,
// which is how form-style front ends usually treat an empty field.
package input
