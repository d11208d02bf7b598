// SPDX-License-Identifier: MIT

// Package render presents a recorded inversion: a terminal step log with
// bordered matrix tables, or an HTML page with the same content.
// Every matrix cell is printed through the fraction package, so 0.6 shows
// as 3/5 and near-integers as integers.
package render
