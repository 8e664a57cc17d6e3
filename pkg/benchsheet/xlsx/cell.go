// Package xlsx assembles SpreadsheetML packages from prepared sheets.
// It writes the zip container and every XML part directly.
package xlsx

import (
	"math"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"
)

// CellKind tags the variant held by a Cell.
type CellKind int

const (
	// CellEmpty emits a styled cell without content.
	CellEmpty CellKind = iota
	// CellNumber emits a bare numeric value.
	CellNumber
	// CellFormula emits a formula, with a cached result when one is known.
	CellFormula
	// CellText emits an inline string.
	CellText
)

// Cell is one rendered cell. The kind is decided once when the cell is built.
type Cell struct {
	Kind CellKind
	// Number is the value of a number cell or the cached result of a formula.
	Number float64
	// Cached reports whether a formula cell carries a result in Number.
	Cached bool
	// Formula is the expression without the leading "=".
	Formula string
	Text    string
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// NumberCell returns a numeric cell. NaN and infinities become empty cells.
func NumberCell(f float64) Cell {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Cell{}
	}
	return Cell{Kind: CellNumber, Number: f}
}

// FormulaCell returns a formula cell without a cached result.
func FormulaCell(expr string) Cell {
	return Cell{Kind: CellFormula, Formula: expr}
}

// FormulaCellWithValue returns a formula cell whose last computed result is v.
func FormulaCellWithValue(expr string, v float64) Cell {
	c := FormulaCell(expr)
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		c.Number, c.Cached = v, true
	}
	return c
}

// TextCell returns an inline string cell. The empty string yields an empty cell.
// Text is never interpreted as a formula, even with a leading "=".
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// CellOf converts a row value into a cell.
func CellOf(v models.Value) Cell {
	switch v.Kind {
	case models.ValueNumber:
		return NumberCell(v.Number)
	case models.ValueText:
		return TextCell(v.Text)
	}
	return EmptyCell()
}
