package components

import (
	"fmt"
	"strings"
)

// DataCell is one orderable cell of a data row. Numeric cells compare by
// value; everything else compares lexically by display text.
type DataCell struct {
	Text    string
	Num     float64
	Numeric bool
}

// TextCell builds a cell that displays and sorts as text.
func TextCell(text string) DataCell {
	return DataCell{Text: text}
}

// NumberCell builds a cell that displays text but sorts by value.
func NumberCell(text string, value float64) DataCell {
	return DataCell{Text: text, Num: value, Numeric: true}
}

// PercentCell builds a numeric cell rendered as "NN.N%".
func PercentCell(value float64) DataCell {
	return NumberCell(fmt.Sprintf("%.1f%%", value), value)
}

// Compare orders c against other: negative if c sorts first ascending, zero
// if equal, positive otherwise.
func (c DataCell) Compare(other DataCell) int {
	if c.Numeric && other.Numeric {
		switch {
		case c.Num < other.Num:
			return -1
		case c.Num > other.Num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(c.Text, other.Text)
}

// DataRow is one logical record: an ordered sequence of cells, one per
// column. Rows may be ragged; a missing trailing cell sorts after every
// present value.
type DataRow struct {
	Cells []DataCell
}

// NewRow builds a row from cells in column order.
func NewRow(cells ...DataCell) DataRow {
	return DataRow{Cells: cells}
}

// Cell returns the cell at column index i, reporting false when the row has
// no cell there.
func (r DataRow) Cell(i int) (DataCell, bool) {
	if i < 0 || i >= len(r.Cells) {
		return DataCell{}, false
	}
	return r.Cells[i], true
}
