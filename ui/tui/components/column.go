// Package components holds the generic stateful UI building blocks the
// concrete widgets are assembled from, chiefly the sortable, scrollable
// text table.
package components

import (
	runewidth "github.com/mattn/go-runewidth"
)

// ConstraintKind discriminates a column width constraint.
type ConstraintKind int

const (
	// ConstraintFill grows to the column name's width, capped by the
	// remaining width budget.
	ConstraintFill ConstraintKind = iota
	// ConstraintLength is a fixed cell count.
	ConstraintLength
	// ConstraintPercentage is a percentage of the whole table width.
	ConstraintPercentage
	// ConstraintMaxLength caps the desired width at a fixed cell count.
	ConstraintMaxLength
	// ConstraintMaxPercentage caps the desired width at a percentage of the
	// whole table width.
	ConstraintMaxPercentage
)

// Constraint is a column width constraint variant.
type Constraint struct {
	Kind   ConstraintKind
	Amount int
}

// Fill returns the default grow-to-name constraint.
func Fill() Constraint { return Constraint{Kind: ConstraintFill} }

// Length returns a fixed-width constraint of n cells.
func Length(n int) Constraint { return Constraint{Kind: ConstraintLength, Amount: n} }

// Percentage returns a constraint of p percent of the table width.
func Percentage(p int) Constraint { return Constraint{Kind: ConstraintPercentage, Amount: p} }

// MaxLength caps the column's desired width at n cells.
func MaxLength(n int) Constraint { return Constraint{Kind: ConstraintMaxLength, Amount: n} }

// MaxPercentage caps the column's desired width at p percent of the table
// width.
func MaxPercentage(p int) Constraint { return Constraint{Kind: ConstraintMaxPercentage, Amount: p} }

// TextColumn is one declared table column. Declaration order is display
// order and the basis for width allocation.
type TextColumn struct {
	Name       string
	Constraint Constraint
}

// NewColumn declares a column with the default Fill constraint.
func NewColumn(name string) TextColumn {
	return TextColumn{Name: name, Constraint: Fill()}
}

// desiredWidth is the column's natural width: the rendered name plus one
// trailing cell of padding.
func (c TextColumn) desiredWidth() int {
	return runewidth.StringWidth(c.Name) + 1
}

// ResolveColumnWidths computes per-column widths for the given total width.
// Columns are evaluated left to right against the remaining budget, so later
// columns see a shrunk budget, and the budget is floored at zero so no width
// ever goes negative. Leftover width is then redistributed evenly with the
// first leftover%n columns receiving one extra cell, making the sum of
// resolved widths exactly equal the total width whenever at least one column
// exists.
func ResolveColumnWidths(columns []TextColumn, totalWidth int) []int {
	if totalWidth < 0 {
		totalWidth = 0
	}
	remaining := totalWidth

	widths := make([]int, len(columns))
	for i, col := range columns {
		var w int
		switch col.Constraint.Kind {
		case ConstraintFill:
			w = minInt(col.desiredWidth(), remaining)
		case ConstraintLength:
			w = minInt(col.Constraint.Amount, remaining)
		case ConstraintPercentage:
			w = minInt(totalWidth*col.Constraint.Amount/100, remaining)
		case ConstraintMaxLength:
			w = minInt(minInt(col.Constraint.Amount, col.desiredWidth()), remaining)
		case ConstraintMaxPercentage:
			w = minInt(minInt(col.desiredWidth(), totalWidth*col.Constraint.Amount/100), remaining)
		}
		if w < 0 {
			w = 0
		}
		remaining -= w
		widths[i] = w
	}

	if len(widths) > 0 {
		perColumn := remaining / len(widths)
		extra := remaining % len(widths)
		for i := range widths {
			widths[i] += perColumn
			if i < extra {
				widths[i]++
			}
		}
	}

	return widths
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
