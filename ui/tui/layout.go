package tui

import (
	"sysdash/ui/tui/core"
	"sysdash/ui/tui/geom"
)

// Cell places one widget node in a layout row.
type Cell struct {
	ID    core.NodeID
	Width core.LayoutRule
}

// Row is one horizontal band of the dashboard grid.
type Row struct {
	Height core.LayoutRule
	Cells  []Cell
}

// Layout is the static dashboard grid. Widgets never place themselves; Apply
// pushes computed bounds into the tree after every resize.
type Layout struct {
	Rows []Row
}

// splitExtent divides total cells among the rules: fixed lengths and
// percentages are taken first, then leftover space is shared among Expand
// rules by weight, with the remainder going to the leading ones.
func splitExtent(total int, rules []core.LayoutRule) []int {
	sizes := make([]int, len(rules))
	remaining := total
	weightSum := 0

	for i, rule := range rules {
		switch rule.Kind {
		case core.LayoutLength:
			sizes[i] = rule.Value
		case core.LayoutPercentage:
			sizes[i] = total * rule.Value / 100
		case core.LayoutExpand:
			weightSum += rule.Value
			continue
		}
		if sizes[i] > remaining {
			sizes[i] = remaining
		}
		remaining -= sizes[i]
	}

	if weightSum <= 0 {
		return sizes
	}
	share := remaining / weightSum
	extra := remaining % weightSum
	for i, rule := range rules {
		if rule.Kind != core.LayoutExpand {
			continue
		}
		sizes[i] = share * rule.Value
		if extra > 0 {
			take := rule.Value
			if take > extra {
				take = extra
			}
			sizes[i] += take
			extra -= take
		}
	}
	return sizes
}

// carouselNode is how the layout recognizes a pager widget: the header line
// gets the top of the cell, the active child the remainder, and inactive
// children are parked on an empty rectangle so navigation and drawing skip
// them.
type carouselNode interface {
	Active() core.NodeID
	Children() []core.NodeID
}

// Apply computes bounds for every widget in the tree from the grid rules and
// the total screen area. Border bounds get the full cell; content bounds are
// inset by one for widgets that draw a frame.
func (l Layout) Apply(t *core.Tree, area geom.Rect) {
	heightRules := make([]core.LayoutRule, len(l.Rows))
	for i, row := range l.Rows {
		heightRules[i] = row.Height
	}
	heights := splitExtent(area.Height, heightRules)

	y := area.Y
	for ri, row := range l.Rows {
		widthRules := make([]core.LayoutRule, len(row.Cells))
		for i, cell := range row.Cells {
			widthRules[i] = cell.Width
		}
		widths := splitExtent(area.Width, widthRules)

		x := area.X
		for ci, cell := range row.Cells {
			placeNode(t, cell.ID, geom.NewRect(x, y, widths[ci], heights[ri]))
			x += widths[ci]
		}
		y += heights[ri]
	}
}

func placeNode(t *core.Tree, id core.NodeID, cell geom.Rect) {
	w := t.Widget(id)
	if w == nil {
		return
	}

	if pager, ok := w.(carouselNode); ok {
		header := geom.NewRect(cell.X, cell.Y, cell.Width, min(1, cell.Height))
		w.SetBorderBounds(header)
		w.SetBounds(header)

		body := geom.NewRect(cell.X, cell.Y+header.Height, cell.Width, cell.Height-header.Height)
		active := pager.Active()
		for _, child := range pager.Children() {
			if child == active {
				placeNode(t, child, body)
			} else {
				placeNode(t, child, geom.Rect{})
			}
		}
		return
	}

	w.SetBorderBounds(cell)
	w.SetBounds(cell.Inset(1))
}
