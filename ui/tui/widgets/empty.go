package widgets

import "sysdash/ui/tui/core"

// Empty fills a layout cell with nothing. It draws blank space and is
// skipped by focus traversal.
type Empty struct {
	core.BaseWidget
}

func NewEmpty() *Empty { return &Empty{} }

func (e *Empty) PrettyName() string { return "" }

func (e *Empty) SelectableType() core.SelectableType {
	return core.SelectableType{Kind: core.Unselectable}
}
