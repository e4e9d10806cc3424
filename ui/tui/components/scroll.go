package components

import "sysdash/ui/tui/core"

// TableState is the per-table interaction state persisted in the component
// registry: the scroll window, the highlighted row, and the sort column.
// It is keyed by the table's Key and mutated only by the owning table's
// draw and event handlers.
type TableState struct {
	// Offset is the first logical row of the visible window.
	Offset int
	// CurrentIndex is the highlighted logical row.
	CurrentIndex int
	// SortColumn is the active sort column index.
	SortColumn int
	// SortDescending flips the sort direction. Missing cells sort last
	// either way.
	SortDescending bool

	numItems int
}

// SetNumItems records the current row count and clamps the highlight and
// window into range. Shrinking row sets never leave the highlight dangling.
func (s *TableState) SetNumItems(n int) {
	if n < 0 {
		n = 0
	}
	s.numItems = n
	if s.CurrentIndex >= n {
		s.CurrentIndex = n - 1
	}
	if s.CurrentIndex < 0 {
		s.CurrentIndex = 0
	}
	if s.Offset > s.CurrentIndex {
		s.Offset = s.CurrentIndex
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// NumItems returns the last recorded row count.
func (s *TableState) NumItems() int { return s.numItems }

// DisplayStart computes (and persists) the first visible row for a window of
// the given height so that the highlighted row stays inside the window:
// start <= CurrentIndex < start+height and 0 <= start <= numItems-height.
func (s *TableState) DisplayStart(height int) int {
	if height <= 0 || s.numItems == 0 {
		s.Offset = 0
		return 0
	}

	maxStart := s.numItems - height
	if maxStart < 0 {
		maxStart = 0
	}

	start := s.Offset
	if s.CurrentIndex < start {
		start = s.CurrentIndex
	}
	if s.CurrentIndex >= start+height {
		start = s.CurrentIndex - height + 1
	}
	if start > maxStart {
		start = maxStart
	}
	if start < 0 {
		start = 0
	}
	s.Offset = start
	return start
}

// MoveDown moves the highlight down by n rows, clamped to the last row.
func (s *TableState) MoveDown(n int) core.Status {
	if s.numItems == 0 {
		return core.Ignored
	}
	next := s.CurrentIndex + n
	if next > s.numItems-1 {
		next = s.numItems - 1
	}
	if next == s.CurrentIndex {
		return core.Ignored
	}
	s.CurrentIndex = next
	return core.Redraw
}

// MoveUp moves the highlight up by n rows, clamped to the first row.
func (s *TableState) MoveUp(n int) core.Status {
	if s.numItems == 0 {
		return core.Ignored
	}
	next := s.CurrentIndex - n
	if next < 0 {
		next = 0
	}
	if next == s.CurrentIndex {
		return core.Ignored
	}
	s.CurrentIndex = next
	return core.Redraw
}

// SelectLogical moves the highlight to a logical row index. Out-of-range
// indices are ignored.
func (s *TableState) SelectLogical(index int) core.Status {
	if index < 0 || index >= s.numItems {
		return core.Ignored
	}
	if index == s.CurrentIndex {
		return core.NoRedraw
	}
	s.CurrentIndex = index
	return core.Redraw
}
