package components

import (
	"testing"

	"sysdash/ui/tui/core"
)

func TestDisplayStartKeepsHighlightVisible(t *testing.T) {
	// Property: for every highlight h in [0, n) and window height w <= n,
	// start <= h < start+w and 0 <= start <= n-w.
	const n = 25
	for w := 1; w <= n; w++ {
		for h := 0; h < n; h++ {
			s := &TableState{}
			s.SetNumItems(n)
			s.CurrentIndex = h
			start := s.DisplayStart(w)
			if start > h || h >= start+w {
				t.Fatalf("h=%d w=%d: window [%d, %d) does not contain highlight", h, w, start, start+w)
			}
			if start < 0 || start > n-w {
				t.Fatalf("h=%d w=%d: start %d out of range [0, %d]", h, w, start, n-w)
			}
		}
	}
}

func TestDisplayStartScrollsWithHighlight(t *testing.T) {
	s := &TableState{}
	s.SetNumItems(100)

	// Highlight below the window drags the window down.
	s.CurrentIndex = 50
	if start := s.DisplayStart(10); start != 41 {
		t.Errorf("Expected start 41 with highlight 50 and height 10, got %d", start)
	}
	// Moving back up inside the window leaves it alone.
	s.CurrentIndex = 45
	if start := s.DisplayStart(10); start != 41 {
		t.Errorf("Expected window unchanged at 41, got %d", start)
	}
	// Highlight above the window drags it up.
	s.CurrentIndex = 12
	if start := s.DisplayStart(10); start != 12 {
		t.Errorf("Expected start 12 after moving above window, got %d", start)
	}
}

func TestDisplayStartDegenerate(t *testing.T) {
	s := &TableState{}
	s.SetNumItems(0)
	if start := s.DisplayStart(10); start != 0 {
		t.Errorf("Expected start 0 for empty rows, got %d", start)
	}

	s.SetNumItems(5)
	if start := s.DisplayStart(0); start != 0 {
		t.Errorf("Expected start 0 for zero height, got %d", start)
	}

	// Window taller than the row set pins to zero.
	s.CurrentIndex = 4
	if start := s.DisplayStart(20); start != 0 {
		t.Errorf("Expected start 0 when window exceeds rows, got %d", start)
	}
}

func TestMoveClamping(t *testing.T) {
	s := &TableState{}
	s.SetNumItems(3)

	if status := s.MoveUp(1); status != core.Ignored {
		t.Errorf("Expected MoveUp at top to be ignored, got %v", status)
	}
	if status := s.MoveDown(1); status != core.Redraw || s.CurrentIndex != 1 {
		t.Errorf("Expected MoveDown to advance to 1, got status %v index %d", status, s.CurrentIndex)
	}
	if status := s.MoveDown(10); status != core.Redraw || s.CurrentIndex != 2 {
		t.Errorf("Expected MoveDown to clamp at 2, got status %v index %d", status, s.CurrentIndex)
	}
	if status := s.MoveDown(1); status != core.Ignored {
		t.Errorf("Expected MoveDown at bottom to be ignored, got %v", status)
	}

	empty := &TableState{}
	empty.SetNumItems(0)
	if status := empty.MoveDown(1); status != core.Ignored {
		t.Errorf("Expected moves on empty table to be ignored, got %v", status)
	}
}

func TestSetNumItemsClampsHighlight(t *testing.T) {
	s := &TableState{}
	s.SetNumItems(10)
	s.CurrentIndex = 9
	s.Offset = 5

	s.SetNumItems(3)
	if s.CurrentIndex != 2 {
		t.Errorf("Expected highlight clamped to 2, got %d", s.CurrentIndex)
	}
	if s.Offset > s.CurrentIndex {
		t.Errorf("Expected offset pulled back with highlight, got %d", s.Offset)
	}
}
