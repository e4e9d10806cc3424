package core

import (
	"errors"
	"testing"

	"sysdash/ui/tui/geom"
)

// stubWidget is a minimal widget with a fixed selectability and an optional
// internal handler for upward movements.
type stubWidget struct {
	BaseWidget
	name       string
	selectable SelectableType
	consumeUp  bool
}

func (w *stubWidget) PrettyName() string { return w.name }

func (w *stubWidget) SelectableType() SelectableType { return w.selectable }

func (w *stubWidget) HandleSelectionUp() SelectionAction {
	if w.consumeUp {
		return Handled
	}
	return NotHandled
}

func placed(name string, r geom.Rect) *stubWidget {
	w := &stubWidget{name: name, selectable: SelectableType{Kind: Selectable}}
	w.SetBorderBounds(r)
	w.SetBounds(r)
	return w
}

// grid2x2 builds:
//
//	A B
//	C D
func grid2x2() (*Tree, [4]NodeID) {
	t := NewTree()
	a := t.Add(placed("A", geom.NewRect(0, 0, 10, 5)))
	b := t.Add(placed("B", geom.NewRect(10, 0, 10, 5)))
	c := t.Add(placed("C", geom.NewRect(0, 5, 10, 5)))
	d := t.Add(placed("D", geom.NewRect(10, 5, 10, 5)))
	return t, [4]NodeID{a, b, c, d}
}

func TestMoveSelectionAcrossGrid(t *testing.T) {
	tree, ids := grid2x2()
	tree.Select(ids[0])

	moves := []struct {
		dir  Direction
		want NodeID
	}{
		{DirRight, ids[1]},
		{DirDown, ids[3]},
		{DirLeft, ids[2]},
		{DirUp, ids[0]},
	}
	for _, m := range moves {
		if !tree.MoveSelection(m.dir) {
			t.Fatalf("Expected movement %v to succeed", m.dir)
		}
		if tree.Selected() != m.want {
			t.Fatalf("Expected selection %d after %v, got %d", m.want, m.dir, tree.Selected())
		}
	}
}

func TestMoveSelectionAtEdgeIsNoop(t *testing.T) {
	tree, ids := grid2x2()
	tree.Select(ids[0])

	if tree.MoveSelection(DirLeft) {
		t.Error("Expected no movement past the left edge")
	}
	if tree.Selected() != ids[0] {
		t.Errorf("Expected selection to stay at %d, got %d", ids[0], tree.Selected())
	}
}

func TestMoveSelectionPrefersNearestCandidate(t *testing.T) {
	tree := NewTree()
	from := tree.Add(placed("from", geom.NewRect(0, 0, 10, 5)))
	near := tree.Add(placed("near", geom.NewRect(12, 0, 10, 5)))
	tree.Add(placed("far", geom.NewRect(40, 0, 10, 5)))
	tree.Select(from)

	tree.MoveSelection(DirRight)
	if tree.Selected() != near {
		t.Errorf("Expected nearest candidate %d, got %d", near, tree.Selected())
	}
}

func TestWidgetConsumesMovementFirst(t *testing.T) {
	tree, ids := grid2x2()
	tree.Select(ids[2]) // C, which has A above it

	c := tree.Widget(ids[2]).(*stubWidget)
	c.consumeUp = true

	if !tree.MoveSelection(DirUp) {
		t.Fatal("Expected handled movement to report a redraw")
	}
	if tree.Selected() != ids[2] {
		t.Errorf("Expected focus to stay on consuming widget, got %d", tree.Selected())
	}

	// Once the widget stops consuming, focus traverses up to A.
	c.consumeUp = false
	tree.MoveSelection(DirUp)
	if tree.Selected() != ids[0] {
		t.Errorf("Expected focus to move to %d, got %d", ids[0], tree.Selected())
	}
}

func TestUnselectableSkippedDuringTraversal(t *testing.T) {
	tree := NewTree()
	from := tree.Add(placed("from", geom.NewRect(0, 0, 10, 5)))
	blank := placed("blank", geom.NewRect(10, 0, 10, 5))
	blank.selectable = SelectableType{Kind: Unselectable}
	tree.Add(blank)
	target := tree.Add(placed("target", geom.NewRect(20, 0, 10, 5)))
	tree.Select(from)

	tree.MoveSelection(DirRight)
	if tree.Selected() != target {
		t.Errorf("Expected traversal to skip unselectable node, got %d", tree.Selected())
	}
}

func TestRedirectResolution(t *testing.T) {
	tree := NewTree()
	target := tree.Add(placed("target", geom.NewRect(0, 0, 10, 5)))
	hop := placed("hop", geom.NewRect(10, 0, 10, 5))
	hop.selectable = Redirect(target)
	hopID := tree.Add(hop)
	outer := placed("outer", geom.NewRect(20, 0, 10, 5))
	outer.selectable = Redirect(hopID)
	outerID := tree.Add(outer)

	if err := tree.ValidateRedirects(); err != nil {
		t.Fatalf("Expected valid redirect chain, got %v", err)
	}

	resolved, err := tree.ResolveSelectable(outerID)
	if err != nil {
		t.Fatalf("ResolveSelectable failed: %v", err)
	}
	if resolved != target {
		t.Errorf("Expected chain to terminate at %d, got %d", target, resolved)
	}

	if !tree.Select(outerID) {
		t.Fatal("Expected Select on redirect node to succeed")
	}
	if tree.Selected() != target {
		t.Errorf("Expected focus on redirect target %d, got %d", target, tree.Selected())
	}
}

func TestRedirectCycleRejected(t *testing.T) {
	tree := NewTree()
	a := placed("a", geom.NewRect(0, 0, 10, 5))
	b := placed("b", geom.NewRect(10, 0, 10, 5))
	aID := tree.Add(a)
	bID := tree.Add(b)
	a.selectable = Redirect(bID)
	b.selectable = Redirect(aID)

	err := tree.ValidateRedirects()
	if !errors.Is(err, ErrRedirectCycle) {
		t.Errorf("Expected ErrRedirectCycle, got %v", err)
	}
}
