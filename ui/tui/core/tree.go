package core

import (
	"errors"
	"fmt"
)

// NodeID identifies a widget node in the tree. IDs are assigned in insertion
// order and stay valid until the tree is rebuilt.
type NodeID int

// NoNode is the absent-node sentinel.
const NoNode NodeID = -1

// Direction is a directional selection input.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// ErrRedirectCycle is returned when a redirect chain loops back on itself.
// A cycle is a configuration error and is rejected at construction time.
var ErrRedirectCycle = errors.New("redirect cycle in widget tree")

// Tree owns the widget nodes and the current focus. Nodes are destroyed and
// recreated on layout rebuild; interaction state lives in the Store instead,
// keyed by component identity, precisely so it survives that recreation.
type Tree struct {
	widgets  []Widget
	selected NodeID
}

// NewTree returns an empty widget tree with nothing focused.
func NewTree() *Tree {
	return &Tree{selected: NoNode}
}

// Add appends a widget and returns its node id.
func (t *Tree) Add(w Widget) NodeID {
	t.widgets = append(t.widgets, w)
	return NodeID(len(t.widgets) - 1)
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.widgets) }

// Widget returns the widget at id, or nil if id is out of range.
func (t *Tree) Widget(id NodeID) Widget {
	if id < 0 || int(id) >= len(t.widgets) {
		return nil
	}
	return t.widgets[id]
}

// Widgets returns the nodes in insertion order. The slice is shared; callers
// must not mutate it.
func (t *Tree) Widgets() []Widget { return t.widgets }

// Selected returns the focused node id, or NoNode.
func (t *Tree) Selected() NodeID { return t.selected }

// SelectedWidget returns the focused widget, or nil.
func (t *Tree) SelectedWidget() Widget { return t.Widget(t.selected) }

// Select moves focus to id after resolving any redirect chain. Selecting an
// unselectable node is a no-op and returns false.
func (t *Tree) Select(id NodeID) bool {
	resolved, err := t.ResolveSelectable(id)
	if err != nil || resolved == NoNode {
		return false
	}
	t.selected = resolved
	return true
}

// ResolveSelectable follows redirect indirections starting at id until it
// reaches a Selectable node. It returns NoNode for unselectable terminals
// and ErrRedirectCycle if the chain revisits a node.
func (t *Tree) ResolveSelectable(id NodeID) (NodeID, error) {
	visited := make(map[NodeID]bool)
	for {
		w := t.Widget(id)
		if w == nil {
			return NoNode, fmt.Errorf("redirect target %d does not exist", id)
		}
		if visited[id] {
			return NoNode, ErrRedirectCycle
		}
		visited[id] = true

		st := w.SelectableType()
		switch st.Kind {
		case Selectable:
			return id, nil
		case Unselectable:
			return NoNode, nil
		case RedirectTo:
			id = st.Target
		default:
			return NoNode, fmt.Errorf("unknown selectable kind %d", st.Kind)
		}
	}
}

// ValidateRedirects checks every node's redirect chain for cycles and
// dangling targets. Call it once after construction; a failure here is a
// configuration error, not a runtime fault.
func (t *Tree) ValidateRedirects() error {
	for id := range t.widgets {
		if _, err := t.ResolveSelectable(NodeID(id)); err != nil {
			return fmt.Errorf("node %d: %w", id, err)
		}
	}
	return nil
}

// MoveSelection handles a directional selection input using the two-phase
// protocol: the focused widget gets to consume the movement first, and only
// if it reports NotHandled does the tree search for the nearest widget in
// that direction. Returns true if anything changed on screen.
func (t *Tree) MoveSelection(dir Direction) bool {
	w := t.SelectedWidget()
	if w == nil {
		return false
	}

	var action SelectionAction
	switch dir {
	case DirLeft:
		action = w.HandleSelectionLeft()
	case DirRight:
		action = w.HandleSelectionRight()
	case DirUp:
		action = w.HandleSelectionUp()
	case DirDown:
		action = w.HandleSelectionDown()
	}
	if action == Handled {
		return true
	}

	candidate := t.nearestInDirection(t.selected, dir)
	if candidate == NoNode {
		return false
	}
	resolved, err := t.ResolveSelectable(candidate)
	if err != nil || resolved == NoNode || resolved == t.selected {
		return false
	}
	t.selected = resolved
	return true
}

// nearestInDirection finds the node whose border-bounds center lies in the
// given direction from the current node's center, minimizing squared
// Euclidean distance between centers. Unselectable terminals are skipped.
func (t *Tree) nearestInDirection(from NodeID, dir Direction) NodeID {
	cur := t.Widget(from)
	if cur == nil {
		return NoNode
	}
	cx := cur.BorderBounds().CenterX()
	cy := cur.BorderBounds().CenterY()

	best := NoNode
	bestDist := 0
	for id, w := range t.widgets {
		nid := NodeID(id)
		if nid == from {
			continue
		}
		resolved, err := t.ResolveSelectable(nid)
		if err != nil || resolved == NoNode || resolved == from {
			continue
		}

		b := w.BorderBounds()
		if b.Width == 0 || b.Height == 0 {
			continue
		}
		x := b.CenterX()
		y := b.CenterY()

		inDirection := false
		switch dir {
		case DirLeft:
			inDirection = x < cx
		case DirRight:
			inDirection = x > cx
		case DirUp:
			inDirection = y < cy
		case DirDown:
			inDirection = y > cy
		}
		if !inDirection {
			continue
		}

		dx := x - cx
		dy := y - cy
		dist := dx*dx + dy*dy
		if best == NoNode || dist < bestDist {
			best = nid
			bestDist = dist
		}
	}
	return best
}
