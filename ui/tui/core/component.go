// Package core defines the widget capability model: the Component and Widget
// interfaces every on-screen element implements, the widget tree with
// directional focus navigation, the persistent interaction-state registry,
// and the outbound message queue.
package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"sysdash/ui/tui/geom"
)

// Status is the result of dispatching an input event to a component.
type Status int

const (
	// Ignored means the event was not consumed and may bubble elsewhere.
	Ignored Status = iota
	// NoRedraw means the event was consumed but nothing on screen changed.
	NoRedraw
	// Redraw means the event was consumed and the component must be redrawn.
	Redraw
)

// SelectionAction is the result of offering a directional selection movement
// to the focused widget before the tree picks the next widget itself.
type SelectionAction int

const (
	// NotHandled tells the navigation layer to pick the next widget in that
	// direction.
	NotHandled SelectionAction = iota
	// Handled means the widget consumed the movement internally and focus
	// stays where it is.
	Handled
)

// Component is the base capability set shared by everything that occupies
// screen space. Bounds are absolute terminal coordinates; border bounds
// include any drawn border and default to the content bounds.
type Component interface {
	// HandleKeyEvent processes a key event. The default implementation
	// ignores the event.
	HandleKeyEvent(ev tea.KeyMsg) Status

	// HandleMouseEvent processes a mouse event. The default implementation
	// ignores the event.
	HandleMouseEvent(ev tea.MouseMsg) Status

	Bounds() geom.Rect
	SetBounds(r geom.Rect)
	BorderBounds() geom.Rect
	SetBorderBounds(r geom.Rect)

	// MouseIntersects reports whether the event position lies inside the
	// content bounds.
	MouseIntersects(ev tea.MouseMsg) bool

	// BorderIntersects reports whether the event position lies inside the
	// border bounds.
	BorderIntersects(ev tea.MouseMsg) bool
}

// BaseComponent provides default Component behavior for embedding. Border
// bounds track content bounds until SetBorderBounds is called explicitly.
type BaseComponent struct {
	bounds          geom.Rect
	borderBounds    geom.Rect
	hasBorderBounds bool
}

func (c *BaseComponent) HandleKeyEvent(tea.KeyMsg) Status { return Ignored }

func (c *BaseComponent) HandleMouseEvent(tea.MouseMsg) Status { return Ignored }

func (c *BaseComponent) Bounds() geom.Rect { return c.bounds }

func (c *BaseComponent) SetBounds(r geom.Rect) { c.bounds = r }

func (c *BaseComponent) BorderBounds() geom.Rect {
	if c.hasBorderBounds {
		return c.borderBounds
	}
	return c.bounds
}

func (c *BaseComponent) SetBorderBounds(r geom.Rect) {
	c.borderBounds = r
	c.hasBorderBounds = true
}

func (c *BaseComponent) MouseIntersects(ev tea.MouseMsg) bool {
	return c.Bounds().Contains(ev.X, ev.Y)
}

func (c *BaseComponent) BorderIntersects(ev tea.MouseMsg) bool {
	return c.BorderBounds().Contains(ev.X, ev.Y)
}
