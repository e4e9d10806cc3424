package core

import (
	"sysdash/internal/collector"
	"sysdash/ui/tui/geom"
)

// LayoutRuleKind discriminates a widget's declared sizing preference.
type LayoutRuleKind int

const (
	// LayoutExpand grows to fill a share of leftover space, weighted by Value.
	LayoutExpand LayoutRuleKind = iota
	// LayoutLength is a fixed number of cells.
	LayoutLength
	// LayoutPercentage is a percentage of the parent's extent.
	LayoutPercentage
)

// LayoutRule is the sizing preference a widget reports to the layout solver.
// The widget never computes its own placement.
type LayoutRule struct {
	Kind  LayoutRuleKind
	Value int
}

// Expand returns a flexible rule with the given weight.
func Expand(weight int) LayoutRule { return LayoutRule{Kind: LayoutExpand, Value: weight} }

// Length returns a fixed-size rule of n cells.
func Length(n int) LayoutRule { return LayoutRule{Kind: LayoutLength, Value: n} }

// Percentage returns a rule for p percent of the parent extent.
func Percentage(p int) LayoutRule { return LayoutRule{Kind: LayoutPercentage, Value: p} }

// SelectableKind classifies how a widget participates in focus traversal.
type SelectableKind int

const (
	// Selectable widgets can receive focus directly.
	Selectable SelectableKind = iota
	// Unselectable widgets are skipped during focus traversal.
	Unselectable
	// RedirectTo forwards focus to another node when this one is selected.
	RedirectTo
)

// SelectableType is a widget's selectability classification. Target is only
// meaningful when Kind is RedirectTo.
type SelectableType struct {
	Kind   SelectableKind
	Target NodeID
}

// Redirect builds a SelectableType that forwards focus to target.
func Redirect(target NodeID) SelectableType {
	return SelectableType{Kind: RedirectTo, Target: target}
}

// DrawContext carries everything a widget needs to render one frame: the
// absolute area it was assigned (including border), whether it currently has
// focus, and the interaction-state store.
type DrawContext struct {
	Area     geom.Rect
	Selected bool
	State    *Store
}

// Widget is the full capability set of a dashboard widget. Defaults for
// everything optional come from embedding BaseWidget.
type Widget interface {
	Component

	// HandleSelectionLeft is offered a leftward selection movement before the
	// tree traverses away. Returning Handled keeps focus on this widget.
	HandleSelectionLeft() SelectionAction
	HandleSelectionRight() SelectionAction
	HandleSelectionUp() SelectionAction
	HandleSelectionDown() SelectionAction

	// PrettyName returns the widget's display label.
	PrettyName() string

	// Draw renders the widget into its assigned area. The returned string
	// must fill exactly ctx.Area.Width x ctx.Area.Height cells.
	Draw(ctx *DrawContext) string

	// UpdateData ingests the widget-relevant portion of a harvested
	// snapshot. Called once per harvest for every widget, before any widget
	// in the frame is drawn.
	UpdateData(snap *collector.Snapshot)

	// Width and Height declare sizing intent to the layout solver.
	Width() LayoutRule
	Height() LayoutRule

	// Expandable reports whether the widget may grow to fill extra space.
	Expandable() bool

	SelectableType() SelectableType
}

// BaseWidget provides the documented defaults for every optional Widget
// capability: events ignored, no-op draw and data update, flexible sizing,
// expandable, directly selectable.
type BaseWidget struct {
	BaseComponent
}

func (w *BaseWidget) HandleSelectionLeft() SelectionAction  { return NotHandled }
func (w *BaseWidget) HandleSelectionRight() SelectionAction { return NotHandled }
func (w *BaseWidget) HandleSelectionUp() SelectionAction    { return NotHandled }
func (w *BaseWidget) HandleSelectionDown() SelectionAction  { return NotHandled }

func (w *BaseWidget) Draw(*DrawContext) string { return "" }

func (w *BaseWidget) UpdateData(*collector.Snapshot) {}

func (w *BaseWidget) Width() LayoutRule { return Expand(1) }

func (w *BaseWidget) Height() LayoutRule { return Expand(1) }

func (w *BaseWidget) Expandable() bool { return true }

func (w *BaseWidget) SelectableType() SelectableType {
	return SelectableType{Kind: Selectable}
}
