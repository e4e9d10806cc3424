package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sysdash/ui/tui/core"
	"sysdash/ui/tui/styles"
)

// Carousel is a one-line pager over a set of child widgets that share one
// screen cell. Only the active child is laid out; the carousel itself never
// takes focus and instead redirects selection to that child.
type Carousel struct {
	core.BaseWidget
	children []core.NodeID
	names    []string
	active   int
}

func NewCarousel() *Carousel {
	return &Carousel{}
}

// AddChild registers a child node. The first child added starts active.
func (c *Carousel) AddChild(id core.NodeID, name string) {
	c.children = append(c.children, id)
	c.names = append(c.names, name)
}

// Active returns the node id of the currently shown child, or NoNode when
// the carousel has no children.
func (c *Carousel) Active() core.NodeID {
	if len(c.children) == 0 {
		return core.NoNode
	}
	return c.children[c.active]
}

// Children returns every registered child node id.
func (c *Carousel) Children() []core.NodeID { return c.children }

func (c *Carousel) Next() {
	if len(c.children) > 0 {
		c.active = (c.active + 1) % len(c.children)
	}
}

func (c *Carousel) Prev() {
	if len(c.children) > 0 {
		c.active = (c.active - 1 + len(c.children)) % len(c.children)
	}
}

func (c *Carousel) PrettyName() string { return "Carousel" }

func (c *Carousel) Expandable() bool { return false }

func (c *Carousel) Height() core.LayoutRule { return core.Length(1) }

// The carousel header is never the focus target; selecting it lands on the
// active child.
func (c *Carousel) SelectableType() core.SelectableType {
	if len(c.children) == 0 {
		return core.SelectableType{Kind: core.Unselectable}
	}
	return core.Redirect(c.children[c.active])
}

// Clicks on the outer two cells of either edge page through the children.
func (c *Carousel) HandleMouseEvent(ev tea.MouseMsg) core.Status {
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return core.Ignored
	}
	b := c.Bounds()
	if !b.Contains(ev.X, ev.Y) || len(c.children) < 2 {
		return core.Ignored
	}
	switch {
	case ev.X < b.Left()+2:
		c.Prev()
		return core.Redraw
	case ev.X >= b.Right()-2:
		c.Next()
		return core.Redraw
	default:
		return core.Ignored
	}
}

func (c *Carousel) Draw(ctx *core.DrawContext) string {
	if len(c.children) == 0 || ctx.Area.Width <= 0 {
		return ""
	}
	name := c.names[c.active]
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		"◀ ",
		lipgloss.NewStyle().
			Width(ctx.Area.Width-4).
			Align(lipgloss.Center).
			Foreground(styles.Highlight).
			Render(name),
		" ▶",
	)
	return line
}
