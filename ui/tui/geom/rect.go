// Package geom provides the absolute-coordinate rectangle math used for
// widget bounds and mouse hit-testing.
package geom

// Rect is an axis-aligned rectangle in absolute terminal cell coordinates.
// The zero value is an empty rectangle at the origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect constructs a Rect from a top-left corner and a size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the leftmost column (inclusive).
func (r Rect) Left() int { return r.X }

// Right returns the column one past the rightmost (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the topmost row (inclusive).
func (r Rect) Top() int { return r.Y }

// Bottom returns the row one past the bottommost (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside r. Both axes are
// half-open: a rectangle contains its left and top edges but not its right
// and bottom edges, so a zero-width or zero-height rectangle contains
// nothing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Inset returns r shrunk by n cells on every side. Width and height floor at
// zero.
func (r Rect) Inset(n int) Rect {
	w := r.Width - 2*n
	h := r.Height - 2*n
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + n, Y: r.Y + n, Width: w, Height: h}
}

// CenterX returns the horizontal center column of r.
func (r Rect) CenterX() int { return r.X + r.Width/2 }

// CenterY returns the vertical center row of r.
func (r Rect) CenterY() int { return r.Y + r.Height/2 }
