package geom

// Rect is an axis-aligned bounding box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRectCentered returns a w x h rect whose center sits on c
func NewRectCentered(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// TopLeft returns the rect origin
func (r Rect) TopLeft() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Center returns the center point
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MidBottom returns the middle of the bottom edge
func (r Rect) MidBottom() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H}
}

// SetLeft moves the rect so its left edge is at x
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rect so its right edge is at x
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rect so its top edge is at y
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rect so its bottom edge is at y
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenter moves the rect so its center is at c
func (r *Rect) SetCenter(c Vec2) {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
}

// SetMidBottom moves the rect so the middle of its bottom edge is at p
func (r *Rect) SetMidBottom(p Vec2) {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H
}

// Translate shifts the rect by d
func (r *Rect) Translate(d Vec2) {
	r.X += d.X
	r.Y += d.Y
}

// Intersects reports whether the two rects overlap.
// Rects that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}
