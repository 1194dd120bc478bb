package common

// Rect is an axis-aligned rectangle with X,Y at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Intersects reports whether the rectangles overlap. Touching edges do not
// count as an intersection.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Circle is a circle with a center point and radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

// IntersectsRect reports whether the circle overlaps the rectangle, using the
// closest point on the rectangle to the circle's center.
func (c Circle) IntersectsRect(r Rect) bool {
	cx := Clamp(c.X, r.Left(), r.Right())
	cy := Clamp(c.Y, r.Top(), r.Bottom())
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
