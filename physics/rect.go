package physics

// Rect is an axis-aligned bounding box with the origin at its top-left
// corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r strictly overlaps other on both axes.
// Rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }
