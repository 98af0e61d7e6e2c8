package physics

import (
	"fmt"
	"math"

	"github.com/milk9111/platformkit/common"
)

// Ramp is an immutable sloped floor: a right triangle filling its
// bounding box, rising toward the left or the right edge. Entities rest
// on the hypotenuse with their downhill bottom corner.
type Ramp struct {
	bounds Rect
	left   bool
	// ratio is the slope steepness h/w.
	ratio float64
	// factor is w/len(hypotenuse), the horizontal damping applied on
	// first contact while moving into the rising side.
	factor float64
}

// NewRamp builds a ramp at (x, y) with the given bounding box. left
// means the surface height increases leftward. Non-positive sizes are a
// contract violation.
func NewRamp(x, y, w, h float64, left bool) *Ramp {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("physics: ramp size must be positive, got %gx%g", w, h))
	}
	return &Ramp{
		bounds: Rect{X: x, Y: y, Width: w, Height: h},
		left:   left,
		ratio:  h / w,
		factor: w / math.Hypot(w, h),
	}
}

func (r *Ramp) Bounds() Rect   { return r.bounds }
func (r *Ramp) Passable() bool { return false }
func (r *Ramp) Left() bool     { return r.left }
func (r *Ramp) Ratio() float64 { return r.ratio }

// Factor returns the horizontal speed damping applied on first contact.
func (r *Ramp) Factor() float64 { return r.factor }

// cornerX returns the x coordinate of the bottom corner an entity with
// the given bounds touches the slope with: the uphill-side corner.
func (r *Ramp) cornerX(e Rect) float64 {
	if r.left {
		return e.X
	}
	return e.Right()
}

// surfaceY returns the y coordinate of the slope surface at horizontal
// position px. Beyond the footprint the ramp extends flat from its
// highest or lowest edge.
func (r *Ramp) surfaceY(px float64) float64 {
	if r.left {
		if px <= r.bounds.X {
			return r.bounds.Y
		}
		if px >= r.bounds.Right() {
			return r.bounds.Bottom()
		}
		return r.bounds.Y + r.ratio*(px-r.bounds.X)
	}
	if px <= r.bounds.X {
		return r.bounds.Bottom()
	}
	if px >= r.bounds.Right() {
		return r.bounds.Y
	}
	return r.bounds.Bottom() - r.ratio*(px-r.bounds.X)
}

func (r *Ramp) overlapsSpan(e Rect) bool {
	return e.X < r.bounds.Right() && e.Right() > r.bounds.X
}

// RestingY returns the y position an entity with the given bounds would
// have seated on the slope at its current x.
func (r *Ramp) RestingY(e Rect) float64 {
	return r.surfaceY(r.cornerX(e)) - e.Height
}

// RestingX returns the x position an entity with the given bounds would
// have seated on the slope at its current y.
func (r *Ramp) RestingX(e Rect) float64 {
	if r.left {
		return r.bounds.X + (e.Bottom()-r.bounds.Y)/r.ratio
	}
	return r.bounds.X + (r.bounds.Bottom()-e.Bottom())/r.ratio - e.Width
}

// Contact reports whether an entity with the given bounds is exactly
// seated on the slope, to fixed precision.
func (r *Ramp) Contact(e Rect) bool {
	return r.overlapsSpan(e) && common.RoundEq(e.Y, r.RestingY(e))
}

// Intersect reports whether an entity with the given bounds has
// penetrated the slope volume: strictly below the resting position and
// strictly above the ramp's bottom edge.
func (r *Ramp) Intersect(e Rect) bool {
	return r.overlapsSpan(e) && e.Y > r.RestingY(e) && e.Y < r.bounds.Bottom()
}

// CanCollide reports whether an entity sweeping the given bounds this
// frame could touch the ramp: horizontal overlap with the footprint and
// the swept box's bottom reaching below the surface.
func (r *Ramp) CanCollide(swept Rect) bool {
	if !r.overlapsSpan(swept) {
		return false
	}
	return swept.Bottom() > r.surfaceY(r.cornerX(swept)) && swept.Y < r.bounds.Bottom()
}

// Resolve pushes an interpenetrating entity back onto the slope. Moving
// against the rising side while previously falling shifts the entity
// horizontally by a blend of both speed components before seating; the
// first contact while countering the slope damps horizontal speed by
// the ramp factor. Vertical speed is always zeroed.
func (r *Ramp) Resolve(m *Movement) {
	if !r.Intersect(m.Bounds()) {
		return
	}

	counter := (r.left && m.PrevSpeed.X < 0) || (!r.left && m.PrevSpeed.X > 0)
	if counter && m.PrevSpeed.Y > 0 && m.PrevSpeed.X != 0 {
		// Heuristic blend between the two velocity components, weighted
		// by slope steepness. Intentionally not an exact slope-line
		// intersection.
		dx := (r.RestingX(m.Bounds()) - m.Pos.X) / (math.Abs(m.PrevSpeed.Y/m.PrevSpeed.X) + r.ratio)
		m.Pos.X += dx
	}
	m.Pos.Y = r.RestingY(m.Bounds())

	if counter && m.Contacts.Bottom != Obstacle(r) {
		m.Speed.X *= r.factor
	}
	m.Speed.Y = 0
}
