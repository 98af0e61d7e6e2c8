package physics

import (
	"fmt"
	"math"

	"github.com/milk9111/platformkit/common"
)

// Contacts holds the obstacle touching each face of an entity this
// frame, or nil. At most one obstacle per side, chosen by scan order.
type Contacts struct {
	Top    Obstacle
	Bottom Obstacle
	Left   Obstacle
	Right  Obstacle
}

// Movement is the per-entity integrator and collision resolver. It owns
// the entity's kinematic state and is mutated by exactly one stepping
// call per frame: Move, MoveWithSpeed, MoveCarrying*, MoveTo,
// MoveAngle, or Cycle*.
type Movement struct {
	cfg Config

	Pos  Vector
	Size Vector
	Mass float64

	Speed Vector
	// PrevSpeed is the post-clamp snapshot taken before displacement,
	// consumed by ramp resolution and carrying.
	PrevSpeed Vector
	MaxSpeed  Vector
	// StoredForces is a one-shot impulse consumed and reset by the next
	// force-based step. Jumps and knockback are injected here.
	StoredForces Vector

	Contacts Contacts

	passable bool

	// waypoint patrol state
	cycleIndex   int
	cycleDwell   int
	cycleStopped bool
}

// NewMovement builds movement state for an entity at pos with the given
// size, mass, and per-axis speed limit. Non-positive sizes and masses
// are contract violations.
func NewMovement(cfg Config, pos, size Vector, mass float64, maxSpeed Vector) *Movement {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("physics: movement size must be positive, got %gx%g", size.X, size.Y))
	}
	if mass <= 0 {
		panic(fmt.Sprintf("physics: movement mass must be positive, got %g", mass))
	}
	return &Movement{
		cfg:      cfg,
		Pos:      pos,
		Size:     size,
		Mass:     mass,
		MaxSpeed: maxSpeed,
	}
}

func (m *Movement) Bounds() Rect {
	return Rect{X: m.Pos.X, Y: m.Pos.Y, Width: m.Size.X, Height: m.Size.Y}
}

func (m *Movement) Passable() bool     { return m.passable }
func (m *Movement) SetPassable(v bool) { m.passable = v }

// Translate moves the entity without any collision handling. Carriers
// use it for non-simulated passengers.
func (m *Movement) Translate(delta Vector) {
	m.Pos = m.Pos.Add(delta)
}

// ApplyForce queues a one-shot impulse consumed by the next Move.
func (m *Movement) ApplyForce(f Vector) {
	m.StoredForces = m.StoredForces.Add(f)
}

// Config returns the tunables this entity steps with.
func (m *Movement) Config() Config { return m.cfg }

// SetConfig swaps the tunables, e.g. after a live physics spec reload.
func (m *Movement) SetConfig(cfg Config) { m.cfg = cfg }

// Move integrates the applied forces plus gravity and stored impulses
// into speed, then resolves the resulting displacement against the
// given obstacles and ramps.
func (m *Movement) Move(forces Vector, obstacles []Obstacle, ramps []*Ramp) {
	m.step(m.cfg, forces, obstacles, ramps, false)
}

// MoveWithSpeed sets the speed verbatim, ignoring gravity and stored
// impulses, and resolves the displacement like Move.
func (m *Movement) MoveWithSpeed(speed Vector, obstacles []Obstacle, ramps []*Ramp) {
	m.step(m.cfg, speed, obstacles, ramps, true)
}

// step is the frame pipeline: velocity update, clamp, broad phase,
// narrow phase, displacement, ramp resolution, contact recomputation.
func (m *Movement) step(cfg Config, forces Vector, obstacles []Obstacle, ramps []*Ramp, setSpeed bool) {
	if setSpeed {
		m.Speed = forces
	} else {
		forces = forces.Add(cfg.Gravity).Add(m.StoredForces)
		m.StoredForces = Vector{}
		forces = m.cancelContactForces(forces)
		forces = m.applyRampForces(cfg, forces)
		m.Speed = m.Speed.Add(forces.Div(m.Mass))
	}

	m.clampSpeed(cfg)
	m.PrevSpeed = m.Speed

	origin := m.Pos

	swept := m.sweptBounds()
	var colliding []Obstacle
	for _, o := range obstacles {
		if other, ok := o.(*Movement); ok && other == m {
			continue
		}
		if swept.Intersects(o.Bounds()) {
			colliding = append(colliding, o)
		}
	}
	var candidates []*Ramp
	for _, r := range ramps {
		if r.CanCollide(swept) {
			candidates = append(candidates, r)
		}
	}

	if m.Speed.X != 0 && m.Speed.Y != 0 {
		m.resolveDiagonal(colliding)
	} else if m.Speed.X != 0 || m.Speed.Y != 0 {
		m.resolveOrthogonal(colliding)
	}

	// Ramps are resolved after block-limit clamping, not during it.
	prevBottom := m.Contacts.Bottom
	for _, r := range candidates {
		r.Resolve(m)
	}

	m.updateContacts(cfg, obstacles, ramps, prevBottom, m.Pos.X-origin.X)
}

// cancelContactForces zeroes any force component that would push the
// entity further into an obstacle it is already touching.
func (m *Movement) cancelContactForces(forces Vector) Vector {
	if m.Contacts.Left != nil && forces.X < 0 {
		forces.X = 0
	}
	if m.Contacts.Right != nil && forces.X > 0 {
		forces.X = 0
	}
	if m.Contacts.Top != nil && forces.Y < 0 {
		forces.Y = 0
	}
	if m.Contacts.Bottom != nil && forces.Y > 0 {
		forces.Y = 0
	}
	return forces
}

// applyRampForces adjusts the horizontal force while resting on a ramp:
// slopes steeper than the slip threshold push the entity downhill, and
// pushing uphill into a gentler slope is damped by the ramp factor.
func (m *Movement) applyRampForces(cfg Config, forces Vector) Vector {
	r, ok := m.Contacts.Bottom.(*Ramp)
	if !ok {
		return forces
	}
	if r.ratio > cfg.RampSlipThreshold {
		slip := (r.ratio - cfg.RampSlipThreshold) * cfg.RampSlipForce / cfg.RampSlipThreshold
		if r.left {
			forces.X += slip
		} else {
			forces.X -= slip
		}
	} else if (r.left && forces.X < 0) || (!r.left && forces.X > 0) {
		forces.X *= r.factor
	}
	return forces
}

func (m *Movement) clampSpeed(cfg Config) {
	if math.Abs(m.Speed.X) < cfg.MinSpeed.X {
		m.Speed.X = 0
	}
	if math.Abs(m.Speed.Y) < cfg.MinSpeed.Y {
		m.Speed.Y = 0
	}
	if m.Speed.X > m.MaxSpeed.X {
		m.Speed.X = m.MaxSpeed.X
	} else if m.Speed.X < -m.MaxSpeed.X {
		m.Speed.X = -m.MaxSpeed.X
	}
	if m.Speed.Y > m.MaxSpeed.Y {
		m.Speed.Y = m.MaxSpeed.Y
	} else if m.Speed.Y < -m.MaxSpeed.Y {
		m.Speed.Y = -m.MaxSpeed.Y
	}
}

// sweptBounds returns the AABB spanning the current position and the
// unobstructed destination.
func (m *Movement) sweptBounds() Rect {
	x, y := m.Pos.X, m.Pos.Y
	if m.Speed.X < 0 {
		x += m.Speed.X
	}
	if m.Speed.Y < 0 {
		y += m.Speed.Y
	}
	return Rect{
		X:      x,
		Y:      y,
		Width:  m.Size.X + math.Abs(m.Speed.X),
		Height: m.Size.Y + math.Abs(m.Speed.Y),
	}
}

// resolveOrthogonal handles single-axis motion: clamp to the nearest
// blocking boundary in the direction of travel. All candidates are
// scanned; the tightest limit wins.
func (m *Movement) resolveOrthogonal(colliding []Obstacle) {
	dest := m.Pos.Add(m.Speed)
	switch {
	case m.Speed.X > 0:
		limit := dest.X
		for _, o := range colliding {
			if o.Passable() {
				continue
			}
			if b := o.Bounds().X - m.Size.X; b < limit {
				limit = b
			}
		}
		if limit != dest.X {
			m.Speed.X = 0
		}
		m.Pos.X = limit
	case m.Speed.X < 0:
		limit := dest.X
		for _, o := range colliding {
			if o.Passable() {
				continue
			}
			if b := o.Bounds().Right(); b > limit {
				limit = b
			}
		}
		if limit != dest.X {
			m.Speed.X = 0
		}
		m.Pos.X = limit
	case m.Speed.Y > 0:
		limit := dest.Y
		for _, o := range colliding {
			if o.Passable() && !m.landingOn(o.Bounds()) {
				continue
			}
			if b := o.Bounds().Y - m.Size.Y; b < limit {
				limit = b
			}
		}
		if limit != dest.Y {
			m.Speed.Y = 0
		}
		m.Pos.Y = limit
	case m.Speed.Y < 0:
		limit := dest.Y
		for _, o := range colliding {
			if o.Passable() {
				continue
			}
			if b := o.Bounds().Bottom(); b > limit {
				limit = b
			}
		}
		if limit != dest.Y {
			m.Speed.Y = 0
		}
		m.Pos.Y = limit
	}
}

// landingOn reports whether the entity's current bottom edge is at or
// above the obstacle's top, i.e. a downward move onto it counts as a
// landing. One-way platforms only block such moves.
func (m *Movement) landingOn(ob Rect) bool {
	return common.Round(m.Pos.Y+m.Size.Y) <= common.Round(ob.Y)
}

// resolveDiagonal handles two-axis motion. Each colliding obstacle
// constrains the x destination when already overlapping vertically, the
// y destination when already overlapping horizontally, and otherwise
// whichever boundary the velocity ray reaches first. The tightest limit
// per axis wins; constrained axes are clamped and their speed zeroed.
func (m *Movement) resolveDiagonal(colliding []Obstacle) {
	dest := m.Pos.Add(m.Speed)
	limitX, limitY := dest.X, dest.Y

	for _, o := range colliding {
		ob := o.Bounds()

		var bx, by float64
		if m.Speed.X > 0 {
			bx = ob.X - m.Size.X
		} else {
			bx = ob.Right()
		}
		if m.Speed.Y > 0 {
			by = ob.Y - m.Size.Y
		} else {
			by = ob.Bottom()
		}

		if o.Passable() {
			if m.Speed.Y > 0 && m.landingOn(ob) {
				limitY = tighter(limitY, by, m.Speed.Y)
			}
			continue
		}

		overlapX := m.Pos.X < ob.Right() && m.Pos.X+m.Size.X > ob.X
		overlapY := m.Pos.Y < ob.Bottom() && m.Pos.Y+m.Size.Y > ob.Y
		switch {
		case overlapY:
			limitX = tighter(limitX, bx, m.Speed.X)
		case overlapX:
			limitY = tighter(limitY, by, m.Speed.Y)
		default:
			// Corner approach: compare time to reach each boundary
			// along the velocity ray. Exact ties land rather than snag.
			tx := (bx - m.Pos.X) / m.Speed.X
			ty := (by - m.Pos.Y) / m.Speed.Y
			if tx < ty {
				limitX = tighter(limitX, bx, m.Speed.X)
			} else {
				limitY = tighter(limitY, by, m.Speed.Y)
			}
		}
	}

	if limitX != dest.X {
		m.Speed.X = 0
	}
	if limitY != dest.Y {
		m.Speed.Y = 0
	}
	m.Pos = Vector{X: limitX, Y: limitY}
}

// tighter returns the more restrictive of the current limit and a
// candidate boundary for the given travel direction.
func tighter(limit, boundary, dir float64) float64 {
	if dir > 0 {
		if boundary < limit {
			return boundary
		}
	} else if boundary > limit {
		return boundary
	}
	return limit
}

// updateContacts recomputes the four contact faces from scratch: a face
// touches an obstacle when the edges coincide to fixed precision and
// the perpendicular ranges overlap. Top, left, and right ignore
// passable obstacles. When no block supports the entity, ramps are
// scanned, and an entity that just left its ramp within the adherence
// threshold is snapped back onto it.
func (m *Movement) updateContacts(cfg Config, obstacles []Obstacle, ramps []*Ramp, prevBottom Obstacle, dx float64) {
	var c Contacts
	e := m.Bounds()
	for _, o := range obstacles {
		if other, ok := o.(*Movement); ok && other == m {
			continue
		}
		ob := o.Bounds()
		horiz := e.X < ob.Right() && e.Right() > ob.X
		vert := e.Y < ob.Bottom() && e.Bottom() > ob.Y

		if c.Bottom == nil && horiz && common.RoundEq(e.Bottom(), ob.Y) {
			c.Bottom = o
		}
		if o.Passable() {
			continue
		}
		if c.Top == nil && horiz && common.RoundEq(e.Y, ob.Bottom()) {
			c.Top = o
		}
		if c.Left == nil && vert && common.RoundEq(e.X, ob.Right()) {
			c.Left = o
		}
		if c.Right == nil && vert && common.RoundEq(e.Right(), ob.X) {
			c.Right = o
		}
	}

	if c.Bottom == nil {
		for _, r := range ramps {
			if r.Contact(e) {
				c.Bottom = r
				break
			}
		}
	}
	if c.Bottom == nil {
		// Keep adhered to the ramp from last frame unless the entity
		// jumped or drifted too far sideways; jitter must not detach it.
		if r, ok := prevBottom.(*Ramp); ok && math.Abs(dx) <= cfg.RampContactThreshold && m.Speed.Y >= 0 {
			m.Pos.Y = r.RestingY(m.Bounds())
			c.Bottom = r
		}
	}

	m.Contacts = c
}
