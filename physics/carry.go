package physics

import (
	"math"

	"github.com/milk9111/platformkit/common"
)

// MoveTo flies the entity toward target at constant speed with no
// collision handling. Arrival within one step snaps exactly onto the
// target and zeroes speed per axis independently; an entity already at
// the target short-circuits to zero speed.
func (m *Movement) MoveTo(target Vector, speed float64) {
	m.moveToward(target, speed)
}

// MoveAngle flies the entity one step along a fixed heading in degrees
// (0 = rightward, clockwise) with no collision or arrival handling.
func (m *Movement) MoveAngle(degrees, speed float64) {
	rad := degrees * math.Pi / 180
	m.Speed = Vector{X: math.Cos(rad), Y: math.Sin(rad)}.Scale(speed)
	m.Pos = m.Pos.Add(m.Speed)
}

// moveToward advances toward target and returns the displacement.
func (m *Movement) moveToward(target Vector, speed float64) Vector {
	origin := m.Pos
	delta := target.Sub(m.Pos)
	dist := delta.Length()
	if dist == 0 {
		m.Speed = Vector{}
		return Vector{}
	}

	step := delta.Div(dist).Scale(speed)
	if math.Abs(step.X) >= math.Abs(delta.X) {
		m.Pos.X = target.X
		step.X = 0
	} else {
		m.Pos.X += step.X
	}
	if math.Abs(step.Y) >= math.Abs(delta.Y) {
		m.Pos.Y = target.Y
		step.Y = 0
	} else {
		m.Pos.Y += step.Y
	}
	m.Speed = step
	return m.Pos.Sub(origin)
}

// MoveCarrying advances toward target at constant speed, then carries
// every passenger riding the carrier's top along with the displacement.
func (m *Movement) MoveCarrying(target Vector, speed float64, carried []Passenger, obstacles []Obstacle, ramps []*Ramp) {
	old := m.Bounds()
	disp := m.moveToward(target, speed)
	m.carryPassengers(disp, old, carried, obstacles, ramps)
}

// MoveCarryingForces steps the carrier with a regular force-based move,
// optionally skipping collision, then carries its passengers.
func (m *Movement) MoveCarryingForces(forces Vector, carried []Passenger, obstacles []Obstacle, ramps []*Ramp, ignoreCollision bool) {
	old := m.Bounds()
	if ignoreCollision {
		m.step(m.cfg, forces, nil, nil, false)
	} else {
		m.step(m.cfg, forces, obstacles, ramps, false)
	}
	disp := m.Pos.Sub(Vector{X: old.X, Y: old.Y})
	m.carryPassengers(disp, old, carried, obstacles, ramps)
}

// carryPassengers moves every carried entity that rests on, or is being
// engulfed by, the carrier's top face. Movement passengers are
// re-simulated one sub-step with gravity suspended, using the carrier
// displacement scaled by their mass as the force; their own speed,
// stored impulses, and bottom contact survive the sub-step. Anything
// else is translated verbatim.
func (m *Movement) carryPassengers(disp Vector, old Rect, carried []Passenger, obstacles []Obstacle, ramps []*Ramp) {
	if disp.IsZero() {
		return
	}

	// The carrier has already moved, so on an upward carry its new top
	// interpenetrates everything riding it. The sub-step must not see
	// the carrier as an obstacle or the rider gets clamped underneath.
	others := obstacles
	for i, o := range obstacles {
		if other, ok := o.(*Movement); ok && other == m {
			others = make([]Obstacle, 0, len(obstacles)-1)
			others = append(others, obstacles[:i]...)
			others = append(others, obstacles[i+1:]...)
			break
		}
	}

	for _, p := range carried {
		if other, ok := p.(*Movement); ok && other == m {
			continue
		}
		pb := p.Bounds()
		if !(pb.X < old.Right() && pb.Right() > old.X) {
			continue
		}
		bottom := pb.Bottom()
		resting := common.RoundEq(bottom, old.Y)
		engulfed := disp.Y < 0 && bottom > m.Pos.Y && common.Round(bottom) <= common.Round(old.Y)
		if !resting && !engulfed {
			continue
		}

		pm, ok := p.(*Movement)
		if !ok {
			p.Translate(disp)
			continue
		}

		// Gravity is already embedded in the carrier's displacement;
		// the sub-step runs without it so it is not applied twice.
		savedSpeed := pm.Speed
		savedStored := pm.StoredForces
		savedBottom := pm.Contacts.Bottom
		pm.step(pm.cfg.withoutGravity(), disp.Scale(pm.Mass), others, ramps, false)
		pm.Speed = savedSpeed
		pm.StoredForces = savedStored
		pm.Contacts.Bottom = savedBottom
	}
}

// Cycle patrols the waypoints with uncollided motion: fly to the
// current waypoint, dwell stopTime calls after arriving, then advance
// to the next waypoint, wrapping around.
func (m *Movement) Cycle(points []Vector, speed float64, stopTime int) {
	m.cycle(points, stopTime, func(target Vector) {
		m.MoveTo(target, speed)
	})
}

// CycleCarrying patrols the waypoints like Cycle but moves with
// MoveCarrying so passengers ride along.
func (m *Movement) CycleCarrying(points []Vector, speed float64, carried []Passenger, obstacles []Obstacle, ramps []*Ramp, stopTime int) {
	m.cycle(points, stopTime, func(target Vector) {
		m.MoveCarrying(target, speed, carried, obstacles, ramps)
	})
}

// CycleIndex returns the index of the waypoint currently targeted.
func (m *Movement) CycleIndex() int { return m.cycleIndex }

// cycle is the patrol state machine. Reaching zero speed on both axes
// counts as arrival; each stopped call increments the dwell counter and
// once it reaches stopTime the target advances, moving again next call.
func (m *Movement) cycle(points []Vector, stopTime int, move func(Vector)) {
	if len(points) == 0 {
		return
	}
	if m.cycleIndex >= len(points) {
		m.cycleIndex = 0
	}

	if m.cycleStopped {
		m.cycleDwell++
		if m.cycleDwell >= stopTime {
			m.cycleIndex = (m.cycleIndex + 1) % len(points)
			m.cycleStopped = false
			m.cycleDwell = 0
		}
		return
	}

	move(points[m.cycleIndex])
	if m.Speed.IsZero() {
		m.cycleStopped = true
		m.cycleDwell = 0
	}
}
