package obj

import (
	"fmt"

	"github.com/milk9111/platformkit/behavior"
	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/prefabs"
)

// Walker patrols a scripted route without carrying anything. Its
// motion is waypoint-driven, so it glides through the route ignoring
// gravity, the way a pacing enemy or a moving hazard would.
type Walker struct {
	Name string
	Body *physics.Movement

	patrol *behavior.Patrol
	speed  float64
}

// NewWalker builds a walker at pos from its prefab spec. script
// overrides the spec's default route when non-empty.
func NewWalker(cfg physics.Config, spec *prefabs.WalkerSpec, pos physics.Vector, script string) (*Walker, error) {
	if script == "" {
		script = spec.Script
	}

	patrol, err := behavior.LoadPatrol(script, pos)
	if err != nil {
		return nil, fmt.Errorf("walker %s: %w", spec.Name, err)
	}

	speed := patrol.Speed
	if speed <= 0 {
		speed = spec.Speed
	}

	body := physics.NewMovement(
		cfg,
		pos,
		physics.Vector{X: spec.Body.Width, Y: spec.Body.Height},
		spec.Body.Mass,
		spec.Body.MaxSpeed.Vector(),
	)
	body.SetPassable(spec.Body.Passable)

	return &Walker{
		Name:   spec.Name,
		Body:   body,
		patrol: patrol,
		speed:  speed,
	}, nil
}

// Update advances the patrol one tick.
func (w *Walker) Update() {
	w.Body.Cycle(w.patrol.Points, w.speed, w.patrol.StopTime)
}

// Waypoints exposes the patrol route.
func (w *Walker) Waypoints() []physics.Vector { return w.patrol.Points }

// Facing reports -1 when the walker heads left, 1 when right, 0 when
// dwelling at a waypoint.
func (w *Walker) Facing() int {
	switch {
	case w.Body.Speed.X < 0:
		return -1
	case w.Body.Speed.X > 0:
		return 1
	default:
		return 0
	}
}
