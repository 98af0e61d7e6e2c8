package obj

import (
	"fmt"

	"github.com/milk9111/platformkit/behavior"
	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/prefabs"
)

// Elevator is a carrying platform that patrols a scripted route and
// ferries whatever rests on it.
type Elevator struct {
	Name string
	Body *physics.Movement

	patrol *behavior.Patrol
	speed  float64
}

// NewElevator builds an elevator at pos from its prefab spec. script
// overrides the spec's default route when non-empty.
func NewElevator(cfg physics.Config, spec *prefabs.ElevatorSpec, pos physics.Vector, script string) (*Elevator, error) {
	if script == "" {
		script = spec.Script
	}

	patrol, err := behavior.LoadPatrol(script, pos)
	if err != nil {
		return nil, fmt.Errorf("elevator %s: %w", spec.Name, err)
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

	return &Elevator{
		Name:   spec.Name,
		Body:   body,
		patrol: patrol,
		speed:  speed,
	}, nil
}

// Update advances the patrol one tick, carrying riders along.
func (e *Elevator) Update(carried []physics.Passenger, obstacles []physics.Obstacle, ramps []*physics.Ramp) {
	e.Body.CycleCarrying(e.patrol.Points, e.speed, carried, obstacles, ramps, e.patrol.StopTime)
}

// Waypoints exposes the patrol route.
func (e *Elevator) Waypoints() []physics.Vector { return e.patrol.Points }
