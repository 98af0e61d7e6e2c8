package obj

import (
	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/prefabs"
)

// Crate is a pushable box that falls and stacks but has no drive of
// its own.
type Crate struct {
	Name string
	Body *physics.Movement
}

// NewCrate builds a crate at pos from its prefab spec.
func NewCrate(cfg physics.Config, spec *prefabs.CrateSpec, pos physics.Vector) *Crate {
	body := physics.NewMovement(
		cfg,
		pos,
		physics.Vector{X: spec.Body.Width, Y: spec.Body.Height},
		spec.Body.Mass,
		spec.Body.MaxSpeed.Vector(),
	)
	body.SetPassable(spec.Body.Passable)

	return &Crate{Name: spec.Name, Body: body}
}

// Update lets gravity act on the crate for one tick.
func (c *Crate) Update(obstacles []physics.Obstacle, ramps []*physics.Ramp) {
	c.Body.Move(physics.Vector{}, obstacles, ramps)
}

// Push applies a one-tick horizontal shove.
func (c *Crate) Push(force float64, obstacles []physics.Obstacle, ramps []*physics.Ramp) {
	c.Body.Move(physics.Vector{X: force}, obstacles, ramps)
}
