package obj

import (
	"fmt"

	"github.com/milk9111/platformkit/common"
	"github.com/milk9111/platformkit/level"
	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/prefabs"
)

// player body dimensions in pixels
const (
	playerWidth  = 24
	playerHeight = 48
	playerMass   = 1
)

var playerMaxSpeed = physics.Vector{X: 8, Y: 50}

// World owns every simulated body in a loaded level and steps them in
// a fixed order each tick.
type World struct {
	cfg physics.Config

	Blocks []*physics.Block
	Ramps  []*physics.Ramp

	Player    *physics.Movement
	Elevators []*Elevator
	Crates    []*Crate
	Walkers   []*Walker
	Props     []*physics.Prop
}

// NewWorld builds the static geometry and every placed entity of lvl.
func NewWorld(cfg physics.Config, lvl *level.Level) (*World, error) {
	blocks, ramps := lvl.Geometry()
	blocks = append(blocks, lvl.BoundsBlocks()...)

	w := &World{
		cfg:    cfg,
		Blocks: blocks,
		Ramps:  ramps,
		Player: physics.NewMovement(
			cfg,
			lvl.SpawnPosition(),
			physics.Vector{X: playerWidth, Y: playerHeight},
			playerMass,
			playerMaxSpeed,
		),
	}

	var (
		elevatorSpec *prefabs.ElevatorSpec
		crateSpec    *prefabs.CrateSpec
		walkerSpec   *prefabs.WalkerSpec
		err          error
	)

	for _, p := range lvl.Entities {
		pos := physics.Vector{X: p.X, Y: p.Y}

		switch p.Kind {
		case "elevator":
			if elevatorSpec == nil {
				if elevatorSpec, err = prefabs.LoadElevatorSpec(); err != nil {
					return nil, fmt.Errorf("world: %w", err)
				}
			}
			e, err := NewElevator(cfg, elevatorSpec, pos, p.Script)
			if err != nil {
				return nil, fmt.Errorf("world: %w", err)
			}
			w.Elevators = append(w.Elevators, e)

		case "crate":
			if crateSpec == nil {
				if crateSpec, err = prefabs.LoadCrateSpec(); err != nil {
					return nil, fmt.Errorf("world: %w", err)
				}
			}
			w.Crates = append(w.Crates, NewCrate(cfg, crateSpec, pos))

		case "walker":
			if walkerSpec == nil {
				if walkerSpec, err = prefabs.LoadWalkerSpec(); err != nil {
					return nil, fmt.Errorf("world: %w", err)
				}
			}
			wk, err := NewWalker(cfg, walkerSpec, pos, p.Script)
			if err != nil {
				return nil, fmt.Errorf("world: %w", err)
			}
			w.Walkers = append(w.Walkers, wk)

		case "prop":
			w.Props = append(w.Props, physics.NewProp(pos, physics.Vector{X: common.TileSize, Y: common.TileSize}))

		default:
			return nil, fmt.Errorf("world: entity %s: unknown kind %q", p.Name, p.Kind)
		}
	}

	return w, nil
}

// Step advances the whole world one tick. Carriers move first so their
// riders see the displaced platform when they resolve their own
// motion, then scripted patrols, then free bodies, then the player.
func (w *World) Step(playerForces physics.Vector) {
	obstacles := w.Obstacles()
	ramps := w.Ramps

	for _, e := range w.Elevators {
		e.Update(w.Passengers(e.Body), obstacles, ramps)
	}
	for _, wk := range w.Walkers {
		wk.Update()
	}
	for _, c := range w.Crates {
		c.Update(obstacles, ramps)
	}

	w.Player.Move(playerForces, obstacles, ramps)
}

// Obstacles returns everything bodies collide against: static blocks
// plus every movement body. Movers exclude themselves when they step.
func (w *World) Obstacles() []physics.Obstacle {
	obstacles := make([]physics.Obstacle, 0, len(w.Blocks)+len(w.Elevators)+len(w.Crates)+len(w.Walkers)+1)
	for _, b := range w.Blocks {
		obstacles = append(obstacles, b)
	}
	for _, e := range w.Elevators {
		obstacles = append(obstacles, e.Body)
	}
	for _, c := range w.Crates {
		obstacles = append(obstacles, c.Body)
	}
	for _, wk := range w.Walkers {
		obstacles = append(obstacles, wk.Body)
	}
	obstacles = append(obstacles, w.Player)
	return obstacles
}

// Passengers returns every body a carrier could ferry, excluding the
// carrier itself.
func (w *World) Passengers(carrier *physics.Movement) []physics.Passenger {
	passengers := make([]physics.Passenger, 0, len(w.Crates)+len(w.Props)+1)
	if w.Player != carrier {
		passengers = append(passengers, w.Player)
	}
	for _, c := range w.Crates {
		if c.Body != carrier {
			passengers = append(passengers, c.Body)
		}
	}
	for _, p := range w.Props {
		passengers = append(passengers, p)
	}
	return passengers
}

// SetConfig swaps the physics tunables on every simulated body. Used
// by spec hot reload.
func (w *World) SetConfig(cfg physics.Config) {
	w.cfg = cfg
	w.Player.SetConfig(cfg)
	for _, e := range w.Elevators {
		e.Body.SetConfig(cfg)
	}
	for _, c := range w.Crates {
		c.Body.SetConfig(cfg)
	}
	for _, wk := range w.Walkers {
		wk.Body.SetConfig(cfg)
	}
}

// Config returns the tunables the world was last configured with.
func (w *World) Config() physics.Config { return w.cfg }
