package physics

// Config holds the tunables every movement step reads. Each Movement
// keeps its own copy, so simulations stay hermetic and the nested
// passenger sub-step can run with gravity suspended without touching
// any shared state.
type Config struct {
	// Gravity is the per-frame acceleration applied to every entity
	// not stepped with an explicit speed.
	Gravity Vector
	// MinSpeed is the per-axis snap-to-zero threshold.
	MinSpeed Vector
	// RampContactThreshold is the maximum horizontal displacement per
	// frame that keeps an entity adhered to the ramp it rested on.
	RampContactThreshold float64
	// RampSlipThreshold is the slope ratio above which a ramp always
	// slips entities downhill.
	RampSlipThreshold float64
	// RampSlipForce scales the downhill force injected by slipping ramps.
	RampSlipForce float64
}

// DefaultConfig returns the tunables the stock levels are balanced for.
func DefaultConfig() Config {
	return Config{
		Gravity:              Vector{X: 0, Y: 1},
		MinSpeed:             Vector{X: 0.1, Y: 0.1},
		RampContactThreshold: 10,
		RampSlipThreshold:    1.1,
		RampSlipForce:        10,
	}
}

// withoutGravity returns a copy used for passenger re-simulation, where
// the carrier's displacement already embeds the frame's gravity.
func (c Config) withoutGravity() Config {
	c.Gravity = Vector{}
	return c
}
