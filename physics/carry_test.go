package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveToSnapsOnArrival(t *testing.T) {
	m := newTestMovement(Vector{X: 0, Y: 0})

	m.MoveTo(Vector{X: 4, Y: 0}, 10)
	assert.Equal(t, Vector{X: 4, Y: 0}, m.Pos)
	assert.Equal(t, Vector{}, m.Speed)
}

func TestMoveToAdvancesAtConstantSpeed(t *testing.T) {
	m := newTestMovement(Vector{X: 0, Y: 0})

	m.MoveTo(Vector{X: 30, Y: 40}, 5)
	assert.InDelta(t, 3, m.Pos.X, 1e-9)
	assert.InDelta(t, 4, m.Pos.Y, 1e-9)
	assert.InDelta(t, 3, m.Speed.X, 1e-9)
	assert.InDelta(t, 4, m.Speed.Y, 1e-9)
}

func TestMoveToZeroDistanceShortCircuits(t *testing.T) {
	m := newTestMovement(Vector{X: 7, Y: 7})
	m.Speed = Vector{X: 3, Y: 3}

	m.MoveTo(Vector{X: 7, Y: 7}, 5)
	assert.Equal(t, Vector{X: 7, Y: 7}, m.Pos)
	assert.Equal(t, Vector{}, m.Speed)
}

func TestMoveAngle(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		wantX   float64
		wantY   float64
	}{
		{name: "rightward", degrees: 0, wantX: 4, wantY: 0},
		{name: "downward", degrees: 90, wantX: 0, wantY: 4},
		{name: "leftward", degrees: 180, wantX: -4, wantY: 0},
		{name: "upward", degrees: 270, wantX: 0, wantY: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMovement(Vector{X: 0, Y: 0})
			m.MoveAngle(tt.degrees, 4)
			assert.InDelta(t, tt.wantX, m.Pos.X, 1e-9)
			assert.InDelta(t, tt.wantY, m.Pos.Y, 1e-9)
		})
	}
}

func TestMoveAngleDoesNotStopAnywhere(t *testing.T) {
	m := newTestMovement(Vector{X: 0, Y: 0})
	m.MoveAngle(0, 4)
	m.MoveAngle(0, 4)
	assert.Equal(t, 8.0, m.Pos.X)
	assert.Equal(t, 4.0, m.Speed.X)
}

func newCarrier() *Movement {
	// wide platform with its top face at y=10
	return NewMovement(testConfig(), Vector{X: 0, Y: 10}, Vector{X: 20, Y: 4}, 1, Vector{X: 50, Y: 50})
}

func TestCarryingMovesRestingPassenger(t *testing.T) {
	carrier := newCarrier()
	rider := NewMovement(testConfig(), Vector{X: 2, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})

	carrier.MoveCarrying(Vector{X: 10, Y: 10}, 2, []Passenger{rider}, nil, nil)

	assert.Equal(t, Vector{X: 2, Y: 10}, carrier.Pos)
	assert.Equal(t, Vector{X: 4, Y: 6}, rider.Pos)
}

func TestCarryingLiftsPassengerWithoutDoubleGravity(t *testing.T) {
	carrier := newCarrier()
	rider := NewMovement(testConfig(), Vector{X: 2, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})

	carrier.MoveCarrying(Vector{X: 0, Y: 0}, 1, []Passenger{rider}, nil, nil)

	require.Equal(t, Vector{X: 0, Y: 9}, carrier.Pos)
	// the rider moved exactly with the carrier: no gravity pulled it
	// down during the sub-step
	assert.Equal(t, Vector{X: 2, Y: 5}, rider.Pos)
}

func TestCarryingPreservesPassengerState(t *testing.T) {
	carrier := newCarrier()
	rider := NewMovement(testConfig(), Vector{X: 2, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})
	ground := NewBlock(-100, 100, 300, 10, false)
	rider.Speed = Vector{X: 1, Y: 0}
	rider.ApplyForce(Vector{X: 0, Y: -12})
	rider.Contacts.Bottom = carrier

	carrier.MoveCarrying(Vector{X: 10, Y: 10}, 2, []Passenger{rider}, []Obstacle{ground}, nil)

	assert.Equal(t, Vector{X: 1, Y: 0}, rider.Speed)
	assert.Equal(t, Vector{X: 0, Y: -12}, rider.StoredForces)
	assert.Same(t, carrier, rider.Contacts.Bottom)
}

func TestCarryingSkipsNonOverlappingEntities(t *testing.T) {
	carrier := newCarrier()
	away := NewMovement(testConfig(), Vector{X: 100, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})
	floating := NewMovement(testConfig(), Vector{X: 2, Y: 0}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})

	carrier.MoveCarrying(Vector{X: 10, Y: 10}, 2, []Passenger{away, floating}, nil, nil)

	assert.Equal(t, Vector{X: 100, Y: 6}, away.Pos)
	assert.Equal(t, Vector{X: 2, Y: 0}, floating.Pos)
}

func TestCarryingTranslatesProps(t *testing.T) {
	carrier := newCarrier()
	crate := NewProp(Vector{X: 4, Y: 6}, Vector{X: 4, Y: 4})

	carrier.MoveCarrying(Vector{X: 10, Y: 10}, 2, []Passenger{crate}, nil, nil)

	assert.Equal(t, Vector{X: 6, Y: 6}, crate.Pos)
}

func TestCarriedPassengerStillCollides(t *testing.T) {
	carrier := newCarrier()
	rider := NewMovement(testConfig(), Vector{X: 14, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})
	wall := NewBlock(20, 0, 10, 100, false)

	carrier.MoveCarrying(Vector{X: 10, Y: 10}, 5, []Passenger{rider}, []Obstacle{wall}, nil)

	// the carrier slid right by 5 but the wall stops the rider at x=16
	require.Equal(t, Vector{X: 5, Y: 10}, carrier.Pos)
	assert.Equal(t, Vector{X: 16, Y: 6}, rider.Pos)
}

func TestCarryingUpwardWithCarrierInObstacles(t *testing.T) {
	carrier := newCarrier()
	rider := NewMovement(testConfig(), Vector{X: 2, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})
	obstacles := []Obstacle{carrier, rider}

	for i := 0; i < 2; i++ {
		carrier.MoveCarrying(Vector{X: 0, Y: 6}, 2, []Passenger{rider}, obstacles, nil)
	}

	require.Equal(t, Vector{X: 0, Y: 6}, carrier.Pos)
	// the rider stays seated on the rising top face instead of being
	// clamped under the carrier's bottom edge
	assert.Equal(t, Vector{X: 2, Y: 2}, rider.Pos)
}

func TestCarryingDownwardWithCarrierInObstacles(t *testing.T) {
	carrier := newCarrier()
	rider := NewMovement(testConfig(), Vector{X: 2, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})
	obstacles := []Obstacle{carrier, rider}

	carrier.MoveCarrying(Vector{X: 0, Y: 14}, 2, []Passenger{rider}, obstacles, nil)

	require.Equal(t, Vector{X: 0, Y: 12}, carrier.Pos)
	assert.Equal(t, Vector{X: 2, Y: 8}, rider.Pos)
}

func TestMoveCarryingForcesIgnoreCollision(t *testing.T) {
	wall := NewBlock(24, 0, 10, 100, false)
	carrier := newCarrier()
	carrier.Contacts.Bottom = NewBlock(0, 14, 100, 4, false) // grounded, gravity cancelled

	carrier.MoveCarryingForces(Vector{X: 6, Y: 0}, nil, []Obstacle{wall}, nil, true)

	assert.Equal(t, 6.0, carrier.Pos.X)
}

func TestCycleAdvancesThroughWaypoints(t *testing.T) {
	points := []Vector{{X: 0, Y: 0}, {X: 30, Y: 0}}
	m := newTestMovement(Vector{X: 0, Y: 0})

	arrivals := 0
	for i := 0; i < 200 && arrivals < 3; i++ {
		m.Cycle(points, 10, 0)
		if m.Speed.IsZero() && m.cycleStopped {
			arrivals++
			assert.Equal(t, arrivals%len(points), (m.CycleIndex()+1)%len(points))
		}
	}
	require.Equal(t, 3, arrivals)
}

func TestCycleDwellsBeforeAdvancing(t *testing.T) {
	points := []Vector{{X: 0, Y: 0}, {X: 5, Y: 0}}
	m := newTestMovement(Vector{X: 0, Y: 0})

	// first call arrives instantly (already at waypoint 0)
	m.Cycle(points, 10, 3)
	require.True(t, m.Speed.IsZero())
	require.Equal(t, 0, m.CycleIndex())

	// three dwell calls before the target advances
	m.Cycle(points, 10, 3)
	assert.Equal(t, 0, m.CycleIndex())
	m.Cycle(points, 10, 3)
	assert.Equal(t, 0, m.CycleIndex())
	m.Cycle(points, 10, 3)
	assert.Equal(t, 1, m.CycleIndex())

	// now it moves again
	m.Cycle(points, 10, 3)
	assert.Equal(t, Vector{X: 5, Y: 0}, m.Pos)
}

func TestCycleCarryingMovesPassengers(t *testing.T) {
	points := []Vector{{X: 0, Y: 10}, {X: 12, Y: 10}}
	carrier := newCarrier()
	rider := NewMovement(testConfig(), Vector{X: 2, Y: 6}, Vector{X: 4, Y: 4}, 1, Vector{X: 50, Y: 50})
	carrier.cycleIndex = 1

	for i := 0; i < 4; i++ {
		carrier.CycleCarrying(points, 3, []Passenger{rider}, nil, nil, 0)
	}

	assert.Equal(t, Vector{X: 12, Y: 10}, carrier.Pos)
	assert.Equal(t, Vector{X: 14, Y: 6}, rider.Pos)
}

func TestCycleEmptyPointsIsANoop(t *testing.T) {
	m := newTestMovement(Vector{X: 3, Y: 3})
	m.Cycle(nil, 10, 0)
	assert.Equal(t, Vector{X: 3, Y: 3}, m.Pos)
}
