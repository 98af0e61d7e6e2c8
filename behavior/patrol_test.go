package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/platformkit/physics"
)

func TestParse(t *testing.T) {
	src := []byte(`
points := [[10, 20], [10.5, -4]]
speed := 2.5
stop_time := 12
`)

	p, err := Parse(src, physics.Vector{})
	require.NoError(t, err)

	assert.Equal(t, []physics.Vector{{X: 10, Y: 20}, {X: 10.5, Y: -4}}, p.Points)
	assert.Equal(t, 2.5, p.Speed)
	assert.Equal(t, 12, p.StopTime)
}

func TestParseOrigin(t *testing.T) {
	src := []byte(`points := [[origin_x, origin_y], [origin_x + 32, origin_y]]`)

	p, err := Parse(src, physics.Vector{X: 100, Y: 50})
	require.NoError(t, err)

	assert.Equal(t, []physics.Vector{{X: 100, Y: 50}, {X: 132, Y: 50}}, p.Points)
	assert.Zero(t, p.Speed)
	assert.Zero(t, p.StopTime)
}

func TestParseComputedPoints(t *testing.T) {
	src := []byte(`
offsets := [[0, 0], [0, -64]]
points := []
for o in offsets {
    points = append(points, [origin_x + o[0], origin_y + o[1]])
}
`)

	p, err := Parse(src, physics.Vector{X: 8, Y: 200})
	require.NoError(t, err)

	assert.Equal(t, []physics.Vector{{X: 8, Y: 200}, {X: 8, Y: 136}}, p.Points)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "no points", src: `speed := 2`},
		{name: "empty points", src: `points := []`},
		{name: "not a pair", src: `points := [[1, 2, 3]]`},
		{name: "non numeric", src: `points := [["a", 2]]`},
		{name: "syntax error", src: `points := [[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), physics.Vector{})
			assert.Error(t, err)
		})
	}
}

func TestLoadPatrolEmbedded(t *testing.T) {
	p, err := LoadPatrol("elevator_loop.tengo", physics.Vector{X: 64, Y: 256})
	require.NoError(t, err)

	require.Len(t, p.Points, 2)
	assert.Equal(t, physics.Vector{X: 64, Y: 256}, p.Points[0])
	assert.Equal(t, physics.Vector{X: 64, Y: 128}, p.Points[1])
	assert.Equal(t, 2.0, p.Speed)
	assert.Equal(t, 30, p.StopTime)
}

func TestLoadPatrolMissing(t *testing.T) {
	_, err := LoadPatrol("nope.tengo", physics.Vector{})
	assert.Error(t, err)
}
