package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAlgebra(t *testing.T) {
	tests := []struct {
		name     string
		got      Vector
		expected Vector
	}{
		{
			name:     "add",
			got:      Vector{X: 3, Y: 4}.Add(Vector{X: 1, Y: -2}),
			expected: Vector{X: 4, Y: 2},
		},
		{
			name:     "sub",
			got:      Vector{X: 3, Y: 4}.Sub(Vector{X: 1, Y: -2}),
			expected: Vector{X: 2, Y: 6},
		},
		{
			name:     "scale",
			got:      Vector{X: 3, Y: -4}.Scale(2),
			expected: Vector{X: 6, Y: -8},
		},
		{
			name:     "div",
			got:      Vector{X: 3, Y: -4}.Div(2),
			expected: Vector{X: 1.5, Y: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestVectorDivByZeroIsNotAnError(t *testing.T) {
	v := Vector{X: 1, Y: -1}.Div(0)
	assert.True(t, math.IsInf(v.X, 1))
	assert.True(t, math.IsInf(v.Y, -1))
}

func TestVectorRotate(t *testing.T) {
	// quarter turn clockwise on screen: rightward becomes downward
	v := Vector{X: 1, Y: 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)
}

func TestVectorDistance(t *testing.T) {
	assert.InDelta(t, 5, Vector{X: 0, Y: 0}.Distance(Vector{X: 3, Y: 4}), 1e-9)
}

func TestVectorEquals(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected bool
	}{
		{
			name:     "identical",
			a:        Vector{X: 1, Y: 2},
			b:        Vector{X: 1, Y: 2},
			expected: true,
		},
		{
			name:     "within_precision",
			a:        Vector{X: 1.0000001, Y: 2},
			b:        Vector{X: 1, Y: 2},
			expected: true,
		},
		{
			name:     "outside_precision",
			a:        Vector{X: 1.00001, Y: 2},
			b:        Vector{X: 1, Y: 2},
			expected: false,
		},
		{
			name:     "y_differs",
			a:        Vector{X: 1, Y: 2.5},
			b:        Vector{X: 1, Y: 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
		})
	}
}
