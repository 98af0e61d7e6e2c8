package physics

import (
	"math"

	"github.com/milk9111/platformkit/common"
)

// Vector is a 2D value with x growing rightward and y growing downward.
type Vector struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by a scalar.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Div divides both components by a scalar. Dividing by zero yields
// Inf/NaN components, not an error; callers guard zero-distance cases.
func (v Vector) Div(factor float64) Vector {
	return Vector{X: v.X / factor, Y: v.Y / factor}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Length()
}

// Rotate rotates the vector by angle radians. Positive angles turn
// clockwise on screen because y points down.
func (v Vector) Rotate(angle float64) Vector {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Equals compares both components rounded to the shared fixed precision,
// tolerating accumulated floating point error.
func (v Vector) Equals(other Vector) bool {
	return common.RoundEq(v.X, other.X) && common.RoundEq(v.Y, other.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
