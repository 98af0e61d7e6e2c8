package common

import "math"

// TileSize is the side length in pixels of one level tile.
const TileSize = 32

// Precision is the number of decimal places positions and speeds are
// compared at. Face-touch and resting checks round to this precision so
// accumulated float error never breaks a contact.
const Precision = 6

var precisionScale = math.Pow(10, Precision)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Round rounds v to Precision decimal places.
func Round(v float64) float64 {
	return math.Round(v*precisionScale) / precisionScale
}

// RoundEq reports whether a and b are equal after rounding to Precision
// decimal places.
func RoundEq(a, b float64) bool {
	return Round(a) == Round(b)
}
