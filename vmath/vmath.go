// Package vmath provides float64 3D vector math for camera and pose geometry.
package vmath

import (
	"math"
)

// Epsilon is the default tolerance for approximate float comparisons
const Epsilon = 1e-9

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Chord returns the base length of an isosceles triangle with equal sides d
// and apex angle theta (radians): sqrt(2d² - 2d²·cos(theta))
// Used for arc-distance stepping: translating by Chord(d, theta) tangentially
// and re-aiming at the apex approximates a theta rotation at radius d
func Chord(d, theta float64) float64 {
	return math.Sqrt(2*d*d - 2*d*d*math.Cos(theta))
}

// ApproxEqual reports whether a and b differ by at most Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// ApproxEqualTol reports whether a and b differ by at most tol
func ApproxEqualTol(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
