package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Principal axis unit vectors
var (
	XAxis = Vec3{X: 1}
	YAxis = Vec3{Y: 1}
	ZAxis = Vec3{Z: 1}
)

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func Neg(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float64 {
	return math.Sqrt(MagSq(v))
}

// Normalize returns v scaled to unit length, or the zero vector if v is zero
// Optimization: one division, three multiplies
func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// WithMag returns v rescaled to the given magnitude, preserving direction
// Zero vectors stay zero
func WithMag(v Vec3, mag float64) Vec3 {
	return Scale(Normalize(v), mag)
}

// Rotate rotates v by angle (radians) about axis using the Rodrigues formula.
// The axis need not be unit length; a zero axis returns v unchanged
func Rotate(v Vec3, angle float64, axis Vec3) Vec3 {
	k := Normalize(axis)
	if k == (Vec3{}) {
		return v
	}
	sin, cos := math.Sincos(angle)
	// v·cosθ + (k×v)·sinθ + k·(k·v)(1-cosθ)
	term1 := Scale(v, cos)
	term2 := Scale(Cross(k, v), sin)
	term3 := Scale(k, Dot(k, v)*(1-cos))
	return Add(Add(term1, term2), term3)
}

// Dist returns the Euclidean distance between points a and b
func Dist(a, b Vec3) float64 {
	return Mag(Sub(a, b))
}

// VecApproxEqual reports component-wise equality within tol
func VecApproxEqual(a, b Vec3, tol float64) bool {
	return ApproxEqualTol(a.X, b.X, tol) &&
		ApproxEqualTol(a.Y, b.Y, tol) &&
		ApproxEqualTol(a.Z, b.Z, tol)
}
