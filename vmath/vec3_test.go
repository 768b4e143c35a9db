package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossRightHanded(t *testing.T) {
	// x × y = z, y × z = x, z × x = y
	assert.Equal(t, ZAxis, Cross(XAxis, YAxis))
	assert.Equal(t, XAxis, Cross(YAxis, ZAxis))
	assert.Equal(t, YAxis, Cross(ZAxis, XAxis))

	// Anti-commutative
	assert.Equal(t, Neg(ZAxis), Cross(YAxis, XAxis))
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := Normalize(v)
	assert.InDelta(t, 1.0, Mag(n), Epsilon)
	assert.InDelta(t, 0.6, n.X, Epsilon)
	assert.InDelta(t, 0.8, n.Y, Epsilon)

	assert.Equal(t, Vec3{}, Normalize(Vec3{}))
}

func TestWithMag(t *testing.T) {
	v := Vec3{0, 0, 2}
	w := WithMag(v, 5)
	assert.InDelta(t, 5.0, Mag(w), Epsilon)
	assert.InDelta(t, 5.0, w.Z, Epsilon)

	// Zero vector has no direction to preserve
	assert.Equal(t, Vec3{}, WithMag(Vec3{}, 5))
}

func TestRotateQuarterTurns(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		angle float64
		axis  Vec3
		want  Vec3
	}{
		{"x about z", XAxis, math.Pi / 2, ZAxis, YAxis},
		{"y about z", YAxis, math.Pi / 2, ZAxis, Neg(XAxis)},
		{"x about y", XAxis, math.Pi / 2, YAxis, Neg(ZAxis)},
		{"negative angle", XAxis, -math.Pi / 2, ZAxis, Neg(YAxis)},
		{"full turn", Vec3{1, 2, 3}, 2 * math.Pi, ZAxis, Vec3{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotate(tt.v, tt.angle, tt.axis)
			assert.True(t, VecApproxEqual(got, tt.want, 1e-12),
				"got %+v want %+v", got, tt.want)
		})
	}
}

func TestRotatePreservesMagnitude(t *testing.T) {
	v := Vec3{2, -3, 5}
	for _, deg := range []float64{1, 15, 90, 123.4, 359} {
		r := Rotate(v, Radians(deg), Vec3{1, 1, -2})
		assert.InDelta(t, Mag(v), Mag(r), 1e-12, "deg=%v", deg)
	}
}

func TestRotateNonUnitAxis(t *testing.T) {
	// Axis magnitude must not affect the rotation
	a := Rotate(XAxis, math.Pi/3, ZAxis)
	b := Rotate(XAxis, math.Pi/3, Scale(ZAxis, 17.5))
	assert.True(t, VecApproxEqual(a, b, 1e-12))
}

func TestRotateZeroAxis(t *testing.T) {
	v := Vec3{1, 2, 3}
	assert.Equal(t, v, Rotate(v, math.Pi/2, Vec3{}))
}

func TestChord(t *testing.T) {
	// Known value from the default camera pose: d = 10·√3
	d := math.Sqrt(300)
	got := Chord(d, Radians(1))
	assert.InDelta(t, 0.3023, got, 1e-4)

	// Degenerate cases
	assert.InDelta(t, 0, Chord(5, 0), Epsilon)
	assert.InDelta(t, 10, Chord(5, math.Pi), Epsilon) // half turn = diameter
}

func TestChordMatchesArcAngle(t *testing.T) {
	// Translating by the chord tangentially then re-aiming at the center
	// must land on the circle of the same radius
	d := 7.5
	theta := Radians(1)
	pos := Vec3{d, 0, 0}
	side := YAxis
	moved := Add(pos, Scale(side, Chord(d, theta)))
	// Not exactly on the circle (chord, not arc), but within first-order error
	assert.InDelta(t, d, Mag(moved), d*theta*theta)
}

func TestDist(t *testing.T) {
	assert.InDelta(t, 5, Dist(Vec3{1, 1, 0}, Vec3{4, 5, 0}), Epsilon)
}
