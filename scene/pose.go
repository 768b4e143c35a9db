package scene

import (
	"github.com/lixenwraith/armview/vmath"
)

// Pose is an SE(3)-style rigid pose: an origin plus orthonormal local axes
type Pose struct {
	Pos vmath.Vec3
	X   vmath.Vec3
	Y   vmath.Vec3
	Z   vmath.Vec3
}

// NewPose builds a pose from an origin and local x/y directions.
// x and y are normalized and z derived as x × y, so the result is always
// right-handed even if the inputs drift slightly
func NewPose(pos, x, y vmath.Vec3) Pose {
	nx := vmath.Normalize(x)
	ny := vmath.Normalize(y)
	return Pose{
		Pos: pos,
		X:   nx,
		Y:   ny,
		Z:   vmath.Cross(nx, ny),
	}
}

// IdentityPose returns the world-aligned pose at the origin
func IdentityPose() Pose {
	return Pose{X: vmath.XAxis, Y: vmath.YAxis, Z: vmath.ZAxis}
}

// IsValid reports whether the pose axes are unit length and mutually
// orthogonal within tol
func (p Pose) IsValid(tol float64) bool {
	return vmath.ApproxEqualTol(vmath.Mag(p.X), 1, tol) &&
		vmath.ApproxEqualTol(vmath.Mag(p.Y), 1, tol) &&
		vmath.ApproxEqualTol(vmath.Mag(p.Z), 1, tol) &&
		vmath.ApproxEqualTol(vmath.Dot(p.X, p.Y), 0, tol) &&
		vmath.ApproxEqualTol(vmath.Dot(p.Y, p.Z), 0, tol) &&
		vmath.ApproxEqualTol(vmath.Dot(p.Z, p.X), 0, tol)
}

// Transform maps a point from pose-local coordinates to world coordinates
func (p Pose) Transform(local vmath.Vec3) vmath.Vec3 {
	world := p.Pos
	world = vmath.Add(world, vmath.Scale(p.X, local.X))
	world = vmath.Add(world, vmath.Scale(p.Y, local.Y))
	world = vmath.Add(world, vmath.Scale(p.Z, local.Z))
	return world
}
