package scene

import (
	"github.com/lixenwraith/armview/vmath"
)

// FrameAxisLength is the drawn length of each reference-frame arrow
const FrameAxisLength = 0.25

// Arrow is a colored arrow at Pos pointing along the unit direction Axis
type Arrow struct {
	Pos    vmath.Vec3
	Axis   vmath.Vec3 // unit direction
	Length float64
	Color  RGB
}

// Tip returns the arrow's world-space endpoint
func (a Arrow) Tip() vmath.Vec3 {
	return vmath.Add(a.Pos, vmath.Scale(a.Axis, a.Length))
}

// Frame is a reference-frame gizmo: three axis arrows (x=red, y=green,
// z=blue) grouped into one rigid compound anchored at the pose origin.
// The compound's axis/up follow the pose's local x/y, so the whole frame
// moves and reorients as a unit to track a moving frame
type Frame struct {
	Label   string
	Pose    Pose
	Visible bool
}

// NewFrame draws a reference-frame gizmo for the given pose
func NewFrame(label string, pose Pose) *Frame {
	return &Frame{
		Label:   label,
		Pose:    pose,
		Visible: true,
	}
}

// SetPose re-anchors and reorients the whole frame as a unit
func (f *Frame) SetPose(pose Pose) {
	f.Pose = pose
}

// SetVisible toggles drawing of the gizmo
func (f *Frame) SetVisible(visible bool) {
	f.Visible = visible
}

// Axis returns the compound's forward direction (the pose's local x)
func (f *Frame) Axis() vmath.Vec3 {
	return f.Pose.X
}

// Up returns the compound's up direction (the pose's local y)
func (f *Frame) Up() vmath.Vec3 {
	return f.Pose.Y
}

// Arrows returns the three world-space axis arrows of the gizmo.
// Arrows are defined along the compound's local axes; re-posing the frame
// reorients them together
func (f *Frame) Arrows() [3]Arrow {
	return [3]Arrow{
		{Pos: f.Pose.Pos, Axis: f.Pose.X, Length: FrameAxisLength, Color: ColorRed},
		{Pos: f.Pose.Pos, Axis: f.Pose.Y, Length: FrameAxisLength, Color: ColorGreen},
		{Pos: f.Pose.Pos, Axis: f.Pose.Z, Length: FrameAxisLength, Color: ColorBlue},
	}
}
