package main

import (
	"math"

	"github.com/lixenwraith/armview/scene"
	"github.com/lixenwraith/armview/vmath"
)

// Robot is a demo two-link arm: base fixed on the grid plane, elbow and tool
// positions driven by a slow joint sweep so the frame gizmos track moving
// frames
type Robot struct {
	Name  string
	Base  vmath.Vec3
	Color scene.RGB

	// Joint angles, radians
	shoulder float64
	elbow    float64
	phase    float64

	baseFrame *scene.Frame
	toolFrame *scene.Frame
}

const (
	upperArmLen = 1.2
	foreArmLen  = 0.9
	jointRate   = 0.35 // radians per second of sweep
)

func newRobot(name string, base vmath.Vec3, color scene.RGB, phase float64) *Robot {
	r := &Robot{
		Name:  name,
		Base:  base,
		Color: color,
		phase: phase,
	}
	r.baseFrame = scene.NewFrame(name+"/base", scene.NewPose(base, vmath.XAxis, vmath.YAxis))
	r.toolFrame = scene.NewFrame(name+"/tool", r.toolPose())
	return r
}

// Frames returns the robot's reference-frame gizmos, base then tool
func (r *Robot) Frames() []*scene.Frame {
	return []*scene.Frame{r.baseFrame, r.toolFrame}
}

// Update advances the joint sweep and re-poses the tool frame as a unit
func (r *Robot) Update(elapsed float64) {
	r.shoulder = 0.6 * math.Sin(jointRate*elapsed+r.phase)
	r.elbow = 0.8 * math.Sin(0.7*jointRate*elapsed+r.phase)
	r.toolFrame.SetPose(r.toolPose())
}

// Elbow returns the world position of the elbow joint
func (r *Robot) Elbow() vmath.Vec3 {
	dir := vmath.Rotate(vmath.XAxis, r.shoulder, vmath.YAxis)
	return vmath.Add(r.Base, vmath.Scale(dir, upperArmLen))
}

// Tool returns the world position of the tool tip
func (r *Robot) Tool() vmath.Vec3 {
	dir := vmath.Rotate(vmath.XAxis, r.shoulder+r.elbow, vmath.YAxis)
	return vmath.Add(r.Elbow(), vmath.Scale(dir, foreArmLen))
}

func (r *Robot) toolPose() scene.Pose {
	x := vmath.Rotate(vmath.XAxis, r.shoulder+r.elbow, vmath.YAxis)
	y := vmath.Rotate(vmath.YAxis, r.shoulder+r.elbow, vmath.YAxis)
	return scene.NewPose(r.Tool(), x, y)
}
