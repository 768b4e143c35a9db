package camctl

import (
	"github.com/lixenwraith/armview/scene"
	"github.com/lixenwraith/armview/vmath"
)

// Per-tick step sizes
const (
	DefaultPanStep = 0.02 // world units
	DefaultRotStep = 1.0  // degrees
)

// Controller updates a scene's camera pose from held-action snapshots.
// It is synchronous and loop-agnostic: call Step from any host loop at the
// desired tick rate
type Controller struct {
	Scene   *scene.Scene
	PanStep float64 // translation per tick, world units
	RotStep float64 // rotation per tick, degrees
}

// New returns a controller over s with the default step sizes
func New(s *scene.Scene) *Controller {
	return &Controller{
		Scene:   s,
		PanStep: DefaultPanStep,
		RotStep: DefaultRotStep,
	}
}

// Step applies one input tick to the camera pose. All action categories are
// independent and combine within a tick; absent actions are no-ops and the
// operation cannot fail.
//
// While the free-spin modifier is held the native rotate owns the pose
// exclusively, so Step returns without touching anything
func (c *Controller) Step(held Held) {
	if held.Has(ActionFreeSpin) {
		return
	}

	s := c.Scene

	// Camera-to-focus distance for orbit stepping, sampled before panning
	camDist := vmath.Mag(s.Camera.Axis)

	camPos := s.Camera.Pos
	camFocus := s.Center

	// Camera-relative basis, recomputed each tick. Side comes from world up
	// so roll stays consistent regardless of prior up changes
	camAxis := s.Camera.Axis
	camSide := vmath.Cross(s.Up, camAxis)
	camUp := vmath.Cross(camAxis, camSide)
	camUp = vmath.WithMag(camUp, vmath.Mag(camAxis))

	// Panning: fixed step along each held basis direction, additive across
	// simultaneous actions
	if held.Has(ActionPanForward) {
		camPos = vmath.Add(camPos, vmath.Scale(camAxis, c.PanStep))
	}
	if held.Has(ActionPanBack) {
		camPos = vmath.Sub(camPos, vmath.Scale(camAxis, c.PanStep))
	}
	if held.Has(ActionPanLeft) {
		camPos = vmath.Add(camPos, vmath.Scale(camSide, c.PanStep))
	}
	if held.Has(ActionPanRight) {
		camPos = vmath.Sub(camPos, vmath.Scale(camSide, c.PanStep))
	}
	if held.Has(ActionPanUp) {
		camPos = vmath.Add(camPos, vmath.Scale(camUp, c.PanStep))
	}
	if held.Has(ActionPanDown) {
		camPos = vmath.Sub(camPos, vmath.Scale(camUp, c.PanStep))
	}

	// Commit position before rotation so pan and rotate never see each
	// other's half-applied state within one tick
	s.Camera.Pos = camPos

	// Roll: only when exactly one roll action is held; both cancel.
	// Renormalized to the axis magnitude, written to world up
	rot := vmath.Radians(c.RotStep)
	if held.Has(ActionRollLeft) && !held.Has(ActionRollRight) {
		camUp = vmath.Rotate(camUp, -rot, camAxis)
		camUp = vmath.WithMag(camUp, vmath.Mag(camAxis))
		s.Up = camUp
	}
	if held.Has(ActionRollRight) && !held.Has(ActionRollLeft) {
		camUp = vmath.Rotate(camUp, rot, camAxis)
		camUp = vmath.WithMag(camUp, vmath.Mag(camAxis))
		s.Up = camUp
	}

	// Orbit: translate tangentially by the chord of a RotStep arc at the
	// current focus distance, then re-aim at the focus. The camera keeps
	// pointing at the focus while appearing to orbit it
	moveDist := vmath.Chord(camDist, rot)

	if held.Has(ActionOrbitLeft) && !held.Has(ActionOrbitRight) {
		camPos = vmath.Add(camPos, vmath.Scale(vmath.Normalize(camSide), moveDist))
		camAxis = vmath.Neg(vmath.Sub(camPos, camFocus))
	}
	if held.Has(ActionOrbitRight) && !held.Has(ActionOrbitLeft) {
		camPos = vmath.Sub(camPos, vmath.Scale(vmath.Normalize(camSide), moveDist))
		camAxis = vmath.Neg(vmath.Sub(camPos, camFocus))
	}
	if held.Has(ActionOrbitUp) && !held.Has(ActionOrbitDown) {
		camPos = vmath.Add(camPos, vmath.Scale(vmath.Normalize(camUp), moveDist))
		camAxis = vmath.Neg(vmath.Sub(camPos, camFocus))
	}
	if held.Has(ActionOrbitDown) && !held.Has(ActionOrbitUp) {
		camPos = vmath.Sub(camPos, vmath.Scale(vmath.Normalize(camUp), moveDist))
		camAxis = vmath.Neg(vmath.Sub(camPos, camFocus))
	}

	s.Camera.Pos = camPos
	s.Camera.Axis = camAxis
}
