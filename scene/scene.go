// Package scene holds the mutable 3D scene state for the viewer: camera pose,
// focus point, canvas settings, reference-frame gizmos and the grid overlay.
// There is no global scene; callers own a Scene and pass it by reference.
package scene

import (
	"github.com/lixenwraith/armview/vmath"
)

// RGB is an 8-bit color triple
type RGB struct {
	R, G, B uint8
}

var (
	ColorWhite = RGB{255, 255, 255}
	ColorRed   = RGB{255, 0, 0}
	ColorGreen = RGB{0, 255, 0}
	ColorBlue  = RGB{0, 0, 255}
)

// DefaultCameraPos places the camera equidistant from origin on all three axes
var DefaultCameraPos = vmath.Vec3{X: 10, Y: 10, Z: 10}

// Camera is the viewer pose: position and forward axis.
// Axis points from the camera toward the scene focus
type Camera struct {
	Pos  vmath.Vec3
	Axis vmath.Vec3
}

// Canvas configures scene creation
type Canvas struct {
	Height  int    // pixels
	Width   int    // pixels
	Title   string // displayed above the canvas
	Caption string // displayed below the canvas
	Grid    bool   // initial grid overlay visibility
}

// DefaultCanvas returns the standard 1000x500 canvas with the grid shown
func DefaultCanvas() Canvas {
	return Canvas{Height: 500, Width: 1000, Grid: true}
}

// Scene is the full mutable scene state. One writer per Scene; the host loop
// mutates it in place each tick
type Scene struct {
	Camera Camera
	Up     vmath.Vec3 // world up; camera roll rewrites this
	Center vmath.Vec3 // focus point orbits revolve around

	// Forward is the default viewing direction convention. It must never be
	// collinear with Up, so the z-up conversion repoints it to +x first
	Forward vmath.Vec3

	Background RGB
	Width      int
	Height     int
	Title      string
	Caption    string
	Autoscale  bool

	// Native control paths. UserPan stays off: keyboard panning is the sole
	// pan mechanism, while native zoom and free-spin rotate remain enabled
	UserPan  bool
	UserZoom bool
	UserSpin bool

	Frames []*Frame
}

// Init sets up a scene with initial conditions: white background, requested
// size, title and caption, z-up orientation, and the grid overlay handle
func Init(cfg Canvas) (*Scene, *Grid) {
	s := &Scene{
		Background: ColorWhite,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Autoscale:  false,
		UserPan:    false,
		UserZoom:   true, // scrollwheel zoom
		UserSpin:   true, // modifier+mouse rotate (keyboard rotation more tedious)
	}

	if cfg.Title != "" {
		s.Title = cfg.Title
	}
	if cfg.Caption != "" {
		s.Caption = cfg.Caption
	}

	s.ConvertToZUp()

	grid := NewGrid()
	if !cfg.Grid {
		grid.SetVisibility(false)
	}

	return s, grid
}

// ConvertToZUp rotates the orientation convention so +z is up.
// The default convention is -z forward / +y up; z cannot become up while
// forward lies on the z axis, so forward is repointed to +x first
func (s *Scene) ConvertToZUp() {
	s.Forward = vmath.XAxis
	s.Up = vmath.ZAxis

	// Place the camera in the positive octant, aimed at the origin
	s.Camera.Pos = DefaultCameraPos
	s.Camera.Axis = vmath.Neg(s.Camera.Pos)
}

// ResetCamera restores the default camera pose regardless of prior state
func (s *Scene) ResetCamera() {
	s.Up = vmath.ZAxis
	s.Camera.Pos = DefaultCameraPos
	s.Camera.Axis = vmath.Neg(s.Camera.Pos)
}

// AddFrame registers a reference-frame gizmo with the scene
func (s *Scene) AddFrame(f *Frame) {
	s.Frames = append(s.Frames, f)
}
