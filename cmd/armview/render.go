package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/armview/scene"
	"github.com/lixenwraith/armview/ui"
	"github.com/lixenwraith/armview/vmath"
)

const (
	hudRows  = 3
	nearClip = 0.1
	focalLen = 1.1 // view-height multiples
)

// view projects world points through the camera basis onto the terminal
type view struct {
	screen tcell.Screen
	w, h   int // full screen size
	viewH  int // rows above the HUD

	camPos  vmath.Vec3
	forward vmath.Vec3 // unit
	right   vmath.Vec3 // unit
	up      vmath.Vec3 // unit
}

func newView(screen tcell.Screen, s *scene.Scene) *view {
	w, h := screen.Size()
	forward := vmath.Normalize(s.Camera.Axis)
	side := vmath.Cross(s.Up, forward)
	up := vmath.Normalize(vmath.Cross(forward, side))
	// Screen x grows rightward: opposite of the camera's left-pointing side
	right := vmath.Normalize(vmath.Neg(side))

	return &view{
		screen:  screen,
		w:       w,
		h:       h,
		viewH:   max(1, h-hudRows),
		camPos:  s.Camera.Pos,
		forward: forward,
		right:   right,
		up:      up,
	}
}

// project returns screen coordinates and view depth for a world point.
// ok is false behind the near plane
func (v *view) project(p vmath.Vec3) (sx, sy float64, depth float64, ok bool) {
	rel := vmath.Sub(p, v.camPos)
	depth = vmath.Dot(rel, v.forward)
	if depth < nearClip {
		return 0, 0, depth, false
	}

	x := vmath.Dot(rel, v.right)
	y := vmath.Dot(rel, v.up)
	focal := focalLen * float64(v.viewH)
	inv := focal / depth

	// 2x horizontal for the 1:2 terminal cell aspect
	sx = float64(v.w)/2.0 + x*inv*2.0
	sy = float64(v.viewH)/2.0 - y*inv
	return sx, sy, depth, true
}

func (v *view) plot(x, y int, r rune, color scene.RGB) {
	if x < 0 || x >= v.w || y < 0 || y >= v.viewH {
		return
	}
	style := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
	v.screen.SetContent(x, y, r, nil, style)
}

// line draws a world-space segment by uniform sampling; segments that cross
// the near plane are dropped rather than clipped
func (v *view) line(from, to vmath.Vec3, r rune, color scene.RGB) {
	x0, y0, _, ok0 := v.project(from)
	x1, y1, _, ok1 := v.project(to)
	if !ok0 || !ok1 {
		return
	}

	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		v.plot(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), r, color)
	}
}

func (v *view) text(x, y int, s string, color scene.RGB) {
	style := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
	for _, r := range s {
		if x >= 0 && x < v.w && y >= 0 && y < v.h {
			v.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func dim(c scene.RGB, factor float64) scene.RGB {
	return scene.RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

var (
	gridColor  = scene.RGB{R: 70, G: 70, B: 80}
	hudColor   = scene.RGB{R: 130, G: 130, B: 150}
	focusColor = scene.RGB{R: 255, G: 200, B: 50}
	labelColor = scene.RGB{R: 200, G: 200, B: 200}
)

// renderFrame draws one full frame: grid, robots, gizmos, focus marker, HUD
func renderFrame(screen tcell.Screen, app *appState) {
	screen.Clear()
	v := newView(screen, app.scene)

	// Grid overlay
	for _, l := range app.grid.Lines() {
		v.line(l.From, l.To, '·', gridColor)
	}

	// Robots: two-link wireframe, dimmed by the opacity slider
	if app.panel.ShowRobot {
		for _, r := range app.robots {
			color := dim(r.Color, 0.25+0.75*app.panel.Opacity)
			v.line(r.Base, r.Elbow(), '█', color)
			v.line(r.Elbow(), r.Tool(), '▓', color)
		}
	}

	// Reference-frame gizmos; visibility is owned by the frames themselves,
	// toggled through the widget callbacks
	for _, f := range app.scene.Frames {
		if !f.Visible {
			continue
		}
		for _, a := range f.Arrows() {
			v.line(a.Pos, a.Tip(), '|', a.Color)
		}
		if sx, sy, _, ok := v.project(f.Pose.Pos); ok {
			v.text(int(sx)+1, int(sy), f.Label, labelColor)
		}
	}

	// Scene focus point
	if sx, sy, _, ok := v.project(app.scene.Center); ok {
		v.plot(int(sx), int(sy), '+', focusColor)
	}

	renderHUD(v, app)
	screen.Show()
}

func renderHUD(v *view, app *appState) {
	cam := app.scene.Camera
	status := fmt.Sprintf("%s  cam(%.2f %.2f %.2f)  dist %.2f  robot %s  opacity %.1f",
		app.title(), cam.Pos.X, cam.Pos.Y, cam.Pos.Z,
		vmath.Mag(cam.Axis), app.panel.Selected(), app.panel.Opacity)
	v.text(1, v.h-3, status, labelColor)

	v.text(1, v.h-2, panelLine(app.panel), hudColor)
	v.text(1, v.h-1,
		"pan W/A/S/D SPACE/SHIFT  orbit ARROWS  roll Q/E  ui TAB ENTER [ ]  quit ESC",
		hudColor)
}

// panelLine renders the widget surface as a single HUD row, with the focused
// widget bracketed
func panelLine(p *ui.Panel) string {
	mark := func(w ui.Widget, s string) string {
		if p.Focus() == w {
			return ">" + s + "<"
		}
		return " " + s + " "
	}
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	return mark(ui.WidgetReset, "Reset Camera") +
		mark(ui.WidgetRobotMenu, "Robot:"+p.Selected()) +
		mark(ui.WidgetRefFrames, check(p.ShowRefFrames)+" Frames") +
		mark(ui.WidgetRobotVisible, check(p.ShowRobot)+" Robot") +
		mark(ui.WidgetOpacity, fmt.Sprintf("Opacity %.1f", p.Opacity))
}
