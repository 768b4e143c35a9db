package scene

import (
	"github.com/lixenwraith/armview/vmath"
)

// Grid defaults, world units
const (
	DefaultGridSpan = 5.0
	DefaultGridCell = 1.0
)

// Line is a world-space line segment for the renderer
type Line struct {
	From, To vmath.Vec3
}

// Grid is the toggleable floor-plane overlay handle returned by scene Init.
// Lines lie in the xy-plane at z=0, matching the z-up convention
type Grid struct {
	Span    float64 // half-extent along x and y
	Cell    float64 // spacing between grid lines
	visible bool
}

// NewGrid returns a visible grid with default span and cell size
func NewGrid() *Grid {
	return &Grid{
		Span:    DefaultGridSpan,
		Cell:    DefaultGridCell,
		visible: true,
	}
}

// SetVisibility toggles the overlay
func (g *Grid) SetVisibility(visible bool) {
	g.visible = visible
}

// Visible reports whether the overlay is drawn
func (g *Grid) Visible() bool {
	return g.visible
}

// Lines returns the overlay's line segments, or nil when hidden
func (g *Grid) Lines() []Line {
	if !g.visible {
		return nil
	}
	var lines []Line
	for v := -g.Span; v <= g.Span+g.Cell/2; v += g.Cell {
		lines = append(lines,
			Line{From: vmath.Vec3{X: v, Y: -g.Span}, To: vmath.Vec3{X: v, Y: g.Span}},
			Line{From: vmath.Vec3{X: -g.Span, Y: v}, To: vmath.Vec3{X: g.Span, Y: v}},
		)
	}
	return lines
}
