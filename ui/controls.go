// Package ui hosts the viewer's widget surface: a capability interface for
// widget callbacks, a toolkit-agnostic panel state machine, and the control
// manual text. The camera controller has no dependency on any of this.
package ui

// Controls receives widget callbacks. Implementations belong to the host
// application; the panel only dispatches
type Controls interface {
	// OnRobotSelect fires when a robot is chosen from the dropdown
	OnRobotSelect(name string)

	// OnReferenceFrameToggle fires when the reference-frame checkbox changes
	OnReferenceFrameToggle(visible bool)

	// OnRobotVisibilityToggle fires when the robot-visibility checkbox changes
	OnRobotVisibilityToggle(visible bool)

	// OnOpacityChange fires when the opacity slider moves, opacity in [0,1]
	OnOpacityChange(opacity float64)
}

// NopControls silently does nothing for every callback
type NopControls struct{}

func (NopControls) OnRobotSelect(string) {}

func (NopControls) OnReferenceFrameToggle(bool) {}

func (NopControls) OnRobotVisibilityToggle(bool) {}

func (NopControls) OnOpacityChange(float64) {}

var _ Controls = NopControls{}
