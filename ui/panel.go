package ui

// Widget identifies one control in the panel's focus order
type Widget uint8

const (
	WidgetReset Widget = iota // reset-camera button
	WidgetRobotMenu           // robot-selector dropdown
	WidgetRefFrames           // reference-frame visibility checkbox
	WidgetRobotVisible        // robot visibility checkbox
	WidgetOpacity             // opacity slider

	widgetCount
)

// OpacitySliderStep is the slider increment per adjustment
const OpacitySliderStep = 0.1

// Panel is the widget surface state: one reset button, a robot dropdown, two
// checkboxes and an opacity slider. It holds no rendering; hosts draw from
// its state and feed focus/activate/adjust events in
type Panel struct {
	Robots        []string
	ShowRefFrames bool
	ShowRobot     bool
	Opacity       float64

	focus    Widget
	selected int

	controls Controls
	resetFn  func()
}

// NewPanel builds the panel over the given robot choices. controls may be
// nil, in which case callbacks silently do nothing. resetFn restores the
// default camera pose
func NewPanel(robots []string, controls Controls, resetFn func()) *Panel {
	if controls == nil {
		controls = NopControls{}
	}
	return &Panel{
		Robots:        robots,
		ShowRefFrames: true,
		ShowRobot:     true,
		Opacity:       1.0,
		controls:      controls,
		resetFn:       resetFn,
	}
}

// Focus returns the currently focused widget
func (p *Panel) Focus() Widget {
	return p.focus
}

// FocusNext cycles focus forward through the widgets
func (p *Panel) FocusNext() {
	p.focus = (p.focus + 1) % widgetCount
}

// Selected returns the chosen robot name, or "" with no robots
func (p *Panel) Selected() string {
	if len(p.Robots) == 0 {
		return ""
	}
	return p.Robots[p.selected]
}

// Activate triggers the focused widget: presses the button or toggles the
// focused checkbox. Menu and slider ignore activation; they respond to Adjust
func (p *Panel) Activate() {
	switch p.focus {
	case WidgetReset:
		if p.resetFn != nil {
			p.resetFn()
		}
	case WidgetRefFrames:
		p.ShowRefFrames = !p.ShowRefFrames
		p.controls.OnReferenceFrameToggle(p.ShowRefFrames)
	case WidgetRobotVisible:
		p.ShowRobot = !p.ShowRobot
		p.controls.OnRobotVisibilityToggle(p.ShowRobot)
	}
}

// Adjust moves the focused widget's value by delta steps: cycles the robot
// dropdown or nudges the opacity slider. Other widgets ignore it
func (p *Panel) Adjust(delta int) {
	switch p.focus {
	case WidgetRobotMenu:
		if len(p.Robots) == 0 {
			return
		}
		p.selected = (p.selected + delta%len(p.Robots) + len(p.Robots)) % len(p.Robots)
		p.controls.OnRobotSelect(p.Robots[p.selected])
	case WidgetOpacity:
		p.Opacity += float64(delta) * OpacitySliderStep
		if p.Opacity < 0 {
			p.Opacity = 0
		}
		if p.Opacity > 1 {
			p.Opacity = 1
		}
		p.controls.OnOpacityChange(p.Opacity)
	}
}
