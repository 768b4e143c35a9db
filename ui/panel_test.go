package ui

import (
	"strings"
	"testing"
)

// recorder captures callback invocations for assertions
type recorder struct {
	robot    string
	refVis   []bool
	robotVis []bool
	opacity  []float64
}

func (r *recorder) OnRobotSelect(name string)       { r.robot = name }
func (r *recorder) OnReferenceFrameToggle(v bool)   { r.refVis = append(r.refVis, v) }
func (r *recorder) OnRobotVisibilityToggle(v bool)  { r.robotVis = append(r.robotVis, v) }
func (r *recorder) OnOpacityChange(opacity float64) { r.opacity = append(r.opacity, opacity) }

func TestResetButton(t *testing.T) {
	resets := 0
	p := NewPanel([]string{"r1"}, nil, func() { resets++ })

	if p.Focus() != WidgetReset {
		t.Fatalf("initial focus should be reset button, got %v", p.Focus())
	}
	p.Activate()
	p.Activate()
	if resets != 2 {
		t.Errorf("expected 2 resets, got %d", resets)
	}
}

func TestFocusCycles(t *testing.T) {
	p := NewPanel(nil, nil, nil)
	seen := map[Widget]bool{}
	for i := 0; i < int(widgetCount); i++ {
		seen[p.Focus()] = true
		p.FocusNext()
	}
	if len(seen) != int(widgetCount) {
		t.Errorf("focus cycle missed widgets: %v", seen)
	}
	if p.Focus() != WidgetReset {
		t.Errorf("focus should wrap back to reset, got %v", p.Focus())
	}
}

func TestRobotMenuSelection(t *testing.T) {
	rec := &recorder{}
	p := NewPanel([]string{"r1", "r2"}, rec, nil)
	p.FocusNext() // menu

	p.Adjust(1)
	if rec.robot != "r2" || p.Selected() != "r2" {
		t.Errorf("expected r2 selected, got %q / %q", rec.robot, p.Selected())
	}
	p.Adjust(1)
	if p.Selected() != "r1" {
		t.Errorf("selection should wrap, got %q", p.Selected())
	}
	p.Adjust(-1)
	if p.Selected() != "r2" {
		t.Errorf("negative adjustment should wrap backward, got %q", p.Selected())
	}
}

func TestCheckboxesDispatch(t *testing.T) {
	rec := &recorder{}
	p := NewPanel(nil, rec, nil)

	p.FocusNext() // menu
	p.FocusNext() // ref frames
	p.Activate()
	p.Activate()
	if len(rec.refVis) != 2 || rec.refVis[0] != false || rec.refVis[1] != true {
		t.Errorf("reference-frame toggles wrong: %v", rec.refVis)
	}

	p.FocusNext() // robot visible
	p.Activate()
	if len(rec.robotVis) != 1 || rec.robotVis[0] != false {
		t.Errorf("robot visibility toggle wrong: %v", rec.robotVis)
	}
}

func TestOpacitySliderClamps(t *testing.T) {
	rec := &recorder{}
	p := NewPanel(nil, rec, nil)
	for p.Focus() != WidgetOpacity {
		p.FocusNext()
	}

	for i := 0; i < 5; i++ {
		p.Adjust(1)
	}
	if p.Opacity != 1.0 {
		t.Errorf("opacity should clamp at 1.0, got %v", p.Opacity)
	}

	for i := 0; i < 20; i++ {
		p.Adjust(-1)
	}
	if p.Opacity != 0.0 {
		t.Errorf("opacity should clamp at 0.0, got %v", p.Opacity)
	}
	if last := rec.opacity[len(rec.opacity)-1]; last != 0.0 {
		t.Errorf("last reported opacity should be 0.0, got %v", last)
	}
}

func TestNopControlsDoNothing(t *testing.T) {
	// Nil controls fall back to no-ops; exercising every path must not panic
	p := NewPanel([]string{"r1"}, nil, nil)
	for i := 0; i < int(widgetCount); i++ {
		p.Activate()
		p.Adjust(1)
		p.FocusNext()
	}
}

func TestControlManualMentionsEveryBinding(t *testing.T) {
	manual := ControlManual()
	for _, token := range []string{"W", "A", "S", "D", "SPACE", "SHIFT", "CTRL", "ARROW", "Q", "E", "MOUSEWHEEL"} {
		if !strings.Contains(manual, token) {
			t.Errorf("control manual missing %q", token)
		}
	}
}
