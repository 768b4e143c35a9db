package input

import (
	"fmt"

	"github.com/lixenwraith/armview/camctl"
)

// Bindings maps physical keys to camera actions
type Bindings map[Key]camctl.Action

// DefaultBindings returns the documented keyboard contract:
//
//	W / A / S / D      pan forward / left / back / right
//	Space / Shift      pan up / down
//	Arrow keys         orbit
//	Q / E              roll left / right
//	Ctrl               free-spin modifier (native rotate, bypasses the controller)
func DefaultBindings() Bindings {
	return Bindings{
		KeyW:     camctl.ActionPanForward,
		KeyS:     camctl.ActionPanBack,
		KeyA:     camctl.ActionPanLeft,
		KeyD:     camctl.ActionPanRight,
		KeySpace: camctl.ActionPanUp,
		KeyShift: camctl.ActionPanDown,
		KeyLeft:  camctl.ActionOrbitLeft,
		KeyRight: camctl.ActionOrbitRight,
		KeyUp:    camctl.ActionOrbitUp,
		KeyDown:  camctl.ActionOrbitDown,
		KeyQ:     camctl.ActionRollLeft,
		KeyE:     camctl.ActionRollRight,
		KeyCtrl:  camctl.ActionFreeSpin,
	}
}

// Resolve converts a key snapshot into the held-action set for this tick
func (b Bindings) Resolve(keys KeySet) camctl.Held {
	held := make(camctl.Held, len(keys))
	for k := range keys {
		if action, ok := b[k]; ok {
			held[action] = struct{}{}
		}
	}
	return held
}

// ApplyOverrides merges a sparse key→action-name map over the bindings.
// Unknown action names are rejected; unknown keys are accepted so users can
// bind keys this package has no constant for
func (b Bindings) ApplyOverrides(overrides map[string]string) error {
	for key, actionName := range overrides {
		action, ok := camctl.ActionByName(actionName)
		if !ok {
			return fmt.Errorf("keymap: unknown action %q for key %q", actionName, key)
		}
		b[Key(key)] = action
	}
	return nil
}
