// Package camctl implements the keyboard-driven camera controller: each tick
// it consumes a snapshot of held actions and rewrites the scene's camera
// position, axis and up vectors in camera-relative space.
package camctl

// Action is a semantic camera input, decoupled from physical keys
type Action uint8

const (
	ActionNone Action = iota

	// Pan: translate camera position without changing viewing direction
	ActionPanForward
	ActionPanBack
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown

	// Orbit: move along an arc around the focus point, always facing it
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown

	// Roll: rotate the up vector around the camera's forward axis
	ActionRollLeft
	ActionRollRight

	// ActionFreeSpin marks the native free-rotate modifier; while held the
	// controller must not touch the camera pose at all
	ActionFreeSpin
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionPanForward: "pan_forward",
	ActionPanBack:    "pan_back",
	ActionPanLeft:    "pan_left",
	ActionPanRight:   "pan_right",
	ActionPanUp:      "pan_up",
	ActionPanDown:    "pan_down",
	ActionOrbitLeft:  "orbit_left",
	ActionOrbitRight: "orbit_right",
	ActionOrbitUp:    "orbit_up",
	ActionOrbitDown:  "orbit_down",
	ActionRollLeft:   "roll_left",
	ActionRollRight:  "roll_right",
	ActionFreeSpin:   "free_spin",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionByName resolves a config-file action name, for keymap overrides
func ActionByName(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Held is the instantaneous unordered set of actions active this tick.
// Rebuilt from the input snapshot every tick, never persisted
type Held map[Action]struct{}

// NewHeld builds a set from the given actions
func NewHeld(actions ...Action) Held {
	h := make(Held, len(actions))
	for _, a := range actions {
		h[a] = struct{}{}
	}
	return h
}

// Has reports whether a is in the set
func (h Held) Has(a Action) bool {
	_, ok := h[a]
	return ok
}
