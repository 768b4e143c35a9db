package input

import (
	"testing"
	"time"

	"github.com/lixenwraith/armview/camctl"
)

func TestDefaultBindingsResolve(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		key  Key
		want camctl.Action
	}{
		{KeyW, camctl.ActionPanForward},
		{KeyS, camctl.ActionPanBack},
		{KeyA, camctl.ActionPanLeft},
		{KeyD, camctl.ActionPanRight},
		{KeySpace, camctl.ActionPanUp},
		{KeyShift, camctl.ActionPanDown},
		{KeyLeft, camctl.ActionOrbitLeft},
		{KeyRight, camctl.ActionOrbitRight},
		{KeyUp, camctl.ActionOrbitUp},
		{KeyDown, camctl.ActionOrbitDown},
		{KeyQ, camctl.ActionRollLeft},
		{KeyE, camctl.ActionRollRight},
		{KeyCtrl, camctl.ActionFreeSpin},
	}
	for _, tt := range tests {
		held := b.Resolve(NewKeySet(tt.key))
		if !held.Has(tt.want) {
			t.Errorf("key %q: expected action %v in held set", tt.key, tt.want)
		}
		if len(held) != 1 {
			t.Errorf("key %q: expected 1 action, got %d", tt.key, len(held))
		}
	}
}

func TestResolveUnboundKeysIgnored(t *testing.T) {
	b := DefaultBindings()
	held := b.Resolve(NewKeySet(Key("x"), Key("enter"), KeyW))
	if len(held) != 1 || !held.Has(camctl.ActionPanForward) {
		t.Errorf("expected only pan_forward, got %v", held)
	}
}

func TestResolveMultipleKeys(t *testing.T) {
	b := DefaultBindings()
	held := b.Resolve(NewKeySet(KeyW, KeyLeft, KeyQ))
	for _, want := range []camctl.Action{
		camctl.ActionPanForward, camctl.ActionOrbitLeft, camctl.ActionRollLeft,
	} {
		if !held.Has(want) {
			t.Errorf("expected %v in held set", want)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	b := DefaultBindings()
	err := b.ApplyOverrides(map[string]string{
		"i": "pan_forward",
		"k": "pan_back",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	held := b.Resolve(NewKeySet(Key("i")))
	if !held.Has(camctl.ActionPanForward) {
		t.Errorf("override binding not applied")
	}
	// Defaults remain intact
	held = b.Resolve(NewKeySet(KeyW))
	if !held.Has(camctl.ActionPanForward) {
		t.Errorf("default binding lost after override")
	}
}

func TestApplyOverridesUnknownAction(t *testing.T) {
	b := DefaultBindings()
	if err := b.ApplyOverrides(map[string]string{"i": "teleport"}); err == nil {
		t.Errorf("expected error for unknown action name")
	}
}

func TestTrackerHoldWindow(t *testing.T) {
	tr := NewTracker()
	t0 := time.Now()

	tr.Press(KeyW, t0)
	tr.Press(KeyQ, t0)

	// Within the window both keys are held
	ks := tr.Snapshot(t0.Add(100 * time.Millisecond))
	if !ks.Has(KeyW) || !ks.Has(KeyQ) {
		t.Fatalf("expected both keys held, got %v", ks)
	}

	// Repeat keeps w alive past q's expiry
	tr.Press(KeyW, t0.Add(400*time.Millisecond))
	ks = tr.Snapshot(t0.Add(700 * time.Millisecond))
	if !ks.Has(KeyW) {
		t.Errorf("repeated key expired early")
	}
	if ks.Has(KeyQ) {
		t.Errorf("stale key still held")
	}

	// Everything expires eventually
	ks = tr.Snapshot(t0.Add(5 * time.Second))
	if len(ks) != 0 {
		t.Errorf("expected empty snapshot, got %v", ks)
	}
}

func TestTrackerRelease(t *testing.T) {
	tr := NewTracker()
	t0 := time.Now()
	tr.Press(KeyW, t0)
	tr.Release(KeyW)
	if ks := tr.Snapshot(t0); len(ks) != 0 {
		t.Errorf("released key still held: %v", ks)
	}
}
