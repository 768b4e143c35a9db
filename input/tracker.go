package input

import (
	"time"
)

// DefaultHoldWindow covers typical terminal auto-repeat gaps: the initial
// repeat delay is commonly ~250-500ms, subsequent repeats ~30-80ms
const DefaultHoldWindow = 550 * time.Millisecond

// Tracker derives a held-key snapshot from discrete key-press events.
// Terminals report only presses (auto-repeated while held), never releases,
// so a key counts as held until its most recent press is older than the hold
// window.
//
// Single-goroutine use: feed Press from the same loop that calls Snapshot
type Tracker struct {
	HoldWindow time.Duration
	lastPress  map[Key]time.Time
}

// NewTracker returns a tracker with the default hold window
func NewTracker() *Tracker {
	return &Tracker{
		HoldWindow: DefaultHoldWindow,
		lastPress:  make(map[Key]time.Time),
	}
}

// Press records a key-press event at time at
func (t *Tracker) Press(k Key, at time.Time) {
	t.lastPress[k] = at
}

// Release forgets a key immediately, for hosts that do report key-up
func (t *Tracker) Release(k Key) {
	delete(t.lastPress, k)
}

// Snapshot returns the set of keys considered held at time now.
// Expired entries are pruned as a side effect
func (t *Tracker) Snapshot(now time.Time) KeySet {
	ks := make(KeySet, len(t.lastPress))
	for k, at := range t.lastPress {
		if now.Sub(at) > t.HoldWindow {
			delete(t.lastPress, k)
			continue
		}
		ks[k] = struct{}{}
	}
	return ks
}
