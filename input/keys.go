// Package input maps physical keyboard state onto camera actions: key
// identifiers, rebindable key tables, and a held-key tracker for hosts whose
// event source has no key-up notion.
package input

// Key identifies a physical key. Identifiers are lowercase key names;
// non-character keys use their common names
type Key string

const (
	KeyW     Key = "w"
	KeyA     Key = "a"
	KeyS     Key = "s"
	KeyD     Key = "d"
	KeyQ     Key = "q"
	KeyE     Key = "e"
	KeySpace Key = "space"
	KeyShift Key = "shift"
	KeyCtrl  Key = "ctrl"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
)

// KeySet is the instantaneous unordered collection of depressed keys,
// re-queried each tick and never persisted
type KeySet map[Key]struct{}

// NewKeySet builds a set from the given keys
func NewKeySet(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = struct{}{}
	}
	return ks
}

// Has reports whether k is depressed
func (ks KeySet) Has(k Key) bool {
	_, ok := ks[k]
	return ok
}
