package fader

// ConditionSource answers raw condition queries for the current frame.
// Implementations must return false for anything they cannot determine
// (uninitialised game state, missing addons) instead of failing.
type ConditionSource interface {
	ConditionActive(c Condition) bool
}

// KeySource is an optional ConditionSource extension exposing raw key state.
// When present, a held key turns on its modifier or override-key condition
// in addition to whatever ConditionActive reports.
type KeySource interface {
	KeyHeld(code int) bool
}

// HotbarSource is an optional ConditionSource extension used by
// Config.FocusOnHotbarsUnlock.
type HotbarSource interface {
	HotbarsLocked() bool
}

// Host is everything the engine reads from its environment each frame.
type Host interface {
	ConditionSource

	// AddonRect returns the addon's current on-screen bounds. ok is false when
	// the addon does not exist right now.
	AddonRect(name string) (r Rect, ok bool)

	// SavedOpacity returns the addon's native, non-faded opacity.
	SavedOpacity(name string) float64

	// Pointers returns the primary pointer position(s) in screen space.
	Pointers() []Vec2

	// SafeToWork reports whether UI may be mutated this frame (logged in and
	// not between areas).
	SafeToWork() bool

	// LayoutEditorOpen reports whether the host's HUD layout editor is open.
	LayoutEditorOpen() bool
}

// Sink receives the engine's per-addon output commands. Both methods must
// tolerate addons that no longer exist.
type Sink interface {
	SetOpacity(name string, alpha float64)

	// SetVisible shows or hides the addon. Hiding may move the addon off the
	// visible canvas; showing restores its previous position.
	SetVisible(name string, visible bool)
}
