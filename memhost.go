package fader

// CommandKind distinguishes the two sink calls.
type CommandKind uint8

const (
	CommandOpacity CommandKind = iota
	CommandVisible
)

// Command is one recorded sink call.
type Command struct {
	Kind    CommandKind
	Addon   string
	Alpha   float64
	Visible bool
}

type memAddon struct {
	rect    Rect
	present bool
	saved   float64
	alpha   float64
	visible bool
}

// MemoryHost is an in-memory Host and Sink. Every field is plain state the
// caller sets between frames; every sink call is appended to Commands.
type MemoryHost struct {
	conditions map[Condition]bool
	keys       map[int]bool
	addons     map[string]*memAddon

	Pointer      Vec2
	NoPointer    bool // report no primary pointer at all
	Unsafe       bool
	EditorOpen   bool
	HotbarsOpen  bool
	DefaultSaved float64

	Commands []Command
}

// NewMemoryHost creates a host with a saved opacity of 1 for unknown addons.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		conditions:   make(map[Condition]bool),
		keys:         make(map[int]bool),
		addons:       make(map[string]*memAddon),
		Pointer:      Vec2{X: -1, Y: -1},
		DefaultSaved: 1,
	}
}

// --- Setup ---

// SetCondition sets a raw condition value.
func (h *MemoryHost) SetCondition(c Condition, v bool) {
	h.conditions[c] = v
}

// SetKey marks a key code as held or released.
func (h *MemoryHost) SetKey(code int, held bool) {
	h.keys[code] = held
}

// PlaceAddon makes an addon present with the given bounds.
func (h *MemoryHost) PlaceAddon(name string, r Rect) {
	a := h.addon(name)
	a.rect = r
	a.present = true
}

// RemoveAddon makes an addon absent.
func (h *MemoryHost) RemoveAddon(name string) {
	h.addon(name).present = false
}

// SetSavedOpacity sets the native opacity reported for an addon.
func (h *MemoryHost) SetSavedOpacity(name string, alpha float64) {
	h.addon(name).saved = alpha
}

func (h *MemoryHost) addon(name string) *memAddon {
	a, ok := h.addons[name]
	if !ok {
		a = &memAddon{saved: h.DefaultSaved, alpha: h.DefaultSaved, visible: true}
		h.addons[name] = a
	}
	return a
}

// --- Host ---

// ConditionActive implements ConditionSource.
func (h *MemoryHost) ConditionActive(c Condition) bool {
	return h.conditions[c]
}

// KeyHeld implements KeySource.
func (h *MemoryHost) KeyHeld(code int) bool {
	return h.keys[code]
}

// HotbarsLocked implements HotbarSource.
func (h *MemoryHost) HotbarsLocked() bool {
	return !h.HotbarsOpen
}

// AddonRect implements Host.
func (h *MemoryHost) AddonRect(name string) (Rect, bool) {
	a, ok := h.addons[name]
	if !ok || !a.present {
		return Rect{}, false
	}
	return a.rect, true
}

// SavedOpacity implements Host.
func (h *MemoryHost) SavedOpacity(name string) float64 {
	if a, ok := h.addons[name]; ok {
		return a.saved
	}
	return h.DefaultSaved
}

// Pointers implements Host.
func (h *MemoryHost) Pointers() []Vec2 {
	if h.NoPointer {
		return nil
	}
	return []Vec2{h.Pointer}
}

// SafeToWork implements Host.
func (h *MemoryHost) SafeToWork() bool {
	return !h.Unsafe
}

// LayoutEditorOpen implements Host.
func (h *MemoryHost) LayoutEditorOpen() bool {
	return h.EditorOpen
}

// --- Sink ---

// SetOpacity implements Sink.
func (h *MemoryHost) SetOpacity(name string, alpha float64) {
	h.addon(name).alpha = alpha
	h.Commands = append(h.Commands, Command{Kind: CommandOpacity, Addon: name, Alpha: alpha})
}

// SetVisible implements Sink.
func (h *MemoryHost) SetVisible(name string, visible bool) {
	h.addon(name).visible = visible
	h.Commands = append(h.Commands, Command{Kind: CommandVisible, Addon: name, Visible: visible})
}

// --- Inspection ---

// Opacity returns the last opacity pushed for an addon.
func (h *MemoryHost) Opacity(name string) float64 {
	if a, ok := h.addons[name]; ok {
		return a.alpha
	}
	return h.DefaultSaved
}

// IsVisible returns the last visibility pushed for an addon.
func (h *MemoryHost) IsVisible(name string) bool {
	if a, ok := h.addons[name]; ok {
		return a.visible
	}
	return true
}

// ResetCommands clears the recorded command log.
func (h *MemoryHost) ResetCommands() {
	h.Commands = h.Commands[:0]
}
