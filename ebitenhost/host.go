// Package ebitenhost runs a fader Engine inside an Ebitengine game. It reads
// pointer, keyboard and gamepad state from ebiten and renders a set of
// rectangular panels whose opacity and visibility the engine controls.
package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fader"
)

// offscreen is where hidden panels are parked, matching how the game client
// moves addons out of reach instead of destroying them.
const offscreen = -9999

// Panel is one drawable addon.
type Panel struct {
	Name   string
	Bounds fader.Rect
	Color  color.RGBA
	Saved  float64 // native opacity restored when fading is off
	Alpha  float64 // opacity last pushed by the engine

	home   fader.Rect
	hidden bool
}

// Hidden reports whether the panel is parked off screen.
func (p *Panel) Hidden() bool {
	return p.hidden
}

// Host implements fader.Host, fader.KeySource and fader.Sink on top of
// ebiten input. Conditions ebiten cannot observe (combat, duty, chat focus
// and so on) are plain toggles set by the game.
type Host struct {
	panels     map[string]*Panel
	order      []string
	conditions map[fader.Condition]bool

	EditorOpen bool
	Unsafe     bool
	Touch      bool // also report touch points as pointers
}

// New creates an empty host.
func New() *Host {
	return &Host{
		panels:     make(map[string]*Panel),
		conditions: make(map[fader.Condition]bool),
		Touch:      true,
	}
}

// AddPanel registers a drawable panel. Adding an existing name replaces its
// bounds, colour and saved opacity.
func (h *Host) AddPanel(name string, bounds fader.Rect, c color.RGBA, saved float64) *Panel {
	p, ok := h.panels[name]
	if !ok {
		p = &Panel{Name: name}
		h.panels[name] = p
		h.order = append(h.order, name)
	}
	p.Bounds = bounds
	p.Color = c
	p.Saved = saved
	p.Alpha = saved
	return p
}

// Panel looks up a panel by name.
func (h *Host) Panel(name string) (*Panel, bool) {
	p, ok := h.panels[name]
	return p, ok
}

// Panels returns every panel in insertion order.
func (h *Host) Panels() []*Panel {
	out := make([]*Panel, 0, len(h.order))
	for _, name := range h.order {
		out = append(out, h.panels[name])
	}
	return out
}

// SetCondition sets a toggled condition.
func (h *Host) SetCondition(c fader.Condition, v bool) {
	h.conditions[c] = v
}

// ToggleCondition flips a toggled condition and returns the new value.
func (h *Host) ToggleCondition(c fader.Condition) bool {
	h.conditions[c] = !h.conditions[c]
	return h.conditions[c]
}

// --- fader.Host ---

// ConditionActive implements fader.ConditionSource. Controller triggers and
// bumpers are read from any connected standard gamepad; movement from the
// arrow keys and WASD.
func (h *Host) ConditionActive(c fader.Condition) bool {
	switch c {
	case fader.ConditionLeftTrigger:
		return h.conditions[c] || gamepadHeld(ebiten.StandardGamepadButtonFrontBottomLeft)
	case fader.ConditionRightTrigger:
		return h.conditions[c] || gamepadHeld(ebiten.StandardGamepadButtonFrontBottomRight)
	case fader.ConditionLeftBumper:
		return h.conditions[c] || gamepadHeld(ebiten.StandardGamepadButtonFrontTopLeft)
	case fader.ConditionRightBumper:
		return h.conditions[c] || gamepadHeld(ebiten.StandardGamepadButtonFrontTopRight)
	case fader.ConditionIsMoving:
		return h.conditions[c] || anyKeyPressed(movementKeys)
	}
	return h.conditions[c]
}

// KeyHeld implements fader.KeySource for Windows-style virtual key codes.
func (h *Host) KeyHeld(code int) bool {
	k, ok := ebitenKey(code)
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(k)
}

// AddonRect implements fader.Host.
func (h *Host) AddonRect(name string) (fader.Rect, bool) {
	p, ok := h.panels[name]
	if !ok {
		return fader.Rect{}, false
	}
	return p.Bounds, true
}

// SavedOpacity implements fader.Host.
func (h *Host) SavedOpacity(name string) float64 {
	if p, ok := h.panels[name]; ok {
		return p.Saved
	}
	return 1
}

// Pointers implements fader.Host: the mouse cursor, plus active touches.
func (h *Host) Pointers() []fader.Vec2 {
	x, y := ebiten.CursorPosition()
	pts := []fader.Vec2{{X: float64(x), Y: float64(y)}}
	if !h.Touch {
		return pts
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		pts = append(pts, fader.Vec2{X: float64(tx), Y: float64(ty)})
	}
	return pts
}

// SafeToWork implements fader.Host.
func (h *Host) SafeToWork() bool {
	return !h.Unsafe
}

// LayoutEditorOpen implements fader.Host.
func (h *Host) LayoutEditorOpen() bool {
	return h.EditorOpen
}

// --- fader.Sink ---

// SetOpacity implements fader.Sink.
func (h *Host) SetOpacity(name string, alpha float64) {
	if p, ok := h.panels[name]; ok {
		p.Alpha = alpha
	}
}

// SetVisible implements fader.Sink. Hiding parks the panel off screen and
// remembers where it was; showing puts it back.
func (h *Host) SetVisible(name string, visible bool) {
	p, ok := h.panels[name]
	if !ok {
		return
	}
	if visible {
		if p.hidden {
			p.Bounds = p.home
			p.hidden = false
		}
		return
	}
	if !p.hidden {
		p.home = p.Bounds
		p.Bounds.X, p.Bounds.Y = offscreen, offscreen
		p.hidden = true
	}
}

// --- Input helpers ---

var movementKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func gamepadHeld(b ebiten.StandardGamepadButton) bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	return false
}

// ebitenKey maps a virtual key code to an ebiten key. Modifiers, digits,
// letters and F1-F12 are supported.
func ebitenKey(code int) (ebiten.Key, bool) {
	switch code {
	case fader.KeyShift:
		return ebiten.KeyShift, true
	case fader.KeyCtrl:
		return ebiten.KeyControl, true
	case fader.KeyAlt:
		return ebiten.KeyAlt, true
	}
	switch {
	case code >= 0x30 && code <= 0x39:
		return digitKeys[code-0x30], true
	case code >= 0x41 && code <= 0x5A:
		return letterKeys[code-0x41], true
	case code >= 0x70 && code <= 0x7B:
		return functionKeys[code-0x70], true
	}
	return 0, false
}

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

var functionKeys = [...]ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
	ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
}
