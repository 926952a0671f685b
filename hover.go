package fader

// HoverGroup is a named set of elements that hover together: when any addon
// of any member element is hovered, every addon of every member is treated
// as hovered for that frame.
type HoverGroup struct {
	Name     string    `toml:"name" yaml:"name"`
	Elements []Element `toml:"elements" yaml:"elements"`
}

// RectSource supplies current addon bounds for hit testing.
type RectSource interface {
	AddonRect(name string) (Rect, bool)
}

// --- Hit testing ---

// addonHovered reports whether any pointer lies inside the addon's bounds.
// Missing addons are never hovered.
func addonHovered(rects RectSource, addon string, pointers []Vec2) bool {
	if rects == nil || len(pointers) == 0 {
		return false
	}
	r, ok := rects.AddonRect(addon)
	if !ok {
		return false
	}
	for _, p := range pointers {
		if r.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// RawHover hit-tests every registered addon against every pointer.
func RawHover(pointers []Vec2, reg *Registry, rects RectSource) map[string]bool {
	states := make(map[string]bool, reg.Len())
	for _, addon := range reg.Addons() {
		states[addon] = addonHovered(rects, addon, pointers)
	}
	return states
}

// ApplyHoverGroups returns a new map equal to raw, with every addon of every
// activated group forced to true. Activation always reads raw, so one group's
// forced hover never activates an overlapping group in the same pass.
func ApplyHoverGroups(raw map[string]bool, reg *Registry, groups []HoverGroup) map[string]bool {
	final := make(map[string]bool, len(raw))
	for k, v := range raw {
		final[k] = v
	}
	for _, g := range groups {
		var members []string
		for _, e := range g.Elements {
			members = append(members, reg.AddonsOf(e)...)
		}
		if len(members) == 0 {
			continue
		}
		activated := false
		for _, addon := range members {
			if raw[addon] {
				activated = true
				break
			}
		}
		if !activated {
			continue
		}
		for _, addon := range members {
			final[addon] = true
		}
	}
	return final
}

// --- Per-frame resolver ---

// HoverResolver computes published hover states each frame and remembers the
// previous frame's hovered set for change detection.
type HoverResolver struct {
	states  map[string]bool
	hovered map[string]struct{}
}

// NewHoverResolver creates a resolver with nothing hovered.
func NewHoverResolver() *HoverResolver {
	return &HoverResolver{
		states:  make(map[string]bool),
		hovered: make(map[string]struct{}),
	}
}

// Resolve hit-tests all addons against pointers, applies hover groups and
// publishes the result. changed reports whether the set of hovered addons
// differs from the previous call; anyHovered reports whether anything is hovered.
func (h *HoverResolver) Resolve(pointers []Vec2, reg *Registry, rects RectSource, groups []HoverGroup) (changed, anyHovered bool) {
	h.states = ApplyHoverGroups(RawHover(pointers, reg, rects), reg, groups)

	next := make(map[string]struct{}, len(h.hovered))
	for addon, on := range h.states {
		if on {
			next[addon] = struct{}{}
		}
	}
	changed = len(next) != len(h.hovered)
	if !changed {
		for addon := range next {
			if _, ok := h.hovered[addon]; !ok {
				changed = true
				break
			}
		}
	}
	h.hovered = next
	return changed, len(next) > 0
}

// Hovered reports the published hover state of addon.
func (h *HoverResolver) Hovered(addon string) bool {
	return h.states[addon]
}

// States returns the published hover map. The returned map MUST NOT be
// mutated.
func (h *HoverResolver) States() map[string]bool {
	return h.states
}
