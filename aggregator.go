package fader

import "time"

// StateAggregator pulls raw condition values from a ConditionSource into a
// Snapshot and tracks whether anything changed since the previous frame.
type StateAggregator struct {
	snap     Snapshot
	lastChat time.Time
}

// NewStateAggregator creates an aggregator whose chat-activity window opens
// at now.
func NewStateAggregator(now time.Time) *StateAggregator {
	return &StateAggregator{lastChat: now}
}

// Snapshot returns the most recently aggregated values.
func (a *StateAggregator) Snapshot() Snapshot {
	return a.snap
}

// NoteChatActivity records that a qualifying chat message arrived at now.
func (a *StateAggregator) NoteChatActivity(now time.Time) {
	a.lastChat = now
}

// ChatActive reports whether the last chat message is within timeout of now.
func (a *StateAggregator) ChatActive(now time.Time, timeout time.Duration) bool {
	return now.Sub(a.lastChat) < timeout
}

// Refresh re-reads every non-derived condition and reports whether any value
// differs from the previous frame. The snapshot is overwritten regardless.
// Hover is left untouched; see SetHover. A nil src reads as all-false.
func (a *StateAggregator) Refresh(src ConditionSource, cfg *Config, now time.Time) (Snapshot, bool) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	raw := func(c Condition) bool {
		if src == nil {
			return false
		}
		return src.ConditionActive(c)
	}
	keys, _ := src.(KeySource)
	key := func(code int, c Condition) bool {
		if keys != nil && keys.KeyHeld(code) {
			return true
		}
		return raw(c)
	}

	changed := false
	update := func(c Condition, v bool) {
		if a.snap.set(c, v) {
			changed = true
		}
	}

	userFocus := key(cfg.OverrideKey, ConditionUserFocus)
	if !userFocus && cfg.FocusOnHotbarsUnlock {
		if hb, ok := src.(HotbarSource); ok {
			userFocus = !hb.HotbarsLocked()
		}
	}
	update(ConditionUserFocus, userFocus)
	update(ConditionAltKeyFocus, key(KeyAlt, ConditionAltKeyFocus))
	update(ConditionCtrlKeyFocus, key(KeyCtrl, ConditionCtrlKeyFocus))
	update(ConditionShiftKeyFocus, key(KeyShift, ConditionShiftKeyFocus))
	update(ConditionChatActivity, a.ChatActive(now, cfg.ChatActivityTimeout.Duration))

	island := raw(ConditionIslandSanctuary)
	update(ConditionIslandSanctuary, island)
	update(ConditionDuty, !island && raw(ConditionDuty))

	for c := ConditionDefault + 1; c < conditionCount; c++ {
		if derivedCondition(c) {
			continue
		}
		update(c, raw(c))
	}
	return a.snap, changed
}

// SetHover stores the derived Hover condition and reports whether it changed.
func (a *StateAggregator) SetHover(hovered bool) bool {
	return a.snap.set(ConditionHover, hovered)
}

// derivedCondition reports whether c is computed by the aggregator rather
// than read straight from the source.
func derivedCondition(c Condition) bool {
	switch c {
	case ConditionDefault, ConditionHover, ConditionUserFocus,
		ConditionAltKeyFocus, ConditionCtrlKeyFocus, ConditionShiftKeyFocus,
		ConditionChatActivity, ConditionIslandSanctuary, ConditionDuty:
		return true
	}
	return false
}
