package fader

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestAggregatorRawConditions(t *testing.T) {
	host := NewMemoryHost()
	host.SetCondition(ConditionCombat, true)
	host.SetCondition(ConditionMounted, true)
	agg := NewStateAggregator(epoch)
	cfg := DefaultConfig()

	snap, changed := agg.Refresh(host, cfg, epoch)
	if !changed {
		t.Error("first refresh should report a change")
	}
	if !snap.Active(ConditionCombat) || !snap.Active(ConditionMounted) {
		t.Errorf("raw conditions missing: %s", snap)
	}
	if snap.Active(ConditionCrafting) {
		t.Error("unset condition should be false")
	}

	if _, changed := agg.Refresh(host, cfg, epoch.Add(time.Millisecond)); changed {
		t.Error("identical refresh should not report a change")
	}

	host.SetCondition(ConditionCombat, false)
	snap, changed = agg.Refresh(host, cfg, epoch.Add(2*time.Millisecond))
	if !changed || snap.Active(ConditionCombat) {
		t.Error("clearing combat should report a change")
	}
}

func TestAggregatorNilSource(t *testing.T) {
	agg := NewStateAggregator(epoch)
	snap, _ := agg.Refresh(nil, nil, epoch)
	for _, c := range Conditions() {
		switch c {
		case ConditionDefault, ConditionChatActivity:
			if !snap.Active(c) {
				t.Errorf("%v should be active", c)
			}
		default:
			if snap.Active(c) {
				t.Errorf("%v should be inactive with no source", c)
			}
		}
	}
}

func TestAggregatorKeys(t *testing.T) {
	tests := []struct {
		name    string
		key     int
		cfgKey  int
		want    []Condition
		notWant []Condition
	}{
		{"alt is override", KeyAlt, KeyAlt,
			[]Condition{ConditionUserFocus, ConditionAltKeyFocus},
			[]Condition{ConditionCtrlKeyFocus, ConditionShiftKeyFocus}},
		{"ctrl only", KeyCtrl, KeyAlt,
			[]Condition{ConditionCtrlKeyFocus},
			[]Condition{ConditionUserFocus, ConditionAltKeyFocus}},
		{"custom override", 0x46, 0x46,
			[]Condition{ConditionUserFocus},
			[]Condition{ConditionAltKeyFocus, ConditionCtrlKeyFocus, ConditionShiftKeyFocus}},
		{"shift", KeyShift, KeyAlt,
			[]Condition{ConditionShiftKeyFocus},
			[]Condition{ConditionUserFocus}},
	}
	for _, tt := range tests {
		host := NewMemoryHost()
		host.SetKey(tt.key, true)
		cfg := DefaultConfig()
		cfg.OverrideKey = tt.cfgKey

		snap, _ := NewStateAggregator(epoch).Refresh(host, cfg, epoch)
		for _, c := range tt.want {
			if !snap.Active(c) {
				t.Errorf("%s: %v should be active", tt.name, c)
			}
		}
		for _, c := range tt.notWant {
			if snap.Active(c) {
				t.Errorf("%s: %v should be inactive", tt.name, c)
			}
		}
	}
}

func TestAggregatorRawKeyConditionPassesThrough(t *testing.T) {
	host := NewMemoryHost()
	host.SetCondition(ConditionAltKeyFocus, true)
	snap, _ := NewStateAggregator(epoch).Refresh(host, DefaultConfig(), epoch)
	if !snap.Active(ConditionAltKeyFocus) {
		t.Error("a raw AltKeyFocus should hold without the key")
	}
}

func TestAggregatorHotbarsUnlocked(t *testing.T) {
	host := NewMemoryHost()
	host.HotbarsOpen = true
	cfg := DefaultConfig()

	snap, _ := NewStateAggregator(epoch).Refresh(host, cfg, epoch)
	if snap.Active(ConditionUserFocus) {
		t.Error("unlocked hotbars should not count without FocusOnHotbarsUnlock")
	}

	cfg.FocusOnHotbarsUnlock = true
	snap, _ = NewStateAggregator(epoch).Refresh(host, cfg, epoch)
	if !snap.Active(ConditionUserFocus) {
		t.Error("unlocked hotbars should set UserFocus")
	}
}

func TestAggregatorDutyExcludesIslandSanctuary(t *testing.T) {
	tests := []struct {
		duty, island bool
		want         bool
	}{
		{true, false, true},
		{true, true, false},
		{false, true, false},
		{false, false, false},
	}
	for _, tt := range tests {
		host := NewMemoryHost()
		host.SetCondition(ConditionDuty, tt.duty)
		host.SetCondition(ConditionIslandSanctuary, tt.island)
		snap, _ := NewStateAggregator(epoch).Refresh(host, DefaultConfig(), epoch)
		if got := snap.Active(ConditionDuty); got != tt.want {
			t.Errorf("duty=%v island=%v: Duty = %v, want %v", tt.duty, tt.island, got, tt.want)
		}
		if got := snap.Active(ConditionIslandSanctuary); got != tt.island {
			t.Errorf("IslandSanctuary = %v, want %v", got, tt.island)
		}
	}
}

func TestAggregatorChatActivityWindow(t *testing.T) {
	cfg := DefaultConfig()
	timeout := cfg.ChatActivityTimeout.Duration
	agg := NewStateAggregator(epoch)

	snap, _ := agg.Refresh(nil, cfg, epoch.Add(timeout-time.Millisecond))
	if !snap.Active(ConditionChatActivity) {
		t.Error("chat activity should start active")
	}
	snap, changed := agg.Refresh(nil, cfg, epoch.Add(timeout))
	if snap.Active(ConditionChatActivity) || !changed {
		t.Error("chat activity should expire after the timeout")
	}

	later := epoch.Add(time.Minute)
	agg.NoteChatActivity(later)
	snap, changed = agg.Refresh(nil, cfg, later.Add(time.Second))
	if !snap.Active(ConditionChatActivity) || !changed {
		t.Error("a new message should reopen the window")
	}
}

func TestAggregatorSetHover(t *testing.T) {
	agg := NewStateAggregator(epoch)
	if !agg.SetHover(true) {
		t.Error("first hover should be a change")
	}
	if agg.SetHover(true) {
		t.Error("repeated hover should not be a change")
	}
	if !agg.Snapshot().Active(ConditionHover) {
		t.Error("Hover should be in the snapshot")
	}
	// Refresh leaves Hover alone.
	agg.Refresh(nil, nil, epoch)
	if !agg.Snapshot().Active(ConditionHover) {
		t.Error("Refresh must not clear Hover")
	}
}
