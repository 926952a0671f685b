package fader

import (
	"testing"
	"time"
)

func TestSelectRulePrecedence(t *testing.T) {
	rules := []Rule{
		{ConditionCombat, 1},
		{ConditionHover, 0.9},
		{ConditionMounted, 0.5},
		{ConditionDefault, 0.2},
	}
	combat := Snapshot{}.With(ConditionCombat, true)
	mounted := Snapshot{}.With(ConditionMounted, true)
	both := combat.With(ConditionMounted, true)

	tests := []struct {
		name    string
		rules   []Rule
		snap    Snapshot
		hovered bool
		want    Rule
	}{
		{"hover beats everything", rules, both, true, Rule{ConditionHover, 0.9}},
		{"list order", rules, both, false, Rule{ConditionCombat, 1}},
		{"later rule", rules, mounted, false, Rule{ConditionMounted, 0.5}},
		{"default fallback", rules, Snapshot{}, false, Rule{ConditionDefault, 0.2}},
		{"hover condition without hover flag", rules, Snapshot{}.With(ConditionHover, true), false, Rule{ConditionDefault, 0.2}},
		{"no default in list", rules[:3], Snapshot{}, false, DefaultRule},
		{"hovered without hover rule", []Rule{{ConditionCombat, 1}, {ConditionDefault, 0}}, Snapshot{}, true, Rule{ConditionDefault, 0}},
		{"empty list", nil, both, true, DefaultRule},
		{
			"default placed first is still a fallback",
			[]Rule{{ConditionDefault, 0.3}, {ConditionMounted, 0.6}},
			mounted, false, Rule{ConditionMounted, 0.6},
		},
	}
	for _, tt := range tests {
		if got := SelectRule(tt.rules, tt.snap, tt.hovered); got != tt.want {
			t.Errorf("%s: SelectRule = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestSelectHysteresis(t *testing.T) {
	const delay = 2 * time.Second
	rules := []Rule{{ConditionCombat, 1}, {ConditionDefault, 0}}
	combat := Snapshot{}.With(ConditionCombat, true)

	r := NewRuleResolver()
	t0 := epoch
	if got := r.Select("a", rules, combat, false, t0, true, delay); got.Condition != ConditionCombat {
		t.Fatalf("at t0 got %v, want Combat", got.Condition)
	}
	if r.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", r.Pending())
	}

	// Inside [t0, t0+delay) the remembered rule is returned.
	for _, off := range []time.Duration{time.Millisecond, time.Second, delay - time.Nanosecond} {
		if got := r.Select("a", rules, Snapshot{}, false, t0.Add(off), true, delay); got.Condition != ConditionCombat {
			t.Errorf("at t0+%v got %v, want Combat", off, got.Condition)
		}
		if r.AnyExpired(t0.Add(off), delay) {
			t.Errorf("AnyExpired at t0+%v should be false", off)
		}
	}

	if !r.AnyExpired(t0.Add(delay), delay) {
		t.Error("AnyExpired at t0+delay should be true")
	}
	if got := r.Select("a", rules, Snapshot{}, false, t0.Add(delay), true, delay); got.Condition != ConditionDefault {
		t.Errorf("at t0+delay got %v, want Default", got.Condition)
	}
	if r.Pending() != 0 {
		t.Errorf("memory should be cleared, Pending = %d", r.Pending())
	}
}

func TestSelectHysteresisRefreshesWhileActive(t *testing.T) {
	const delay = 2 * time.Second
	rules := []Rule{{ConditionCombat, 1}, {ConditionDefault, 0}}
	combat := Snapshot{}.With(ConditionCombat, true)
	r := NewRuleResolver()

	r.Select("a", rules, combat, false, epoch, true, delay)
	r.Select("a", rules, combat, false, epoch.Add(5*time.Second), true, delay)
	got := r.Select("a", rules, Snapshot{}, false, epoch.Add(6*time.Second), true, delay)
	if got.Condition != ConditionCombat {
		t.Errorf("timer should restart from the last active frame, got %v", got.Condition)
	}
}

func TestSelectHysteresisSwitchesBetweenActiveRules(t *testing.T) {
	rules := []Rule{{ConditionCombat, 1}, {ConditionMounted, 0.5}, {ConditionDefault, 0}}
	r := NewRuleResolver()
	r.Select("a", rules, Snapshot{}.With(ConditionCombat, true), false, epoch, true, time.Second)
	got := r.Select("a", rules, Snapshot{}.With(ConditionMounted, true), false, epoch.Add(10*time.Millisecond), true, time.Second)
	if got.Condition != ConditionMounted {
		t.Errorf("a newly active rule applies immediately, got %v", got.Condition)
	}
	got = r.Select("a", rules, Snapshot{}, false, epoch.Add(20*time.Millisecond), true, time.Second)
	if got.Condition != ConditionMounted {
		t.Errorf("the most recent rule is remembered, got %v", got.Condition)
	}
}

func TestSelectDelayDisabled(t *testing.T) {
	rules := []Rule{{ConditionCombat, 1}, {ConditionDefault, 0}}
	r := NewRuleResolver()
	r.Select("a", rules, Snapshot{}.With(ConditionCombat, true), false, epoch, false, time.Second)
	if r.Pending() != 0 {
		t.Error("nothing is remembered with the delay disabled")
	}
	got := r.Select("a", rules, Snapshot{}, false, epoch.Add(time.Millisecond), false, time.Second)
	if got.Condition != ConditionDefault {
		t.Errorf("got %v, want Default immediately", got.Condition)
	}
}

func TestResolverPerAddonAndReset(t *testing.T) {
	rules := []Rule{{ConditionCombat, 1}, {ConditionDefault, 0}}
	combat := Snapshot{}.With(ConditionCombat, true)
	r := NewRuleResolver()
	r.Select("a", rules, combat, false, epoch, true, time.Second)

	if got := r.Select("b", rules, Snapshot{}, false, epoch.Add(time.Millisecond), true, time.Second); got.Condition != ConditionDefault {
		t.Errorf("addon b has no memory, got %v", got.Condition)
	}
	r.Reset()
	if got := r.Select("a", rules, Snapshot{}, false, epoch.Add(time.Millisecond), true, time.Second); got.Condition != ConditionDefault {
		t.Errorf("Reset should clear memory, got %v", got.Condition)
	}
}

func TestTouchRestampsLiveRulesOnly(t *testing.T) {
	const delay = time.Second
	rules := []Rule{{ConditionCombat, 1}, {ConditionDefault, 0}}
	combat := Snapshot{}.With(ConditionCombat, true)
	r := NewRuleResolver()

	r.Select("live", rules, combat, false, epoch, true, delay)
	r.Select("held", rules, combat, false, epoch, true, delay)
	// "held" drops back to Default and is now only substituted.
	r.Select("held", rules, Snapshot{}, false, epoch.Add(100*time.Millisecond), true, delay)

	r.Touch(epoch.Add(900 * time.Millisecond))

	at := epoch.Add(1500 * time.Millisecond)
	if got := r.Select("live", rules, Snapshot{}, false, at, true, delay); got.Condition != ConditionCombat {
		t.Errorf("touched rule should still be held, got %v", got.Condition)
	}
	if got := r.Select("held", rules, Snapshot{}, false, at, true, delay); got.Condition != ConditionDefault {
		t.Errorf("substituted rule must not be restamped, got %v", got.Condition)
	}
}
