package fader

import "time"

// RuleResolver selects the active rule for each addon and applies the
// default-return hysteresis: after a non-Default rule stops matching, the
// addon keeps it for the configured delay before falling back to Default.
type RuleResolver struct {
	timers     map[string]time.Time
	lastActive map[string]Rule
	live       map[string]bool // remembered rule still matches on its own
}

// NewRuleResolver creates a resolver with no remembered rules.
func NewRuleResolver() *RuleResolver {
	return &RuleResolver{
		timers:     make(map[string]time.Time),
		lastActive: make(map[string]Rule),
		live:       make(map[string]bool),
	}
}

// SelectRule applies the fixed precedence without hysteresis:
//  1. a Hover rule, when hovered;
//  2. the first rule in list order whose condition holds, ignoring Hover and
//     Default entries;
//  3. the list's Default rule, or DefaultRule when the list has none.
//
// A Default entry never shadows the rules after it, wherever it sits in the
// list: it is only the fallback.
func SelectRule(rules []Rule, snap Snapshot, hovered bool) Rule {
	if hovered {
		for _, r := range rules {
			if r.Condition == ConditionHover {
				return r
			}
		}
	}
	for _, r := range rules {
		if r.Condition == ConditionHover || r.Condition == ConditionDefault {
			continue
		}
		if snap.Active(r.Condition) {
			return r
		}
	}
	for _, r := range rules {
		if r.Condition == ConditionDefault {
			return r
		}
	}
	return DefaultRule
}

// Select resolves addon's rule at now. A non-Default selection is remembered
// with a timestamp. A Default selection is replaced by the remembered rule
// while less than delay has elapsed; once it has, the memory is cleared.
// With delayEnabled false nothing is remembered or substituted.
func (r *RuleResolver) Select(addon string, rules []Rule, snap Snapshot, hovered bool, now time.Time, delayEnabled bool, delay time.Duration) Rule {
	rule := SelectRule(rules, snap, hovered)
	if !delayEnabled {
		return rule
	}
	if rule.Condition != ConditionDefault {
		r.timers[addon] = now
		r.lastActive[addon] = rule
		r.live[addon] = true
		return rule
	}
	if start, ok := r.timers[addon]; ok && now.Sub(start) < delay {
		if last, ok := r.lastActive[addon]; ok {
			r.live[addon] = false
			return last
		}
		return rule
	}
	r.forget(addon)
	return rule
}

// Touch restamps every addon whose remembered rule was still matching at its
// last Select. The engine calls it on frames where resolution is skipped
// because nothing changed, so the delay counts from the last frame the rule
// actually held.
func (r *RuleResolver) Touch(now time.Time) {
	for addon, on := range r.live {
		if on {
			r.timers[addon] = now
		}
	}
}

// AnyExpired reports whether some remembered rule's delay has run out, which
// means a resolution pass is due even if nothing else changed.
func (r *RuleResolver) AnyExpired(now time.Time, delay time.Duration) bool {
	for _, start := range r.timers {
		if now.Sub(start) >= delay {
			return true
		}
	}
	return false
}

// Pending returns the number of addons with a remembered rule.
func (r *RuleResolver) Pending() int {
	return len(r.timers)
}

// Reset clears every remembered rule and timestamp.
func (r *RuleResolver) Reset() {
	clear(r.timers)
	clear(r.lastActive)
	clear(r.live)
}

func (r *RuleResolver) forget(addon string) {
	delete(r.timers, addon)
	delete(r.lastActive, addon)
	delete(r.live, addon)
}
