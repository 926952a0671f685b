package fader

import "strings"

// Snapshot holds one frame's resolved condition values. The zero value has
// every condition false except Default, which always reads true.
type Snapshot struct {
	values [conditionCount]bool
}

// Active reports whether condition c holds in this snapshot.
func (s Snapshot) Active(c Condition) bool {
	if c == ConditionDefault {
		return true
	}
	if !c.Valid() {
		return false
	}
	return s.values[c]
}

// With returns a copy of s with condition c set to v. Setting Default is a
// no-op.
func (s Snapshot) With(c Condition, v bool) Snapshot {
	s.set(c, v)
	return s
}

// set writes v for c and reports whether the stored value changed.
func (s *Snapshot) set(c Condition, v bool) bool {
	if c == ConditionDefault || !c.Valid() {
		return false
	}
	if s.values[c] == v {
		return false
	}
	s.values[c] = v
	return true
}

// ActiveConditions lists the conditions that hold, Default included.
func (s Snapshot) ActiveConditions() []Condition {
	out := []Condition{ConditionDefault}
	for c := ConditionDefault + 1; c < conditionCount; c++ {
		if s.values[c] {
			out = append(out, c)
		}
	}
	return out
}

// String renders the active conditions, e.g. "Default|Combat|Hover".
func (s Snapshot) String() string {
	active := s.ActiveConditions()
	names := make([]string, len(active))
	for i, c := range active {
		names[i] = c.String()
	}
	return strings.Join(names, "|")
}
