package fader

import (
	"testing"
)

func TestConditionNamesRoundTrip(t *testing.T) {
	all := Conditions()
	if len(all) != int(conditionCount) {
		t.Fatalf("Conditions() len = %d, want %d", len(all), conditionCount)
	}
	seen := make(map[string]bool)
	for _, c := range all {
		name := c.String()
		if name == "" {
			t.Errorf("condition %d has no name", uint8(c))
		}
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true

		parsed, err := ParseCondition(name)
		if err != nil {
			t.Errorf("ParseCondition(%q): %v", name, err)
			continue
		}
		if parsed != c {
			t.Errorf("ParseCondition(%q) = %v, want %v", name, parsed, c)
		}
	}
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		in      string
		want    Condition
		wantErr bool
	}{
		{"Combat", ConditionCombat, false},
		{"combat", ConditionCombat, false},
		{"  ISLANDSANCTUARY ", ConditionIslandSanctuary, false},
		{"default", ConditionDefault, false},
		{"Swimming", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCondition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCondition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseCondition(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConditionText(t *testing.T) {
	text, err := ConditionChatActivity.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "ChatActivity" {
		t.Errorf("MarshalText = %q, want ChatActivity", text)
	}

	var c Condition
	if err := c.UnmarshalText([]byte("mounted")); err != nil {
		t.Fatal(err)
	}
	if c != ConditionMounted {
		t.Errorf("UnmarshalText = %v, want Mounted", c)
	}
	if err := c.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown name")
	}

	if _, err := Condition(200).MarshalText(); err == nil {
		t.Error("expected error marshalling an invalid condition")
	}
	if got := Condition(200).String(); got != "Condition(200)" {
		t.Errorf("String() = %q", got)
	}
}
