package fader

import (
	"fmt"
	"strings"
)

// Condition is one named boolean fact about the current frame.
type Condition uint8

const (
	ConditionDefault             Condition = iota // always true; the fallback rule
	ConditionHover                                // any addon hovered this frame
	ConditionUserFocus                            // override key held
	ConditionAltKeyFocus                          // Alt held
	ConditionCtrlKeyFocus                         // Ctrl held
	ConditionShiftKeyFocus                        // Shift held
	ConditionChatFocus                            // chat input focused
	ConditionChatActivity                         // a chat message arrived recently
	ConditionIsMoving                             // player moving
	ConditionCombat                               // in combat
	ConditionWeaponUnsheathed                     // weapon drawn
	ConditionInSanctuary                          // resting area
	ConditionInFate                               // inside a FATE
	ConditionLeftTrigger                          // controller L2 held
	ConditionRightTrigger                         // controller R2 held
	ConditionLeftBumper                           // controller L1 held
	ConditionRightBumper                          // controller R1 held
	ConditionEnemyTarget                          // targeting a battle NPC
	ConditionPlayerTarget                         // targeting a player
	ConditionNPCTarget                            // targeting an event NPC
	ConditionGatheringNodeTarget                  // targeting a gathering point
	ConditionCrafting                             // crafting
	ConditionGathering                            // gathering
	ConditionMounted                              // mounted
	ConditionIslandSanctuary                      // island sanctuary zone
	ConditionDuty                                 // bound by duty, outside the island sanctuary
	ConditionOccupied                             // occupied in a scripted event

	conditionCount
)

var conditionNames = [conditionCount]string{
	ConditionDefault:             "Default",
	ConditionHover:               "Hover",
	ConditionUserFocus:           "UserFocus",
	ConditionAltKeyFocus:         "AltKeyFocus",
	ConditionCtrlKeyFocus:        "CtrlKeyFocus",
	ConditionShiftKeyFocus:       "ShiftKeyFocus",
	ConditionChatFocus:           "ChatFocus",
	ConditionChatActivity:        "ChatActivity",
	ConditionIsMoving:            "IsMoving",
	ConditionCombat:              "Combat",
	ConditionWeaponUnsheathed:    "WeaponUnsheathed",
	ConditionInSanctuary:         "InSanctuary",
	ConditionInFate:              "InFate",
	ConditionLeftTrigger:         "LeftTrigger",
	ConditionRightTrigger:        "RightTrigger",
	ConditionLeftBumper:          "LeftBumper",
	ConditionRightBumper:         "RightBumper",
	ConditionEnemyTarget:         "EnemyTarget",
	ConditionPlayerTarget:        "PlayerTarget",
	ConditionNPCTarget:           "NPCTarget",
	ConditionGatheringNodeTarget: "GatheringNodeTarget",
	ConditionCrafting:            "Crafting",
	ConditionGathering:           "Gathering",
	ConditionMounted:             "Mounted",
	ConditionIslandSanctuary:     "IslandSanctuary",
	ConditionDuty:                "Duty",
	ConditionOccupied:            "Occupied",
}

// Conditions returns every defined condition in declaration order.
func Conditions() []Condition {
	out := make([]Condition, conditionCount)
	for i := range out {
		out[i] = Condition(i)
	}
	return out
}

// String returns the condition's configuration name.
func (c Condition) String() string {
	if c < conditionCount {
		return conditionNames[c]
	}
	return fmt.Sprintf("Condition(%d)", uint8(c))
}

// Valid reports whether c is a defined condition.
func (c Condition) Valid() bool {
	return c < conditionCount
}

// ParseCondition looks up a condition by name, ignoring case.
func ParseCondition(name string) (Condition, error) {
	name = strings.TrimSpace(name)
	for i, n := range conditionNames {
		if strings.EqualFold(n, name) {
			return Condition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown condition %q", name)
}

// MarshalText implements encoding.TextMarshaler for TOML and YAML.
func (c Condition) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid condition %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML and YAML.
func (c *Condition) UnmarshalText(text []byte) error {
	parsed, err := ParseCondition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Key codes for the modifier conditions, matching the host's virtual key codes.
const (
	KeyShift = 0x10
	KeyCtrl  = 0x11
	KeyAlt   = 0x12
)
