package fader

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventRuleChanged EventType = iota // an addon's selected rule changed
	EventHidden                       // an addon was moved off screen
	EventShown                        // a hidden addon was put back
	EventRestored                     // the restore path reset an addon
)

// String returns a lower-case name for the event type.
func (t EventType) String() string {
	switch t {
	case EventRuleChanged:
		return "rule-changed"
	case EventHidden:
		return "hidden"
	case EventShown:
		return "shown"
	case EventRestored:
		return "restored"
	}
	return "unknown"
}

// Event describes a notable per-addon transition.
type Event struct {
	Type      EventType
	Addon     string
	Element   Element
	Condition Condition // selected rule's condition (EventRuleChanged)
	Alpha     float64
	Visible   bool
}

// EventSink is the optional bridge for engine events. When set on an Engine,
// transitions are forwarded to it synchronously from Update.
type EventSink interface {
	EmitEvent(event Event)
}
