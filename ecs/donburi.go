package ecs

import (
	"github.com/phanxgames/fader"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FadeEventType carries fader engine events through a Donburi world. Each
// event names the addon, its element, the rule condition that drove it and
// the alpha at the time it fired.
var FadeEventType = events.NewEventType[fader.Event]()

type donburiSink struct {
	world donburi.World
	only  map[fader.EventType]bool
}

// NewDonburiSink returns an EventSink that queues fade events on world.
// With no types given every event is queued; otherwise only the listed
// types are, so a system that only cares about hides and shows can skip the
// per-rule traffic. Queued events are delivered by FadeEventType.ProcessEvents.
func NewDonburiSink(world donburi.World, types ...fader.EventType) fader.EventSink {
	s := &donburiSink{world: world}
	if len(types) > 0 {
		s.only = make(map[fader.EventType]bool, len(types))
		for _, typ := range types {
			s.only[typ] = true
		}
	}
	return s
}

func (s *donburiSink) EmitEvent(ev fader.Event) {
	if s.only != nil && !s.only[ev.Type] {
		return
	}
	FadeEventType.Publish(s.world, ev)
}
