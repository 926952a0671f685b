// Package ecs provides ECS adapters for fader's engine events.
//
// The primary adapter is [NewDonburiSink], which bridges fader events (rule
// changes, hide/show transitions, restores) into a [Donburi] world as typed
// events. Subscribe to [FadeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
