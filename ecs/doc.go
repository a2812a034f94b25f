// Package ecs provides ECS adapters for thicket's scene notifications.
//
// The primary adapter is [NewDonburiSink], which bridges scene events (pan
// changes and loop shutdown) into a [Donburi] world as typed events.
// Subscribe to [SceneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
