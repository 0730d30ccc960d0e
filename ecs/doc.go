// Package ecs provides ECS adapters for panzoom's gesture events.
//
// The primary adapter is [NewDonburiStore], which forwards drag, pan and
// zoom notifications from a [panzoom.Canvas] into a [Donburi] world as typed
// events. Drag events are forwarded only for nodes with a non-zero EntityID.
// Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	canvas.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
