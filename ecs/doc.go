// Package ecs provides ECS adapters for panzoom's gesture state changes.
//
// The primary adapter is [NewDonburiObserver], which publishes every
// [panzoom.StateChange] into a [Donburi] world as a typed event. Subscribe to
// [StateChangeEventType] in your ECS systems to react to pans and zooms.
//
// Usage:
//
//	obs := ecs.NewDonburiObserver(world)
//	surface.AddObserver(obs)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
