// Package ecs provides ECS adapters for the orb animation clock.
//
// The primary adapter is [PublishTicks], which bridges [orb.Clock] ticks
// into a [Donburi] world as typed events. Subscribe to [TickEventType] in
// your ECS systems to drive animation logic from the shared clock.
//
// Usage:
//
//	ecs.PublishTicks(world, clock)
//	ecs.TickEventType.Subscribe(world, onTick)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
