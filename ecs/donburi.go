package ecs

import (
	"github.com/glowlab/orb"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TickEvent carries one clock tick. Elapsed is the clock's monotonic
// elapsed time in seconds at the moment of the tick.
type TickEvent struct {
	Elapsed float64
}

// TickEventType is the Donburi event type for orb clock ticks. Subscribe
// to this in your ECS systems to receive one event per tick; call
// ProcessEvents on your update cadence to drain the queue.
var TickEventType = events.NewEventType[TickEvent]()

// PublishTicks registers a clock observer that republishes every tick into
// the given world as a TickEvent. The subscription shares the clock's
// lifetime.
func PublishTicks(world donburi.World, clock *orb.Clock) {
	clock.OnTick(func(elapsed float64) {
		TickEventType.Publish(world, TickEvent{Elapsed: elapsed})
	})
}
