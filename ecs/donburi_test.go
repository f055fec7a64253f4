package ecs

import (
	"testing"

	"github.com/glowlab/orb"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestPublishTicks(t *testing.T) {
	world := donburi.NewWorld()
	clock := orb.NewClock()
	defer clock.Stop()

	var received []TickEvent
	TickEventType.Subscribe(world, func(w donburi.World, e TickEvent) {
		received = append(received, e)
	})

	PublishTicks(world, clock)

	clock.Tick()
	clock.Tick()

	// Events are queued until processed.
	TickEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 tick events, got %d", len(received))
	}
	if received[1].Elapsed < received[0].Elapsed {
		t.Errorf("elapsed went backwards: %v then %v", received[0].Elapsed, received[1].Elapsed)
	}
}

func TestPublishTicksMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	clock := orb.NewClock()
	defer clock.Stop()

	var count1, count2 int
	TickEventType.Subscribe(world, func(w donburi.World, e TickEvent) {
		count1++
	})
	TickEventType.Subscribe(world, func(w donburi.World, e TickEvent) {
		count2++
	})

	PublishTicks(world, clock)
	clock.Tick()
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestNoTicksAfterStop(t *testing.T) {
	world := donburi.NewWorld()
	clock := orb.NewClock()

	var count int
	TickEventType.Subscribe(world, func(w donburi.World, e TickEvent) {
		count++
	})

	PublishTicks(world, clock)
	clock.Stop()
	clock.Tick()
	TickEventType.ProcessEvents(world)

	if count != 0 {
		t.Errorf("expected no events after Stop, got %d", count)
	}
}
