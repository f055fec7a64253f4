package orb

import (
	"math"
	"sync"
	"time"
)

// BaseRotationSpeed is the reference rotation speed in degrees per second.
// Layer speeds are expressed relative to this value.
const BaseRotationSpeed = 60.0

// rotationMultipliers is the fixed set of layer speed ratios whose angles
// are recomputed wholesale every tick. Speeds outside this set fall back
// to an on-demand computation with identical results.
var rotationMultipliers = [...]float64{0.25, 0.75, 1.5, 2.3, 3.0}

// angleKey identifies one cached rotation angle.
type angleKey struct {
	multiplier float64
	dir        Direction
}

// TickFunc is a clock observer, invoked once per tick after the angle
// cache has been refreshed.
type TickFunc func(elapsed float64)

// Clock is the single time source for all animated orb layers. One clock
// drives every glow, blob, and sparkle layer so that per-frame modulo and
// trigonometric work is paid once, not once per layer.
//
// The clock can be driven two ways: call Tick from the host game loop
// (the usual mode under Ebitengine, where Update runs at a fixed TPS), or
// call Start to let the clock drive itself from an internal ticker.
// Because of the self-driven mode, clock state is mutex-guarded; every
// query is safe from any goroutine.
type Clock struct {
	mu      sync.Mutex
	start   time.Time
	now     func() time.Time
	elapsed float64
	angles  map[angleKey]float64
	ticks   []TickFunc
	stopped bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewClock creates a clock with its monotonic start reference captured at
// the time of the call. The angle cache is populated on the first Tick.
func NewClock() *Clock {
	c := &Clock{
		now:    time.Now,
		angles: make(map[angleKey]float64, len(rotationMultipliers)*2),
	}
	c.start = c.now()
	return c
}

// Tick recomputes elapsed time and the cached rotation angles, then
// notifies observers. No-op after Stop.
func (c *Clock) Tick() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.elapsed = c.now().Sub(c.start).Seconds()
	for _, m := range rotationMultipliers {
		a := math.Mod(c.elapsed*m*BaseRotationSpeed, 360)
		c.angles[angleKey{m, Clockwise}] = a
		c.angles[angleKey{m, CounterClockwise}] = -a
	}
	elapsed := c.elapsed
	ticks := c.ticks
	c.mu.Unlock()

	// Observers run outside the lock so they may query the clock.
	for _, fn := range ticks {
		fn(elapsed)
	}
}

// Elapsed returns the seconds since the clock started, as of the last tick.
func (c *Clock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Rotation returns the current rotation angle in degrees for a layer
// moving at the given speed (degrees per second) relative to
// BaseRotationSpeed. Results are always in (-360, 360).
func (c *Clock) Rotation(speed float64, dir Direction) float64 {
	return c.RotationBase(speed, dir, BaseRotationSpeed)
}

// RotationBase is Rotation with an explicit base speed. At the default
// base speed, multipliers in the precomputed set are served from the
// angle cache; everything else is computed on demand from the same
// formula, so caching never changes the returned value.
func (c *Clock) RotationBase(speed float64, dir Direction, baseSpeed float64) float64 {
	m := speed / baseSpeed

	c.mu.Lock()
	defer c.mu.Unlock()
	// Cached angles assume the default base; a custom base with the same
	// ratio is a different angle.
	if baseSpeed == BaseRotationSpeed {
		if a, ok := c.angles[angleKey{m, dir}]; ok {
			return a
		}
	}
	a := math.Mod(c.elapsed*m*baseSpeed, 360)
	if dir == CounterClockwise {
		a = -a
	}
	return a
}

// BlobPhase returns the blob animation phase in [0, 2π), completing one
// full cycle every loopDuration seconds. The caller must guarantee a
// positive duration.
func (c *Clock) BlobPhase(loopDuration float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return math.Mod(c.elapsed, loopDuration) / loopDuration * 2 * math.Pi
}

// OnTick registers an observer invoked once per tick, after the angle
// cache refresh. Observers share the clock's lifetime; there is no
// removal. Consumers with a shorter lifetime should poll instead.
func (c *Clock) OnTick(fn TickFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ticks = append(c.ticks, fn)
}

// Start launches an internal ticker that calls Tick at the given interval.
// Use this when the clock is not driven by a host game loop. Calling Start
// on an already started or stopped clock is a no-op.
func (c *Clock) Start(interval time.Duration) {
	c.mu.Lock()
	if c.stopped || c.done != nil {
		c.mu.Unlock()
		return
	}
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				c.Tick()
			}
		}
	}()
}

// Stop halts the clock. When Stop returns, the internal ticker goroutine
// (if any) has exited and no further tick will execute; subsequent Tick
// calls are no-ops. Stop is idempotent.
func (c *Clock) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	done := c.done
	c.mu.Unlock()

	if done != nil {
		close(done)
	}
	c.wg.Wait()
}
