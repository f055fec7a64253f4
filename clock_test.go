package orb

import (
	"math"
	"testing"
	"time"
)

// assertNear fails if got is not within epsilon of want.
func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	const epsilon = 1e-9
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// clockAt returns a ticked clock whose elapsed time is pinned to the given
// number of seconds.
func clockAt(elapsed float64) *Clock {
	c := NewClock()
	base := c.start
	c.now = func() time.Time {
		return base.Add(time.Duration(elapsed * float64(time.Second)))
	}
	c.Tick()
	return c
}

func TestRotationAtOneSecond(t *testing.T) {
	c := clockAt(1.0)
	// speed 60 at base 60: (1.0 * 1 * 60) mod 360 = 60.
	assertNear(t, "Rotation(60, CW)", c.Rotation(60, Clockwise), 60.0)
	assertNear(t, "Rotation(60, CCW)", c.Rotation(60, CounterClockwise), -60.0)
}

func TestRotationCachedMatchesOnDemand(t *testing.T) {
	// 3.75 is exactly representable, so elapsed survives the time.Duration
	// round trip bit for bit.
	c := clockAt(3.75)
	for _, m := range rotationMultipliers {
		speed := m * BaseRotationSpeed
		want := math.Mod(3.75*m*BaseRotationSpeed, 360)
		// Cached multipliers must be bit-identical to the formula.
		if got := c.Rotation(speed, Clockwise); got != want {
			t.Errorf("Rotation(%v, CW) = %v, want %v (cached)", speed, got, want)
		}
		if got := c.Rotation(speed, CounterClockwise); got != -want {
			t.Errorf("Rotation(%v, CCW) = %v, want %v (cached)", speed, got, -want)
		}
	}
}

func TestRotationUncachedSpeed(t *testing.T) {
	c := clockAt(2.5)
	// 100 deg/s is not in the precomputed multiplier set.
	want := math.Mod(2.5*100, 360)
	assertNear(t, "Rotation(100, CW)", c.Rotation(100, Clockwise), want)
	assertNear(t, "Rotation(100, CCW)", c.Rotation(100, CounterClockwise), -want)
}

func TestRotationRange(t *testing.T) {
	for _, elapsed := range []float64{0, 0.5, 7.3, 59.99, 1234.567} {
		c := clockAt(elapsed)
		for _, speed := range []float64{15, 45, 60, 90, 138, 180} {
			cw := c.Rotation(speed, Clockwise)
			ccw := c.Rotation(speed, CounterClockwise)
			if cw <= -360 || cw >= 360 {
				t.Errorf("Rotation(%v, CW) at %vs = %v, outside (-360, 360)", speed, elapsed, cw)
			}
			if ccw <= -360 || ccw >= 360 {
				t.Errorf("Rotation(%v, CCW) at %vs = %v, outside (-360, 360)", speed, elapsed, ccw)
			}
		}
	}
}

func TestRotationPeriodicity(t *testing.T) {
	// At multiplier 1.5, the angle wraps every 360/(1.5*60) = 4 seconds.
	a := clockAt(1.2).Rotation(90, Clockwise)
	b := clockAt(5.2).Rotation(90, Clockwise)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("rotation not periodic: %v at 1.2s, %v at 5.2s", a, b)
	}
}

func TestRotationDeterministic(t *testing.T) {
	c := clockAt(4.2)
	first := c.Rotation(138, Clockwise)
	second := c.Rotation(138, Clockwise)
	if first != second {
		t.Errorf("Rotation not pure for fixed state: %v then %v", first, second)
	}
}

func TestRotationBase(t *testing.T) {
	c := clockAt(1.0)
	// speed 30 at base 120: multiplier 0.25 matches the precomputed set,
	// but the cached angle assumes base 60 and must not be served here.
	assertNear(t, "RotationBase(30, CW, 120)", c.RotationBase(30, Clockwise, 120), 30.0)
}

func TestBlobPhase(t *testing.T) {
	c := clockAt(0.5)
	// A quarter of the way through a 2-second loop: phase = π/2.
	assertNear(t, "BlobPhase(2)", c.BlobPhase(2), math.Pi/2)

	c = clockAt(2.0)
	// Exactly one loop: wraps back to 0.
	assertNear(t, "BlobPhase(2) at loop boundary", c.BlobPhase(2), 0)

	c = clockAt(3.5)
	phase := c.BlobPhase(2)
	if phase < 0 || phase >= 2*math.Pi {
		t.Errorf("BlobPhase = %v, outside [0, 2π)", phase)
	}
}

func TestElapsedMonotonic(t *testing.T) {
	c := NewClock()
	defer c.Stop()
	var prev float64
	for i := 0; i < 10; i++ {
		c.Tick()
		e := c.Elapsed()
		if e < prev {
			t.Fatalf("elapsed decreased: %v after %v", e, prev)
		}
		prev = e
	}
}

func TestOnTickObserver(t *testing.T) {
	c := clockAt(1.5)

	var got []float64
	c.OnTick(func(elapsed float64) {
		got = append(got, elapsed)
	})

	c.Tick()
	c.Tick()
	if len(got) != 2 {
		t.Fatalf("observer called %d times, want 2", len(got))
	}
	assertNear(t, "observed elapsed", got[0], 1.5)
}

func TestTickAfterStopIsNoop(t *testing.T) {
	c := clockAt(1.0)
	before := c.Elapsed()

	var notified int
	c.OnTick(func(float64) { notified++ })

	c.Stop()
	c.Tick()

	if notified != 0 {
		t.Error("observer fired after Stop")
	}
	assertNear(t, "elapsed after stopped tick", c.Elapsed(), before)
}

func TestStopIdempotent(t *testing.T) {
	c := NewClock()
	c.Stop()
	c.Stop() // must not panic or deadlock
}

func TestSelfDrivenTicker(t *testing.T) {
	c := NewClock()

	ticked := make(chan struct{}, 1)
	c.OnTick(func(float64) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	c.Start(time.Millisecond)
	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("ticker never fired")
	}

	c.Stop()
	// After Stop returns, no further mutation may occur.
	after := c.Elapsed()
	time.Sleep(10 * time.Millisecond)
	assertNear(t, "elapsed after Stop", c.Elapsed(), after)
}

func TestStartAfterStopIsNoop(t *testing.T) {
	c := NewClock()
	c.Stop()
	c.Start(time.Millisecond) // must not launch a ticker
	c.Stop()
}

func BenchmarkTick(b *testing.B) {
	c := NewClock()
	defer c.Stop()
	b.ReportAllocs()
	for b.Loop() {
		c.Tick()
	}
}

func BenchmarkRotationCached(b *testing.B) {
	c := NewClock()
	defer c.Stop()
	c.Tick()
	b.ReportAllocs()
	for b.Loop() {
		c.Rotation(90, Clockwise)
	}
}
