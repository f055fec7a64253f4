package orb

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// sparkle holds per-particle simulation state. Unexported; managed by Emitter.
type sparkle struct {
	x, y       float64
	vx, vy     float64
	life       float64 // remaining lifetime in seconds
	maxLife    float64 // initial lifetime (for computing t)
	wobbleAmp  float64 // horizontal drift amplitude in pixels
	wobbleOff  float64 // per-sparkle drift phase offset
	startScale float32
	endScale   float32
	scale      float32
	startAlpha float32
	endAlpha   float32
	alpha      float32
}

// SparkleConfig controls how orb sparkles are spawned and behave. Applied
// at pool checkout time via Emitter.Configure.
type SparkleConfig struct {
	// MaxSparkles is the pool size. New sparkles are silently dropped when full.
	MaxSparkles int
	// EmitRate is the number of sparkles spawned per second.
	EmitRate float64
	// Lifetime is the range of sparkle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of rise speeds in pixels per second (applied upward).
	Speed Range
	// SpawnRadius is the range of birth distances from the emitter center.
	SpawnRadius Range
	// StartScale is the range of scale factors at birth, interpolated to
	// EndScale over lifetime.
	StartScale Range
	// EndScale is the range of scale factors at death.
	EndScale Range
	// StartAlpha is the range of alpha values at birth, interpolated to
	// EndAlpha over lifetime.
	StartAlpha Range
	// EndAlpha is the range of alpha values at death.
	EndAlpha Range
	// Wobble is the range of horizontal drift amplitudes in pixels.
	Wobble Range
	// WobbleRate is the drift frequency in cycles per second.
	WobbleRate float64
	// Color is the sparkle tint.
	Color Color
	// TextureSize is the sprite size in pixels, used as the pool key.
	TextureSize int
	// BlendMode is the compositing operation; the orb uses BlendAdd.
	BlendMode BlendMode
}

// maxSparklesOrDefault returns MaxSparkles, or 64 when unset.
func (c SparkleConfig) maxSparklesOrDefault() int {
	if c.MaxSparkles <= 0 {
		return 64
	}
	return c.MaxSparkles
}

// Emitter manages a pool of orb sparkles with CPU-based simulation.
// Acquire instances from a TexturePool and return them when the burst
// ends; the free list keeps allocation out of the steady state.
type Emitter struct {
	config    SparkleConfig
	sparkles  []sparkle
	alive     int
	emitAccum float64
	active    bool
}

// NewEmitter creates an Emitter with a preallocated sparkle pool.
func NewEmitter(cfg SparkleConfig) *Emitter {
	e := &Emitter{}
	e.Configure(cfg)
	return e
}

// Configure applies a full configuration. The sparkle pool is reallocated
// only when MaxSparkles changes; all live sparkles are killed. Callers
// acquiring from a TexturePool must configure before Start.
func (e *Emitter) Configure(cfg SparkleConfig) {
	max := cfg.maxSparklesOrDefault()
	e.config = cfg
	if len(e.sparkles) != max {
		e.sparkles = make([]sparkle, max)
	}
	e.alive = 0
	e.emitAccum = 0
}

// Start begins emitting sparkles.
func (e *Emitter) Start() {
	e.active = true
}

// Stop stops emitting new sparkles. Existing sparkles continue to live out.
func (e *Emitter) Stop() {
	e.active = false
}

// Reset stops emitting and kills all alive sparkles.
func (e *Emitter) Reset() {
	e.active = false
	e.alive = 0
	e.emitAccum = 0
}

// IsActive reports whether the emitter is currently emitting new sparkles.
func (e *Emitter) IsActive() bool {
	return e.active
}

// AliveCount returns the number of alive sparkles.
func (e *Emitter) AliveCount() int {
	return e.alive
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *SparkleConfig {
	return &e.config
}

// Update advances the simulation by dt seconds. Allocation-free once the
// pool is warm.
func (e *Emitter) Update(dt float64) {
	// Update existing sparkles, swap-remove dead ones.
	i := 0
	for i < e.alive {
		p := &e.sparkles[i]
		p.life -= dt
		if p.life <= 0 {
			// Swap with last alive sparkle.
			e.alive--
			e.sparkles[i] = e.sparkles[e.alive]
			continue
		}

		p.x += p.vx * dt
		p.y += p.vy * dt

		t := float32(1.0 - p.life/p.maxLife)
		p.scale = lerp32(p.startScale, p.endScale, t)
		p.alpha = lerp32(p.startAlpha, p.endAlpha, t)

		i++
	}

	// Emit new sparkles.
	if e.active && e.config.EmitRate > 0 {
		e.emitAccum += e.config.EmitRate * dt
		for e.emitAccum >= 1.0 {
			e.emitAccum -= 1.0
			if e.alive < len(e.sparkles) {
				e.spawn()
			}
		}
	}
}

// spawn initializes the sparkle at slot e.alive and increments alive.
func (e *Emitter) spawn() {
	p := &e.sparkles[e.alive]

	// Birth position: uniform direction at a random distance from center.
	dir := rand.Float64() * 2 * math.Pi
	dist := e.config.SpawnRadius.Random()
	p.x = math.Cos(dir) * dist
	p.y = math.Sin(dir) * dist

	// Sparkles rise; horizontal drift is applied at draw time.
	p.vx = 0
	p.vy = -e.config.Speed.Random()

	p.life = e.config.Lifetime.Random()
	if p.life <= 0 {
		p.life = 1.0
	}
	p.maxLife = p.life

	p.wobbleAmp = e.config.Wobble.Random()
	p.wobbleOff = rand.Float64() * 2 * math.Pi

	p.startScale = float32(e.config.StartScale.Random())
	p.endScale = float32(e.config.EndScale.Random())
	p.scale = p.startScale

	p.startAlpha = float32(e.config.StartAlpha.Random())
	p.endAlpha = float32(e.config.EndAlpha.Random())
	p.alpha = p.startAlpha

	e.alive++
}

// Draw renders all alive sparkles onto dst using the given sprite texture,
// centered at (cx, cy). The texture normally comes from a TexturePool
// keyed by the config's TextureSize.
func (e *Emitter) Draw(dst, tex *ebiten.Image, cx, cy float64) {
	if e.alive == 0 || tex == nil {
		return
	}
	bounds := tex.Bounds()
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2
	blend := e.config.BlendMode.EbitenBlend()
	c := e.config.Color

	var op ebiten.DrawImageOptions
	for i := 0; i < e.alive; i++ {
		p := &e.sparkles[i]
		age := p.maxLife - p.life
		drift := math.Sin(age*2*math.Pi*e.config.WobbleRate+p.wobbleOff) * p.wobbleAmp

		op.GeoM.Reset()
		op.GeoM.Translate(-halfW, -halfH)
		op.GeoM.Scale(float64(p.scale), float64(p.scale))
		op.GeoM.Translate(cx+p.x+drift, cy+p.y)

		a := float64(p.alpha)
		op.ColorScale.Reset()
		op.ColorScale.Scale(
			float32(c.R*c.A*a),
			float32(c.G*c.A*a),
			float32(c.B*c.A*a),
			float32(c.A*a),
		)
		op.Blend = blend
		dst.DrawImage(tex, &op)
	}
}
