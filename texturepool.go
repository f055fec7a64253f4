package orb

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Radial sprite color ramp: opaque white center fading to a transparent
// edge. Stop positions are fractions of the sprite radius.
var (
	spriteStops  = [...]float64{0.0, 0.3, 0.7, 1.0}
	spriteAlphas = [...]float64{1.0, 0.8, 0.4, 0.0}
)

// pregeneratedSizes are the sparkle sprite sizes generated eagerly at pool
// construction so first use is never a generation stall.
var pregeneratedSizes = [...]int{4, 8, 12, 16}

// texKey identifies one cached sprite texture by pixel dimensions.
type texKey struct {
	w, h int
}

// TexturePool caches generated sparkle sprite textures by pixel size and
// recycles Emitter objects through a free list. Construct one at the
// widget-tree root and pass it to every consumer; sharing one pool across
// orb instances is the point. Not safe for concurrent use.
type TexturePool struct {
	textures map[texKey]*ebiten.Image
	free     []*Emitter

	hits      int
	misses    int
	generated int
}

// NewTexturePool creates a pool with the common sprite sizes pre-generated.
func NewTexturePool() *TexturePool {
	p := &TexturePool{
		textures: make(map[texKey]*ebiten.Image),
	}
	for _, s := range pregeneratedSizes {
		p.Texture(s, s)
	}
	return p
}

// Texture returns the sprite texture for the given pixel dimensions,
// generating and caching it on first request. Generation never fails:
// degenerate input falls back to a flat filled circle. The returned image
// is shared; callers must not mutate it.
func (p *TexturePool) Texture(w, h int) *ebiten.Image {
	k := texKey{w, h}
	if img, ok := p.textures[k]; ok {
		p.hits++
		return img
	}
	p.misses++

	src, err := radialSpriteRGBA(w, h)
	if err != nil {
		src = solidCircleRGBA(w, h)
	}
	img := ebiten.NewImageFromImage(src)
	p.generated++
	p.textures[k] = img
	return img
}

// AcquireEmitter pops an emitter from the free list, or constructs a new
// one when the list is empty. The caller must fully configure the emitter
// (Configure) before starting it; the pool knows nothing about emitter
// semantics.
func (p *TexturePool) AcquireEmitter() *Emitter {
	if n := len(p.free); n > 0 {
		e := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return e
	}
	return NewEmitter(SparkleConfig{})
}

// ReleaseEmitter resets e to its neutral non-emitting state and returns it
// to the free list. The caller must not retain or mutate e afterward.
// Releasing the same emitter twice is a no-op.
func (p *TexturePool) ReleaseEmitter(e *Emitter) {
	if e == nil {
		return
	}
	for _, f := range p.free {
		if f == e {
			return
		}
	}
	e.Reset()
	p.free = append(p.free, e)
}

// FreeEmitters returns the number of emitters currently idle in the pool.
func (p *TexturePool) FreeEmitters() int {
	return len(p.free)
}

// Clear drops all cached textures. The emitter free list is unaffected.
func (p *TexturePool) Clear() {
	clear(p.textures)
}

// Stats returns the cumulative texture hit, miss, and generation counts.
func (p *TexturePool) Stats() (hits, misses, generated int) {
	return p.hits, p.misses, p.generated
}

// radialSpriteRGBA rasterizes the sparkle sprite on the CPU: a radial
// gradient through the stop ramp, premultiplied white.
func radialSpriteRGBA(w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("generate sprite: invalid size %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := minDim(float64(w), float64(h)) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := 0.0
			if radius > 0 {
				d = minDim(1, math.Sqrt(dx*dx+dy*dy)/radius)
			}
			v := uint8(rampAlpha(d) * 255)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = v
		}
	}
	return img, nil
}

// rampAlpha interpolates the sprite alpha ramp at normalized distance d.
func rampAlpha(d float64) float64 {
	if d <= spriteStops[0] {
		return spriteAlphas[0]
	}
	for i := 1; i < len(spriteStops); i++ {
		if d <= spriteStops[i] {
			span := spriteStops[i] - spriteStops[i-1]
			t := (d - spriteStops[i-1]) / span
			return lerp(spriteAlphas[i-1], spriteAlphas[i], t)
		}
	}
	return spriteAlphas[len(spriteAlphas)-1]
}

// solidCircleRGBA is the deterministic fallback: a flat white disc.
// Degenerate dimensions are clamped to 1.
func solidCircleRGBA(w, h int) *image.RGBA {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	cy := float64(h) / 2
	radius := minDim(float64(w), float64(h)) / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= radius*radius || radius == 0 {
				i := img.PixOffset(x, y)
				img.Pix[i+0] = 255
				img.Pix[i+1] = 255
				img.Pix[i+2] = 255
				img.Pix[i+3] = 255
			}
		}
	}
	return img
}
