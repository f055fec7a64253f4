package orb

import "math"

// Quantization of memo keys. Container geometry changes in a small number
// of discrete steps (resize), so collapsing near-duplicate float inputs
// into coarse buckets trades sub-pixel precision for cache hits. The
// bucket widths are explicit so the tolerance is visible and tunable.
const (
	// geomQuantum is the bucket width for dimensions, in pixels.
	geomQuantum = 1.0
	// multiplierScale converts a multiplier to its integer key;
	// 1000 gives 0.001-wide buckets.
	multiplierScale = 1000
)

// sizeKey buckets a width/height pair.
type sizeKey struct {
	w, h int
}

// scaleKey buckets a size/multiplier pair.
type scaleKey struct {
	size  int
	milli int
}

// offsetKey buckets a size/multiplier/axis triple.
type offsetKey struct {
	size     int
	milli    int
	vertical bool
}

// Geometry memoizes the derived numeric values the composition layer
// queries every frame: base size, blur radii, padding, and blob offsets.
// Two calls whose inputs fall in the same bucket return the identical
// cached value. Not safe for concurrent use; confine to the update loop.
type Geometry struct {
	sizes   map[sizeKey]float64
	scaled  map[scaleKey]float64
	offsets map[offsetKey]Vec2

	hits, misses int
}

// NewGeometry creates an empty geometry memoizer.
func NewGeometry() *Geometry {
	return &Geometry{
		sizes:   make(map[sizeKey]float64),
		scaled:  make(map[scaleKey]float64),
		offsets: make(map[offsetKey]Vec2),
	}
}

// Size returns min(width, height), memoized by bucketed dimensions.
func (g *Geometry) Size(width, height float64) float64 {
	k := sizeKey{quantize(width), quantize(height)}
	if v, ok := g.sizes[k]; ok {
		g.hits++
		return v
	}
	g.misses++
	v := minDim(width, height)
	g.sizes[k] = v
	return v
}

// BlurRadius returns size * multiplier, memoized by bucketed inputs.
func (g *Geometry) BlurRadius(size, multiplier float64) float64 {
	return g.scale(size, multiplier)
}

// Padding returns size * multiplier, memoized by bucketed inputs.
// BlurRadius and Padding share one table; the function is identical.
func (g *Geometry) Padding(size, multiplier float64) float64 {
	return g.scale(size, multiplier)
}

func (g *Geometry) scale(size, multiplier float64) float64 {
	k := scaleKey{quantize(size), int(multiplier * multiplierScale)}
	if v, ok := g.scaled[k]; ok {
		g.hits++
		return v
	}
	g.misses++
	v := size * multiplier
	g.scaled[k] = v
	return v
}

// BlobOffset returns the blob layer's offset from center: (0, size*m) when
// vertical, (size*m, 0) otherwise. Memoized by bucketed inputs.
func (g *Geometry) BlobOffset(size, multiplier float64, vertical bool) Vec2 {
	k := offsetKey{quantize(size), int(multiplier * multiplierScale), vertical}
	if v, ok := g.offsets[k]; ok {
		g.hits++
		return v
	}
	g.misses++
	var v Vec2
	if vertical {
		v = Vec2{0, size * multiplier}
	} else {
		v = Vec2{size * multiplier, 0}
	}
	g.offsets[k] = v
	return v
}

// Clear empties all memo tables, for memory-pressure response. Subsequent
// calls recompute and repopulate lazily.
func (g *Geometry) Clear() {
	clear(g.sizes)
	clear(g.scaled)
	clear(g.offsets)
}

// Stats returns the cumulative hit and miss counts across all tables.
func (g *Geometry) Stats() (hits, misses int) {
	return g.hits, g.misses
}

// quantize maps a dimension to its bucket index.
func quantize(v float64) int {
	return int(math.Trunc(v / geomQuantum))
}
