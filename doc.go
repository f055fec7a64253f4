// Package orb is the frame-update caching core of a decorative animated
// orb widget for [Ebitengine]: rotating glow layers, a procedurally
// wobbling blob silhouette, and rising sparkle particles.
//
// The rendering itself is deliberately left to the host application. What
// this package provides is the machinery that keeps the per-frame CPU
// cost flat no matter how many layers an orb stacks:
//
//   - [Clock]: one shared tick source computing elapsed time and the
//     rotation angles for every layer speed, once per frame.
//   - [Geometry]: memoized size/blur/padding/offset derivations with
//     quantized keys.
//   - [MotionTable]: a precomputed wobble table replacing per-frame
//     trigonometry for the blob silhouette.
//   - [Resources]: memoized immutable gradient and shadow descriptors.
//   - [TexturePool]: cached sparkle sprite textures plus an [Emitter]
//     free list.
//
// # Wiring
//
// Construct the caches once at the widget-tree root and pull values from
// them each frame:
//
//	clock := orb.NewClock()
//	geom := orb.NewGeometry()
//	table := orb.NewMotionTable()
//	pool := orb.NewTexturePool()
//
//	func (g *Game) Update() error {
//		clock.Tick()
//		// ...
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		angle := clock.Rotation(90, orb.Clockwise)
//		pts := table.Points(clock.BlobPhase(2), w, h)
//		// ...
//	}
//
// See examples/orb for a complete composed widget.
//
// Except for [Clock], which may be driven from its own ticker goroutine,
// the caches are single-threaded: confine all calls to the game loop.
//
// Reveal/dissolve transitions are provided via [TweenSet] on top of
// [gween]; donburi integration lives in the orb/ecs module.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package orb
