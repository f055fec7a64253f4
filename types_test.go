package orb

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBlendModeMapping(t *testing.T) {
	if BlendNormal.EbitenBlend() != ebiten.BlendSourceOver {
		t.Error("BlendNormal should map to source-over")
	}
	if BlendAdd.EbitenBlend() != ebiten.BlendLighter {
		t.Error("BlendAdd should map to lighter")
	}
	// Screen is a custom blend; just check it differs from the defaults.
	if BlendScreen.EbitenBlend() == ebiten.BlendSourceOver {
		t.Error("BlendScreen should not be source-over")
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.toRGBA()
	if c.A != 127 {
		t.Errorf("A = %d, want 127", c.A)
	}
	if c.R != 127 { // 1.0 * 0.5 * 255
		t.Errorf("R = %d, want 127", c.R)
	}
	if c.G != 63 { // 0.5 * 0.5 * 255
		t.Errorf("G = %d, want 63", c.G)
	}
	if c.B != 0 {
		t.Errorf("B = %d, want 0", c.B)
	}
}

func TestColorToRGBAClamps(t *testing.T) {
	c := Color{2, -1, 0.5, 1}.toRGBA()
	if c.R != 255 || c.G != 0 {
		t.Errorf("clamping failed: R=%d G=%d", c.R, c.G)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		assertNear(t, "clamp01", clamp01(tt.in), tt.out)
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Random()
		if v < 10 || v > 20 {
			t.Fatalf("Random() = %f, outside [10, 20]", v)
		}
	}

	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.Random() != 5 {
			t.Fatal("Random() with Min==Max should return Min")
		}
	}
}

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
}

func TestLerpColor(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 1, 1, 1}
	mid := lerpColor(a, b, 0.5)
	assertNear(t, "mid.R", mid.R, 0.5)
	assertNear(t, "mid.A", mid.A, 0.5)
}
