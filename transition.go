package orb

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenSet animates up to 4 float64 fields simultaneously. Build one via
// the convenience constructors (Reveal, Dissolve) or NewTweenSet plus Add,
// and call Update(dt) each frame until Done.
//
// There is no global animation manager; callers drive Update themselves.
type TweenSet struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

// NewTweenSet creates an empty tween set.
func NewTweenSet() *TweenSet {
	return &TweenSet{}
}

// Add attaches a tween animating *field from from to to over the given
// duration. Panics if the set already holds 4 tweens.
func (s *TweenSet) Add(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *TweenSet {
	if s.count >= len(s.tweens) {
		panic("orb: TweenSet holds at most 4 tweens")
	}
	s.tweens[s.count] = gween.New(float32(from), float32(to), duration, fn)
	s.fields[s.count] = field
	s.count++
	return s
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Done is set once every tween has finished.
func (s *TweenSet) Update(dt float32) {
	if s.Done {
		return
	}
	allDone := true
	for i := 0; i < s.count; i++ {
		val, finished := s.tweens[i].Update(dt)
		*s.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	s.Done = allDone
}

// Reveal creates the orb's appear transition: alpha fades in from 0 and
// scale springs from 0.8 to 1.
func Reveal(alpha, scale *float64, duration float32) *TweenSet {
	s := NewTweenSet()
	s.Add(alpha, 0, 1, duration, ease.OutQuad)
	s.Add(scale, 0.8, 1, duration, ease.OutBack)
	return s
}

// Dissolve creates the orb's disappear transition: alpha fades out and
// scale drifts up to 1.1.
func Dissolve(alpha, scale *float64, duration float32) *TweenSet {
	s := NewTweenSet()
	s.Add(alpha, *alpha, 0, duration, ease.InQuad)
	s.Add(scale, *scale, 1.1, duration, ease.InQuad)
	return s
}
