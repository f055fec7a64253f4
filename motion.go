package orb

import "math"

const (
	// blobPoints is the number of control points on the blob silhouette.
	blobPoints = 6
	// motionRows is the table resolution: refresh rate (60 Hz) times the
	// target loop length (2 s), so every tick of a 2-second loop lands on
	// a distinct row. Rescale if the refresh assumption changes.
	motionRows = 120

	// blobBaseRadius is the base hexagon radius in unit space.
	blobBaseRadius = 0.9
	// wobbleAmplitude is the sinusoidal displacement amplitude in unit space.
	wobbleAmplitude = 0.15
	// blobPixelRadius converts unit-space offsets to pixels as a fraction
	// of the smaller container dimension.
	blobPixelRadius = 0.45
)

// MotionTable precomputes the blob silhouette's wobble animation: for each
// of motionRows phase steps, the 6 hexagon control points displaced by a
// phase-shifted sine. A lookup replaces six sin/cos evaluations per frame.
// The table is immutable after construction and may be shared freely.
type MotionTable struct {
	rows [motionRows][blobPoints]Vec2
}

// NewMotionTable builds the full table. All rows are computed once and
// retained; construction is the only place trigonometry runs in the
// steady state.
func NewMotionTable() *MotionTable {
	t := &MotionTable{}
	for row := 0; row < motionRows; row++ {
		angle := 2 * math.Pi * float64(row) / motionRows
		t.rows[row] = wobblePoints(angle)
	}
	return t
}

// wobblePoints computes the 6 unit-space control points for a phase angle
// directly. Used to build the table and as the lookup fallback.
func wobblePoints(angle float64) [blobPoints]Vec2 {
	var pts [blobPoints]Vec2
	for i := 0; i < blobPoints; i++ {
		base := 2 * math.Pi * float64(i) / blobPoints
		phase := float64(i) * math.Pi / 3
		pts[i] = Vec2{
			X: 0.5 + math.Cos(base)*blobBaseRadius + math.Sin(angle+phase)*wobbleAmplitude,
			Y: 0.5 + math.Sin(base)*blobBaseRadius + math.Cos(angle+phase)*wobbleAmplitude,
		}
	}
	return pts
}

// Points returns the 6 blob control points in pixel space for the given
// phase angle (radians) and container dimensions. Negative phases wrap;
// phases outside [0, 2π) are normalized. The result is a value array, so
// lookups are allocation-free.
func (t *MotionTable) Points(phase, width, height float64) [blobPoints]Vec2 {
	pos := math.Mod(phase, 2*math.Pi)
	if pos < 0 {
		pos += 2 * math.Pi
	}
	idx := int(pos/(2*math.Pi)*motionRows) % motionRows

	var unit [blobPoints]Vec2
	if idx >= 0 && idx < motionRows {
		unit = t.rows[idx]
	} else {
		// Must not happen after normalization; recompute rather than fail.
		unit = wobblePoints(phase)
	}

	cx := width / 2
	cy := height / 2
	radius := minDim(width, height) * blobPixelRadius
	var pts [blobPoints]Vec2
	for i, p := range unit {
		pts[i] = Vec2{
			X: (p.X-0.5)*radius + cx,
			Y: (p.Y-0.5)*radius + cy,
		}
	}
	return pts
}
