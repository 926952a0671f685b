package fader

import "math"

// GazeTracker is an optional secondary pointer supplied by an eye-tracking
// integration. TrackerData returns the raw sample (index 1 and 2 hold X and Y
// in [-1, 1] relative to the screen centre, Y up) or nil when inactive.
// Viewport returns the screen size the sample maps onto.
type GazeTracker interface {
	TrackerData() []float32
	Viewport() Vec2
}

// GazeToScreen converts a tracker sample to screen coordinates with Y growing
// downward. It reports false for samples with fewer than three components or
// non-finite values.
func GazeToScreen(data []float32, viewport Vec2) (Vec2, bool) {
	if len(data) < 3 {
		return Vec2{}, false
	}
	x, y := float64(data[1]), float64(data[2])
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Vec2{}, false
	}
	return Vec2{
		X: (x + 1) * viewport.X / 2,
		Y: viewport.Y - (y+1)*viewport.Y/2,
	}, true
}

// StaticGaze is a GazeTracker returning a fixed sample. A nil Data means the
// tracker is inactive.
type StaticGaze struct {
	Data []float32
	Size Vec2
}

// TrackerData implements GazeTracker.
func (g *StaticGaze) TrackerData() []float32 {
	return g.Data
}

// Viewport implements GazeTracker.
func (g *StaticGaze) Viewport() Vec2 {
	return g.Size
}

// Aim points the sample at a screen position within Size.
func (g *StaticGaze) Aim(p Vec2) {
	if g.Size.X <= 0 || g.Size.Y <= 0 {
		return
	}
	g.Data = []float32{0, float32(p.X*2/g.Size.X - 1), float32((g.Size.Y-p.Y)*2/g.Size.Y - 1)}
}
