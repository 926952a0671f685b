package fader

import "math"

// Vec2 is a 2D screen-space point used for pointer and gaze positions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned on-screen rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Element identifies a logical UI element category such as "hotbar" or
// "chat". One element owns one or more concrete addons.
type Element string

// Rule pairs a Condition with the opacity an element should fade to while
// that condition applies.
type Rule struct {
	Condition Condition `toml:"condition" yaml:"condition"`
	Opacity   float64   `toml:"opacity" yaml:"opacity"`
}

// DefaultRule is the implicit fallback used when an element has no Default
// entry of its own.
var DefaultRule = Rule{Condition: ConditionDefault, Opacity: 1}

const (
	// alphaEpsilon is the tolerance for "alpha has reached its target".
	alphaEpsilon = 0.001

	// hiddenThreshold is the alpha below which a disabled element is moved
	// off screen instead of being left transparent.
	hiddenThreshold = 0.05
)

// clamp01 limits v to [0, 1]. NaN becomes 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
