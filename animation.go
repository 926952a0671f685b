package fader

import (
	"math"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing names accepted by Config.Easing.
const (
	EaseLinear     = "linear"
	EaseInQuad     = "in-quad"
	EaseOutQuad    = "out-quad"
	EaseInOutQuad  = "in-out-quad"
	EaseInCubic    = "in-cubic"
	EaseOutCubic   = "out-cubic"
	EaseInOutCubic = "in-out-cubic"
	EaseInSine     = "in-sine"
	EaseOutSine    = "out-sine"
	EaseInOutSine  = "in-out-sine"
)

// Only curves that never leave [begin, end] are offered; back, elastic and
// bounce would overshoot the target alpha.
var easings = map[string]ease.TweenFunc{
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseInSine:     ease.InSine,
	EaseOutSine:    ease.OutSine,
	EaseInOutSine:  ease.InOutSine,
}

// LookupEasing resolves an easing name. Linear and the empty name return a
// nil func with ok=true; the engine then uses MoveTowards directly.
func LookupEasing(name string) (ease.TweenFunc, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == EaseLinear {
		return nil, true
	}
	fn, ok := easings[name]
	return fn, ok
}

// EasingNames returns every accepted easing name, linear first.
func EasingNames() []string {
	return []string{
		EaseLinear, EaseInQuad, EaseOutQuad, EaseInOutQuad,
		EaseInCubic, EaseOutCubic, EaseInOutCubic,
		EaseInSine, EaseOutSine, EaseInOutSine,
	}
}

// fadeTween eases one addon's alpha toward its target along a gween curve.
// The tween is rebuilt whenever the target moves, starting from the alpha
// reached so far, with a duration derived from the fade speed.
type fadeTween struct {
	tween *gween.Tween
	to    float64
}

// advance moves current toward target by dt. The result is clamped between
// current and target so float32 rounding in the tween never overshoots.
func (f *fadeTween) advance(current, target float64, sp Speeds, dt time.Duration, fn ease.TweenFunc) float64 {
	speed := sp.For(current, target)
	gap := math.Abs(target - current)
	if gap <= alphaEpsilon || speed <= 0 {
		f.tween = nil
		return target
	}
	if f.tween == nil || math.Abs(f.to-target) > alphaEpsilon {
		f.tween = gween.New(float32(current), float32(target), float32(gap/speed), fn)
		f.to = target
	}
	if dt < 0 {
		dt = 0
	}
	v, done := f.tween.Update(float32(dt.Seconds()))
	if done || math.Abs(target-float64(v)) <= alphaEpsilon {
		f.tween = nil
		return target
	}
	return clampBetween(float64(v), current, target)
}

// reset drops any running tween.
func (f *fadeTween) reset() {
	f.tween = nil
}

func clampBetween(v, a, b float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(v) {
		return a
	}
	return math.Max(lo, math.Min(hi, v))
}
