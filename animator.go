package fader

import (
	"math"
	"time"
)

// Speeds are fade rates in alpha units per second.
type Speeds struct {
	Enter float64 // used when alpha rises toward its target
	Exit  float64 // used when alpha falls toward its target
}

// For picks the speed for moving from current to target.
func (s Speeds) For(current, target float64) float64 {
	if target > current {
		return s.Enter
	}
	return s.Exit
}

// TargetAlpha returns the alpha a rule drives toward. A Hover rule only pulls
// while hovered; otherwise the current alpha is held so that a started
// fade-in is not yanked away the instant hover ends. Opacities outside
// [0, 1] are clamped and NaN counts as 0.
func TargetAlpha(rule Rule, hovered bool, current float64) float64 {
	if rule.Condition == ConditionHover && !hovered {
		return current
	}
	return clamp01(rule.Opacity)
}

// MoveTowards moves current toward target by at most maxDelta, snapping
// exactly onto target once within reach. A non-positive maxDelta leaves
// current unchanged unless it already equals target.
func MoveTowards(current, target, maxDelta float64) float64 {
	if maxDelta < 0 {
		maxDelta = 0
	}
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// StepInput is everything Step needs for one addon on one frame.
type StepInput struct {
	Rule      Rule
	Hovered   bool
	Finishing bool // carried over from the previous frame
	Current   float64
	Speeds    Speeds
	Disabled  bool // element hides once nearly transparent
	DT        time.Duration
}

// StepResult is the outcome of Step.
type StepResult struct {
	Target    float64
	Alpha     float64
	Finishing bool
	Visible   bool
}

// resolveTarget computes the frame's target alpha and the new finishing-hover
// flag. While hovered or finishing, a fade toward the rule's opacity that has
// not caught up yet keeps going; once hover ends and alpha has arrived, the
// flag clears.
func resolveTarget(in StepInput) (target float64, finishing bool) {
	target = TargetAlpha(in.Rule, in.Hovered, in.Current)
	if !in.Hovered && !in.Finishing {
		return target, false
	}
	finishing = in.Finishing
	if in.Rule.Condition == ConditionHover {
		finishing = true
	}
	if opacity := clamp01(in.Rule.Opacity); in.Current < opacity-alphaEpsilon {
		target = opacity
	} else if !in.Hovered {
		finishing = false
	}
	return target, finishing
}

// Step advances one addon's alpha linearly toward its resolved target and
// decides visibility. The result alpha always lies between Current and
// Target inclusive.
func Step(in StepInput) StepResult {
	target, finishing := resolveTarget(in)
	alpha := advanceLinear(in.Current, target, in.Speeds, in.DT)
	return StepResult{
		Target:    target,
		Alpha:     alpha,
		Finishing: finishing,
		Visible:   visibleAt(alpha, in.Disabled),
	}
}

func advanceLinear(current, target float64, sp Speeds, dt time.Duration) float64 {
	speed := sp.For(current, target)
	if speed <= 0 {
		return target
	}
	if dt < 0 {
		dt = 0
	}
	return MoveTowards(current, target, speed*dt.Seconds())
}

func visibleAt(alpha float64, disabled bool) bool {
	return !(disabled && alpha < hiddenThreshold)
}
