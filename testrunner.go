package fader

import (
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// ScriptStep is a single action in a frame script.
type ScriptStep struct {
	Action    string   `yaml:"action"`
	Label     string   `yaml:"label,omitempty"`
	Condition string   `yaml:"condition,omitempty"`
	Key       int      `yaml:"key,omitempty"`
	Value     *bool    `yaml:"value,omitempty"`
	Addon     string   `yaml:"addon,omitempty"`
	X         float64  `yaml:"x,omitempty"`
	Y         float64  `yaml:"y,omitempty"`
	W         float64  `yaml:"w,omitempty"`
	H         float64  `yaml:"h,omitempty"`
	Frames    int      `yaml:"frames,omitempty"`
	DT        Duration `yaml:"dt,omitempty"`
	Duration  Duration `yaml:"duration,omitempty"`
	Alpha     *float64 `yaml:"alpha,omitempty"`
	Tolerance float64  `yaml:"tolerance,omitempty"`
	Visible   *bool    `yaml:"visible,omitempty"`
	Hovered   *bool    `yaml:"hovered,omitempty"`
}

// Script is the top-level structure of a frame script.
type Script struct {
	Viewport Vec2         `yaml:"viewport"`
	Steps    []ScriptStep `yaml:"steps"`
}

const (
	defaultScriptDT        = 16 * time.Millisecond
	defaultScriptTolerance = 0.01
)

// LoadScript parses a YAML (or JSON) frame script.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("parse script: step %d (%s): %w", i, st.Action, err)
		}
	}
	return &s, nil
}

func (st ScriptStep) check() error {
	switch st.Action {
	case "set":
		if _, err := ParseCondition(st.Condition); err != nil {
			return err
		}
		if st.Value == nil {
			return fmt.Errorf("missing value")
		}
	case "key", "editor", "safe", "hotbars":
		if st.Value == nil {
			return fmt.Errorf("missing value")
		}
	case "place", "remove", "saved", "expect":
		if st.Addon == "" {
			return fmt.Errorf("missing addon")
		}
	case "frames":
		if st.Frames <= 0 {
			return fmt.Errorf("frames must be positive")
		}
	case "advance":
		if st.Duration.Duration <= 0 {
			return fmt.Errorf("duration must be positive")
		}
	case "pointer", "gaze", "no-gaze", "no-pointer", "chat", "enable", "disable", "restore", "config-changed":
	default:
		return fmt.Errorf("unknown action")
	}
	return nil
}

// ScriptRunner plays a Script against an Engine backed by a MemoryHost and
// a ManualClock. Each "frames" step advances the clock by dt before every
// Update.
type ScriptRunner struct {
	script *Script
	engine *Engine
	host   *MemoryHost
	clock  *ManualClock
	gaze   *StaticGaze

	// OnFrame, when set, is called after every Update with the running frame
	// count.
	OnFrame func(frame int)

	frames int
}

// NewScriptRunner wires the runner's clock and gaze tracker into engine.
func NewScriptRunner(s *Script, engine *Engine, host *MemoryHost, clock *ManualClock) *ScriptRunner {
	r := &ScriptRunner{
		script: s,
		engine: engine,
		host:   host,
		clock:  clock,
		gaze:   &StaticGaze{Size: s.Viewport},
	}
	engine.SetClock(clock)
	engine.SetGazeTracker(r.gaze)
	return r
}

// Frames returns the number of frames run so far.
func (r *ScriptRunner) Frames() int {
	return r.frames
}

// Run executes every step and returns one error per failed expectation.
func (r *ScriptRunner) Run() []error {
	var failures []error
	for i, st := range r.script.Steps {
		if err := r.step(st); err != nil {
			label := st.Label
			if label == "" {
				label = fmt.Sprintf("step %d", i)
			}
			failures = append(failures, fmt.Errorf("%s: %w", label, err))
		}
	}
	return failures
}

func (r *ScriptRunner) step(st ScriptStep) error {
	switch st.Action {
	case "set":
		c, err := ParseCondition(st.Condition)
		if err != nil {
			return err
		}
		r.host.SetCondition(c, *st.Value)
	case "key":
		r.host.SetKey(st.Key, *st.Value)
	case "hotbars":
		r.host.HotbarsOpen = *st.Value
	case "pointer":
		r.host.NoPointer = false
		r.host.Pointer = Vec2{X: st.X, Y: st.Y}
	case "no-pointer":
		r.host.NoPointer = true
	case "gaze":
		r.gaze.Aim(Vec2{X: st.X, Y: st.Y})
	case "no-gaze":
		r.gaze.Data = nil
	case "place":
		r.host.PlaceAddon(st.Addon, Rect{X: st.X, Y: st.Y, Width: st.W, Height: st.H})
	case "remove":
		r.host.RemoveAddon(st.Addon)
	case "saved":
		if st.Alpha != nil {
			r.host.SetSavedOpacity(st.Addon, *st.Alpha)
		}
	case "editor":
		r.host.EditorOpen = *st.Value
	case "safe":
		r.host.Unsafe = !*st.Value
	case "chat":
		r.engine.NoteChatActivity()
	case "enable":
		r.engine.SetEnabled(true)
	case "disable":
		r.engine.SetEnabled(false)
	case "restore":
		r.engine.Restore()
	case "config-changed":
		r.engine.NotifyConfigChanged()
	case "advance":
		r.clock.Advance(st.Duration.Duration)
	case "frames":
		dt := st.DT.Duration
		if dt <= 0 {
			dt = defaultScriptDT
		}
		for i := 0; i < st.Frames; i++ {
			r.clock.Advance(dt)
			r.engine.Update(dt)
			r.frames++
			if r.OnFrame != nil {
				r.OnFrame(r.frames)
			}
		}
	case "expect":
		return r.expect(st)
	}
	return nil
}

func (r *ScriptRunner) expect(st ScriptStep) error {
	if st.Alpha != nil {
		cur, _, ok := r.engine.Alpha(st.Addon)
		if !ok {
			return fmt.Errorf("addon %q has no animation state", st.Addon)
		}
		tol := st.Tolerance
		if tol <= 0 {
			tol = defaultScriptTolerance
		}
		if math.Abs(cur-*st.Alpha) > tol {
			return fmt.Errorf("addon %q alpha = %.3f, want %.3f", st.Addon, cur, *st.Alpha)
		}
	}
	if st.Visible != nil {
		if got := r.engine.Visible(st.Addon); got != *st.Visible {
			return fmt.Errorf("addon %q visible = %v, want %v", st.Addon, got, *st.Visible)
		}
	}
	if st.Hovered != nil {
		if got := r.engine.Hovered(st.Addon); got != *st.Hovered {
			return fmt.Errorf("addon %q hovered = %v, want %v", st.Addon, got, *st.Hovered)
		}
	}
	return nil
}
