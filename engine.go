package fader

import (
	"log/slog"
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// addonState is the per-addon animation state owned by the engine.
type addonState struct {
	current   float64
	target    float64
	finishing bool
	visible   bool
	rule      Condition
	ruleKnown bool
	tween     fadeTween
}

// FrameStats summarizes what the last Update did.
type FrameStats struct {
	Unsafe   bool // host reported unsafe; nothing ran
	Restored bool // the restore path ran
	Idle     bool // nothing changed; the resolution pass was skipped
	Resolved int  // addons run through rule resolution and animation
	Commands int  // sink calls issued
	Elapsed  time.Duration
}

// Engine is the per-frame fading scheduler. It owns the condition snapshot,
// hover states, hysteresis timers and per-addon alpha, and must be driven
// from a single goroutine.
type Engine struct {
	host   Host
	sink   Sink
	cfg    *Config
	reg    *Registry
	clock  Clock
	logger *slog.Logger
	store  EventSink
	gaze   GazeTracker
	debug  bool

	agg    *StateAggregator
	hover  *HoverResolver
	rules  *RuleResolver
	states map[string]*addonState
	easing ease.TweenFunc

	enabled       bool
	editorWasOpen bool
	wasUnsafe     bool
	configChanged bool
	last          FrameStats
}

// NewEngine creates an enabled engine. A nil cfg uses DefaultConfig. The
// config is initialized and its element addons are registered; the first
// processed frame always runs a full resolution pass.
func NewEngine(host Host, sink Sink, cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	clock := Clock(SystemClock{})
	e := &Engine{
		host:          host,
		sink:          sink,
		reg:           NewRegistry(),
		clock:         clock,
		logger:        slog.Default().With(slog.String("component", "fader")),
		agg:           NewStateAggregator(clock.Now()),
		hover:         NewHoverResolver(),
		rules:         NewRuleResolver(),
		states:        make(map[string]*addonState),
		enabled:       true,
		configChanged: true,
	}
	e.applyConfig(cfg)
	return e
}

// --- Configuration ---

// Register assigns addons to element. An addon already owned by another
// element keeps its first owner. The element gets a Default rule if its rule
// list lacks one.
func (e *Engine) Register(element Element, addons ...string) {
	e.reg.Register(element, addons...)
	e.cfg.Initialize(element)
	e.configChanged = true
}

// SetConfig replaces the configuration and forces one resolution pass.
func (e *Engine) SetConfig(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e.applyConfig(cfg)
	e.configChanged = true
	e.logger.Info("config replaced", slog.Int("elements", len(cfg.Elements)))
}

// NotifyConfigChanged tells the engine the current Config was edited in
// place. The next frame runs a full resolution pass.
func (e *Engine) NotifyConfigChanged() {
	e.applyConfig(e.cfg)
	e.configChanged = true
}

func (e *Engine) applyConfig(cfg *Config) {
	e.cfg = cfg
	cfg.Initialize(e.reg.Elements()...)
	for element, ec := range cfg.Elements {
		if ec != nil {
			e.reg.Register(element, ec.Addons...)
		}
	}
	fn, ok := LookupEasing(cfg.Easing)
	if !ok {
		e.logger.Warn("unknown easing, using linear", slog.String("easing", cfg.Easing))
	}
	e.easing = fn
	for _, st := range e.states {
		st.tween.reset()
	}
}

// Config returns the active configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Registry returns the addon registry.
func (e *Engine) Registry() *Registry {
	return e.reg
}

// SetClock replaces the time source. The chat activity window restarts.
func (e *Engine) SetClock(c Clock) {
	if c == nil {
		c = SystemClock{}
	}
	e.clock = c
	e.agg.NoteChatActivity(c.Now())
}

// SetLogger replaces the logger. A nil logger restores the default.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default().With(slog.String("component", "fader"))
	}
	e.logger = l
}

// SetEventSink sets the optional event bridge.
func (e *Engine) SetEventSink(store EventSink) {
	e.store = store
}

// SetGazeTracker sets the optional secondary pointer source. It is only
// consulted while Config.UseGazeTracking is on.
func (e *Engine) SetGazeTracker(g GazeTracker) {
	e.gaze = g
}

// SetDebugMode enables per-frame stats logging at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// --- Enable / disable ---

// Enabled reports whether fading is active.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetEnabled turns fading on or off. Disabling restores every addon to its
// saved opacity immediately.
func (e *Engine) SetEnabled(enabled bool) {
	if e.enabled == enabled {
		return
	}
	e.enabled = enabled
	if enabled {
		e.configChanged = true
		e.logger.Info("fading enabled")
		return
	}
	e.logger.Info("fading disabled")
	var stats FrameStats
	e.restore(&stats)
}

// Toggle flips Enabled and returns the new value.
func (e *Engine) Toggle() bool {
	e.SetEnabled(!e.enabled)
	return e.enabled
}

// NoteChatActivity records that a qualifying chat message just arrived.
func (e *Engine) NoteChatActivity() {
	e.agg.NoteChatActivity(e.clock.Now())
}

// Close restores every addon to its saved opacity and visibility.
func (e *Engine) Close() {
	e.Restore()
}

// --- Frame update ---

// Update runs one frame. dt is the time since the previous frame.
func (e *Engine) Update(dt time.Duration) {
	var start time.Time
	if e.debug {
		start = time.Now()
	}
	stats := FrameStats{}
	defer func() {
		if e.debug {
			stats.Elapsed = time.Since(start)
		}
		e.last = stats
		e.debugLog(stats)
	}()

	if !e.host.SafeToWork() {
		e.wasUnsafe = true
		stats.Unsafe = true
		return
	}
	if e.wasUnsafe {
		e.wasUnsafe = false
		e.logger.Info("host safe again, restoring saved opacity")
		e.restore(&stats)
		e.configChanged = true
	}

	editorOpen := e.host.LayoutEditorOpen()
	if editorOpen != e.editorWasOpen {
		e.editorWasOpen = editorOpen
		if editorOpen {
			e.logger.Info("layout editor opened")
		} else {
			e.logger.Info("layout editor closed")
			e.restore(&stats)
			e.configChanged = true
		}
	}
	if !e.enabled || editorOpen {
		e.restore(&stats)
		return
	}

	now := e.clock.Now()
	_, changed := e.agg.Refresh(e.host, e.cfg, now)
	hoverChanged, anyHovered := e.hover.Resolve(e.pointers(), e.reg, e.host, e.cfg.HoverGroups)
	if e.agg.SetHover(anyHovered) || hoverChanged {
		changed = true
	}

	if !changed && !e.configChanged && e.alphasMatch() && !e.delayExpired(now) {
		if e.cfg.DefaultDelayEnabled {
			e.rules.Touch(now)
		}
		stats.Idle = true
		return
	}
	e.resolve(now, dt, &stats)
	e.configChanged = false
}

// pointers gathers the primary pointers plus the gaze point when tracking is
// enabled and the sample is valid.
func (e *Engine) pointers() []Vec2 {
	pts := e.host.Pointers()
	if !e.cfg.UseGazeTracking || e.gaze == nil {
		return pts
	}
	if p, ok := GazeToScreen(e.gaze.TrackerData(), e.gaze.Viewport()); ok {
		pts = append(pts[:len(pts):len(pts)], p)
	}
	return pts
}

// resolve runs rule selection and animation for every registered addon.
func (e *Engine) resolve(now time.Time, dt time.Duration, stats *FrameStats) {
	delayOn := e.cfg.DefaultDelayEnabled
	if !delayOn {
		e.rules.Reset()
	}
	snap := e.agg.Snapshot()

	for _, addon := range e.reg.Addons() {
		element, _ := e.reg.Element(addon)
		st := e.state(addon)
		hovered := e.hover.Hovered(addon)
		rule := e.rules.Select(addon, e.cfg.Rules(element), snap, hovered, now, delayOn, e.cfg.DefaultDelay.Duration)

		in := StepInput{
			Rule:      rule,
			Hovered:   hovered,
			Finishing: st.finishing,
			Current:   st.current,
			Speeds:    e.cfg.SpeedsFor(element),
			Disabled:  e.cfg.Disabled(element),
			DT:        dt,
		}
		var res StepResult
		if e.easing == nil {
			res = Step(in)
		} else {
			res.Target, res.Finishing = resolveTarget(in)
			res.Alpha = st.tween.advance(in.Current, res.Target, in.Speeds, dt, e.easing)
			res.Visible = visibleAt(res.Alpha, in.Disabled)
		}

		if !st.ruleKnown || st.rule != rule.Condition {
			st.rule, st.ruleKnown = rule.Condition, true
			e.emit(Event{Type: EventRuleChanged, Addon: addon, Element: element,
				Condition: rule.Condition, Alpha: res.Alpha, Visible: res.Visible})
		}
		if st.visible != res.Visible {
			typ := EventShown
			if !res.Visible {
				typ = EventHidden
			}
			e.emit(Event{Type: typ, Addon: addon, Element: element,
				Condition: rule.Condition, Alpha: res.Alpha, Visible: res.Visible})
		}

		st.current = res.Alpha
		st.target = res.Target
		st.finishing = res.Finishing
		st.visible = res.Visible
		stats.Resolved++

		// Missing addons keep animating but get no commands this frame.
		if _, present := e.host.AddonRect(addon); !present {
			continue
		}
		e.sink.SetOpacity(addon, res.Alpha)
		e.sink.SetVisible(addon, res.Visible)
		stats.Commands += 2
	}
}

// --- Restore ---

// Restore puts every known addon back to its saved opacity, fully visible,
// and clears finishing-hover and hysteresis state.
func (e *Engine) Restore() {
	var stats FrameStats
	e.restore(&stats)
}

func (e *Engine) restore(stats *FrameStats) {
	stats.Restored = true
	e.rules.Reset()
	for _, addon := range e.reg.Addons() {
		element, _ := e.reg.Element(addon)
		st := e.state(addon)
		saved := clamp01(e.host.SavedOpacity(addon))
		moved := st.current != saved || st.target != saved || !st.visible || st.finishing
		st.current = saved
		st.target = saved
		st.finishing = false
		st.visible = true
		st.ruleKnown = false
		st.tween.reset()

		e.sink.SetOpacity(addon, saved)
		e.sink.SetVisible(addon, true)
		stats.Commands += 2
		if moved {
			e.emit(Event{Type: EventRestored, Addon: addon, Element: element, Alpha: saved, Visible: true})
		}
	}
}

// --- State helpers ---

// state returns the addon's animation state, creating it from the saved
// opacity on first use.
func (e *Engine) state(addon string) *addonState {
	st, ok := e.states[addon]
	if !ok {
		saved := clamp01(e.host.SavedOpacity(addon))
		st = &addonState{current: saved, target: saved, visible: true}
		e.states[addon] = st
	}
	return st
}

// alphasMatch reports whether every registered addon has a state whose alpha
// has reached its target.
func (e *Engine) alphasMatch() bool {
	for _, addon := range e.reg.Addons() {
		st, ok := e.states[addon]
		if !ok || math.Abs(st.current-st.target) > alphaEpsilon {
			return false
		}
	}
	return true
}

func (e *Engine) delayExpired(now time.Time) bool {
	if !e.cfg.DefaultDelayEnabled {
		return false
	}
	return e.rules.AnyExpired(now, e.cfg.DefaultDelay.Duration)
}

func (e *Engine) emit(ev Event) {
	if e.store != nil {
		e.store.EmitEvent(ev)
	}
}

// --- Inspection ---

// Alpha returns addon's current and target alpha.
func (e *Engine) Alpha(addon string) (current, target float64, ok bool) {
	st, ok := e.states[addon]
	if !ok {
		return 0, 0, false
	}
	return st.current, st.target, true
}

// Visible reports the last visibility decided for addon.
func (e *Engine) Visible(addon string) bool {
	st, ok := e.states[addon]
	return !ok || st.visible
}

// Hovered reports addon's published hover state from the last frame.
func (e *Engine) Hovered(addon string) bool {
	return e.hover.Hovered(addon)
}

// Snapshot returns the last aggregated condition snapshot.
func (e *Engine) Snapshot() Snapshot {
	return e.agg.Snapshot()
}

// LastFrame returns stats for the most recent Update.
func (e *Engine) LastFrame() FrameStats {
	return e.last
}
