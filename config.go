package fader

import (
	"errors"
	"fmt"
	"time"
)

// Config is the user-authored fading configuration. The engine reads it but
// never mutates it outside Initialize.
type Config struct {
	// DefaultDelayEnabled keeps an element on its last non-Default rule for
	// DefaultDelay after the triggering condition clears.
	DefaultDelayEnabled bool     `toml:"default_delay_enabled" yaml:"default_delay_enabled"`
	DefaultDelay        Duration `toml:"default_delay" yaml:"default_delay"`

	// ChatActivityTimeout is how long ChatActivity stays true after a message.
	ChatActivityTimeout Duration `toml:"chat_activity_timeout" yaml:"chat_activity_timeout"`

	// EnterSpeed and ExitSpeed are alpha units per second for fading in and out.
	EnterSpeed float64 `toml:"enter_speed" yaml:"enter_speed"`
	ExitSpeed  float64 `toml:"exit_speed" yaml:"exit_speed"`

	// Easing names the fade curve. Empty means linear.
	Easing string `toml:"easing" yaml:"easing"`

	OverrideKey          int  `toml:"override_key" yaml:"override_key"`
	FocusOnHotbarsUnlock bool `toml:"focus_on_hotbars_unlock" yaml:"focus_on_hotbars_unlock"`
	UseGazeTracking      bool `toml:"use_gaze_tracking" yaml:"use_gaze_tracking"`

	Elements    map[Element]*ElementConfig `toml:"elements" yaml:"elements"`
	HoverGroups []HoverGroup               `toml:"hover_groups" yaml:"hover_groups"`
}

// ElementConfig is the per-element part of Config.
type ElementConfig struct {
	// Addons lists the concrete addon names owned by the element.
	Addons []string `toml:"addons" yaml:"addons"`

	// Rules is the ordered rule list. After Initialize it always contains a
	// Default rule.
	Rules []Rule `toml:"rules" yaml:"rules"`

	// Disabled elements are moved off screen once nearly transparent.
	Disabled bool `toml:"disabled" yaml:"disabled"`

	Fade FadeOverride `toml:"fade" yaml:"fade"`
}

// FadeOverride replaces the global fade speeds for one element when Enabled.
type FadeOverride struct {
	Enabled    bool    `toml:"enabled" yaml:"enabled"`
	EnterSpeed float64 `toml:"enter_speed" yaml:"enter_speed"`
	ExitSpeed  float64 `toml:"exit_speed" yaml:"exit_speed"`
}

const (
	defaultDelay       = 2 * time.Second
	defaultChatTimeout = 5 * time.Second
)

// DefaultConfig returns the configuration used when nothing is loaded.
func DefaultConfig() *Config {
	return &Config{
		DefaultDelayEnabled: true,
		DefaultDelay:        Duration{defaultDelay},
		ChatActivityTimeout: Duration{defaultChatTimeout},
		EnterSpeed:          2.0,
		ExitSpeed:           1.0,
		Easing:              EaseLinear,
		OverrideKey:         KeyAlt,
		Elements:            make(map[Element]*ElementConfig),
	}
}

// Initialize repairs the configuration in place so that every configured
// element, plus every element in extra, has a rule list containing a Default
// rule. A zero DefaultDelay is reset to two seconds.
func (c *Config) Initialize(extra ...Element) {
	if c.Elements == nil {
		c.Elements = make(map[Element]*ElementConfig)
	}
	for _, e := range extra {
		if c.Elements[e] == nil {
			c.Elements[e] = &ElementConfig{}
		}
	}
	for e, ec := range c.Elements {
		if ec == nil {
			ec = &ElementConfig{}
			c.Elements[e] = ec
		}
		if !hasDefault(ec.Rules) {
			ec.Rules = append(ec.Rules, DefaultRule)
		}
	}
	if c.DefaultDelay.Duration == 0 {
		c.DefaultDelay = Duration{defaultDelay}
	}
}

func hasDefault(rules []Rule) bool {
	for _, r := range rules {
		if r.Condition == ConditionDefault {
			return true
		}
	}
	return false
}

// Rules returns element's rule list, or nil when it is not configured.
func (c *Config) Rules(element Element) []Rule {
	if ec := c.Elements[element]; ec != nil {
		return ec.Rules
	}
	return nil
}

// Disabled reports whether element is configured to hide when faded out.
func (c *Config) Disabled(element Element) bool {
	ec := c.Elements[element]
	return ec != nil && ec.Disabled
}

// SpeedsFor returns the fade speeds that apply to element.
func (c *Config) SpeedsFor(element Element) Speeds {
	if ec := c.Elements[element]; ec != nil && ec.Fade.Enabled {
		return Speeds{Enter: ec.Fade.EnterSpeed, Exit: ec.Fade.ExitSpeed}
	}
	return Speeds{Enter: c.EnterSpeed, Exit: c.ExitSpeed}
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.EnterSpeed <= 0 {
		errs = append(errs, fmt.Errorf("enter_speed must be positive, got %v", c.EnterSpeed))
	}
	if c.ExitSpeed <= 0 {
		errs = append(errs, fmt.Errorf("exit_speed must be positive, got %v", c.ExitSpeed))
	}
	if c.DefaultDelay.Duration < 0 {
		errs = append(errs, fmt.Errorf("default_delay must not be negative"))
	}
	if _, ok := LookupEasing(c.Easing); !ok {
		errs = append(errs, fmt.Errorf("unknown easing %q", c.Easing))
	}
	for e, ec := range c.Elements {
		if ec == nil {
			continue
		}
		for i, r := range ec.Rules {
			if !r.Condition.Valid() {
				errs = append(errs, fmt.Errorf("element %q rule %d: invalid condition", e, i))
			}
			if r.Opacity < 0 || r.Opacity > 1 {
				errs = append(errs, fmt.Errorf("element %q rule %d: opacity %v outside [0, 1]", e, i, r.Opacity))
			}
		}
		if ec.Fade.Enabled && (ec.Fade.EnterSpeed <= 0 || ec.Fade.ExitSpeed <= 0) {
			errs = append(errs, fmt.Errorf("element %q: fade override speeds must be positive", e))
		}
	}
	for _, g := range c.HoverGroups {
		for _, e := range g.Elements {
			if _, ok := c.Elements[e]; !ok {
				errs = append(errs, fmt.Errorf("hover group %q: unknown element %q", g.Name, e))
			}
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Elements = make(map[Element]*ElementConfig, len(c.Elements))
	for e, ec := range c.Elements {
		if ec == nil {
			out.Elements[e] = nil
			continue
		}
		cp := *ec
		cp.Addons = append([]string(nil), ec.Addons...)
		cp.Rules = append([]Rule(nil), ec.Rules...)
		out.Elements[e] = &cp
	}
	out.HoverGroups = make([]HoverGroup, len(c.HoverGroups))
	for i, g := range c.HoverGroups {
		out.HoverGroups[i] = HoverGroup{Name: g.Name, Elements: append([]Element(nil), g.Elements...)}
	}
	return &out
}
