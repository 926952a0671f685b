// Package fader is a per-frame opacity engine for game UI elements.
//
// Each frame the engine reads a fixed set of boolean conditions (in combat,
// chat focused, mounted, a modifier key held, pointer hovering an element
// and so on), picks one rule per UI element, and moves each element's alpha
// toward that rule's opacity at a configurable speed. Elements flagged as
// disabled are hidden outright once nearly transparent.
//
// # Quick start
//
// Implement [Host] and [Sink] for your game (or use [MemoryHost] in tests),
// build a [Config] and call [Engine.Update] once per frame:
//
//	cfg := fader.DefaultConfig()
//	cfg.Elements["chat"] = &fader.ElementConfig{
//		Addons: []string{"ChatLog"},
//		Rules: []fader.Rule{
//			{Condition: fader.ConditionChatFocus, Opacity: 1},
//			{Condition: fader.ConditionDefault, Opacity: 0.3},
//		},
//	}
//	engine := fader.NewEngine(host, sink, cfg)
//	// every frame:
//	engine.Update(dt)
//
// The ebitenhost package provides a ready-made Host and Sink on top of
// Ebitengine.
//
// # Rule selection
//
// For each addon the engine picks, in order: the element's Hover rule when
// the addon is hovered; the first rule whose condition holds, skipping Hover
// and Default; the element's Default rule. An element without a Default rule
// falls back to [DefaultRule].
//
// With [Config.DefaultDelayEnabled], an addon that drops back to Default
// keeps its previous rule for [Config.DefaultDelay] first, so brief gaps in
// a condition do not make elements flicker.
//
// # Hover groups
//
// A [HoverGroup] ties elements together: hovering any addon of any member
// element marks every addon of every member as hovered for that frame.
// Groups only read the raw hit-test results, so overlapping groups never
// activate each other.
//
// # Restoring
//
// While disabled, while the host's layout editor is open, and on the first
// safe frame after an unsafe period, every addon is put back to its saved
// opacity and made visible. [Engine.Close] does the same on shutdown.
//
// # Events
//
// Set an [EventSink] with [Engine.SetEventSink] to observe rule changes,
// hides, shows and restores. The ecs package forwards them into a Donburi
// world.
//
// # Scripted runs
//
// [LoadScript] and [ScriptRunner] replay YAML frame scripts against a
// [MemoryHost] and [ManualClock], which is how the fader command's simulate
// subcommand works.
package fader
