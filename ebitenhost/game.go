package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/fader"
)

// Toggle binds a key to a host condition flip.
type Toggle struct {
	Key       ebiten.Key
	Condition fader.Condition
}

// DefaultToggles lets a demo drive the conditions ebiten cannot observe.
var DefaultToggles = []Toggle{
	{ebiten.KeyF1, fader.ConditionCombat},
	{ebiten.KeyF2, fader.ConditionChatFocus},
	{ebiten.KeyF3, fader.ConditionDuty},
	{ebiten.KeyF4, fader.ConditionWeaponUnsheathed},
	{ebiten.KeyF5, fader.ConditionMounted},
	{ebiten.KeyF6, fader.ConditionEnemyTarget},
}

// Game implements ebiten.Game. Each tick it applies key toggles, advances the
// engine by one tick of ebiten.TPS and draws the host's panels.
type Game struct {
	Engine *fader.Engine
	Host   *Host

	Width, Height int
	ClearColor    color.RGBA
	Toggles       []Toggle
	ShowHelp      bool

	white *ebiten.Image
	fps   *fpsWidget
}

// NewGame creates a Game with the default toggles.
func NewGame(engine *fader.Engine, host *Host, width, height int) *Game {
	return &Game{
		Engine:     engine,
		Host:       host,
		Width:      width,
		Height:     height,
		ClearColor: color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff},
		Toggles:    DefaultToggles,
		ShowHelp:   true,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	for _, t := range g.Toggles {
		if inpututil.IsKeyJustPressed(t.Key) {
			g.Host.ToggleCondition(t.Condition)
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.Engine.NoteChatActivity()
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		g.Host.EditorOpen = !g.Host.EditorOpen
	case inpututil.IsKeyJustPressed(ebiten.KeyF10):
		g.Engine.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.ShowHelp = !g.ShowHelp
	}
	dt := tickDuration()
	g.Engine.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

// tickDuration is the fixed frame delta ebiten runs Update at.
func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor)
	if g.white == nil {
		g.white = ebiten.NewImage(1, 1)
		g.white.Fill(color.White)
	}
	for _, p := range g.Host.Panels() {
		if p.Hidden() {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Bounds.Width, p.Bounds.Height)
		op.GeoM.Translate(p.Bounds.X, p.Bounds.Y)
		op.ColorScale.ScaleWithColor(p.Color)
		op.ColorScale.ScaleAlpha(float32(p.Alpha))
		screen.DrawImage(g.white, op)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.2f", p.Name, p.Alpha), int(p.Bounds.X)+4, int(p.Bounds.Y)+4)
	}
	if g.ShowHelp {
		ebitenutil.DebugPrintAt(screen, g.help(), 8, g.Height-110)
	}
	if g.fps != nil {
		g.fps.draw(screen, float64(g.Width-108), 8)
	}
}

func (g *Game) help() string {
	state := "on"
	if !g.Engine.Enabled() {
		state = "off"
	}
	return fmt.Sprintf("fading %s\n%s\n"+
		"F1 combat  F2 chat focus  F3 duty  F4 weapon  F5 mount  F6 enemy target\n"+
		"Enter chat message  F9 layout editor  F10 toggle fading  H help",
		state, g.Engine.Snapshot())
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and runs the game until it is closed. Every addon is
// restored to its saved opacity on exit.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		g.Width, g.Height = cfg.Width, cfg.Height
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	ebiten.SetWindowSize(g.Width, g.Height)
	ebiten.SetWindowTitle(cfg.Title)
	defer g.Engine.Close()
	return ebiten.RunGame(g)
}
