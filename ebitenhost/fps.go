package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget is a small FPS/TPS readout redrawn about twice a second.
type fpsWidget struct {
	img   *ebiten.Image
	since time.Duration
	dirty bool
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{img: ebiten.NewImage(100, 32), dirty: true}
}

func (w *fpsWidget) update(dt time.Duration) {
	w.since += dt
	if w.since < 500*time.Millisecond {
		return
	}
	w.since = 0
	w.dirty = true
}

func (w *fpsWidget) draw(screen *ebiten.Image, x, y float64) {
	if w.dirty {
		w.dirty = false
		w.img.Clear()
		w.img.Fill(color.RGBA{A: 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(w.img, op)
}
