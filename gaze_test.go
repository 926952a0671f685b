package fader

import (
	"math"
	"testing"
)

func TestGazeToScreen(t *testing.T) {
	vp := Vec2{X: 1920, Y: 1080}
	tests := []struct {
		name   string
		data   []float32
		want   Vec2
		wantOK bool
	}{
		{"centre", []float32{0, 0, 0}, Vec2{X: 960, Y: 540}, true},
		{"top left", []float32{0, -1, 1}, Vec2{X: 0, Y: 0}, true},
		{"bottom right", []float32{0, 1, -1}, Vec2{X: 1920, Y: 1080}, true},
		{"too short", []float32{0, 0.5}, Vec2{}, false},
		{"nil", nil, Vec2{}, false},
		{"nan", []float32{0, float32(math.NaN()), 0}, Vec2{}, false},
		{"inf", []float32{0, 0, float32(math.Inf(1))}, Vec2{}, false},
	}
	for _, tt := range tests {
		got, ok := GazeToScreen(tt.data, vp)
		if ok != tt.wantOK {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if math.Abs(got.X-tt.want.X) > 1e-6 || math.Abs(got.Y-tt.want.Y) > 1e-6 {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestStaticGazeAim(t *testing.T) {
	g := &StaticGaze{Size: Vec2{X: 800, Y: 600}}
	g.Aim(Vec2{X: 200, Y: 450})
	got, ok := GazeToScreen(g.TrackerData(), g.Viewport())
	if !ok {
		t.Fatal("aimed gaze should be valid")
	}
	if math.Abs(got.X-200) > 0.01 || math.Abs(got.Y-450) > 0.01 {
		t.Errorf("round trip = %+v, want (200, 450)", got)
	}

	var zero StaticGaze
	zero.Aim(Vec2{X: 1, Y: 1})
	if zero.TrackerData() != nil {
		t.Error("aiming without a viewport should leave the tracker inactive")
	}
}
