package fader

import (
	"testing"
	"time"
)

func TestLookupEasing(t *testing.T) {
	tests := []struct {
		name    string
		wantNil bool
		wantOK  bool
	}{
		{"", true, true},
		{"linear", true, true},
		{"Linear", true, true},
		{"out-quad", false, true},
		{" IN-OUT-SINE ", false, true},
		{"out-bounce", true, false},
		{"in-back", true, false},
	}
	for _, tt := range tests {
		fn, ok := LookupEasing(tt.name)
		if ok != tt.wantOK {
			t.Errorf("LookupEasing(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
		}
		if (fn == nil) != tt.wantNil {
			t.Errorf("LookupEasing(%q) nil = %v, want %v", tt.name, fn == nil, tt.wantNil)
		}
	}
}

func TestEasingNamesResolve(t *testing.T) {
	names := EasingNames()
	if names[0] != EaseLinear {
		t.Errorf("first easing = %q, want linear", names[0])
	}
	for _, name := range names {
		if _, ok := LookupEasing(name); !ok {
			t.Errorf("listed easing %q does not resolve", name)
		}
	}
}

func TestFadeTweenReachesTargetMonotonically(t *testing.T) {
	for _, name := range EasingNames()[1:] {
		fn, _ := LookupEasing(name)
		var tw fadeTween
		cur := 0.0
		sp := Speeds{Enter: 2, Exit: 1}
		for i := 0; i < 40; i++ {
			next := tw.advance(cur, 1, sp, 16*time.Millisecond, fn)
			if next < cur || next > 1 {
				t.Fatalf("%s frame %d: %v after %v is outside [current, target]", name, i, next, cur)
			}
			cur = next
		}
		if cur != 1 {
			t.Errorf("%s: alpha = %v after 0.64s at speed 2, want 1", name, cur)
		}
	}
}

func TestFadeTweenLandsExactlyOnTarget(t *testing.T) {
	fn, _ := LookupEasing(EaseInOutSine)
	var tw fadeTween
	sp := Speeds{Enter: 2, Exit: 1}
	cur := 1.0
	for i := 0; i < 600 && cur != 0.5; i++ {
		cur = tw.advance(cur, 0.5, sp, 16*time.Millisecond, fn)
	}
	if cur != 0.5 {
		t.Errorf("eased fade stopped at %v, want exactly 0.5", cur)
	}
	if tw.tween != nil {
		t.Error("tween should be dropped once the target is reached")
	}
}

func TestFadeTweenRetargets(t *testing.T) {
	fn, _ := LookupEasing(EaseInOutQuad)
	var tw fadeTween
	sp := Speeds{Enter: 1, Exit: 1}

	cur := 0.0
	for i := 0; i < 10; i++ {
		cur = tw.advance(cur, 1, sp, 16*time.Millisecond, fn)
	}
	if cur <= 0 || cur >= 1 {
		t.Fatalf("expected a partial fade, got %v", cur)
	}

	peak := cur
	for i := 0; i < 10; i++ {
		next := tw.advance(cur, 0, sp, 16*time.Millisecond, fn)
		if next > cur {
			t.Fatalf("retargeted fade moved the wrong way: %v -> %v", cur, next)
		}
		cur = next
	}
	if cur >= peak {
		t.Errorf("alpha should fall after retargeting, still %v", cur)
	}
	if tw.to != 0 {
		t.Errorf("tween target = %v, want 0", tw.to)
	}
}

func TestFadeTweenSnaps(t *testing.T) {
	fn, _ := LookupEasing(EaseOutSine)
	var tw fadeTween
	if got := tw.advance(0.5, 0.5005, Speeds{1, 1}, time.Millisecond, fn); got != 0.5005 {
		t.Errorf("gap within epsilon should snap, got %v", got)
	}
	if got := tw.advance(0, 1, Speeds{}, time.Millisecond, fn); got != 1 {
		t.Errorf("zero speed should snap, got %v", got)
	}
	tw.advance(0, 1, Speeds{1, 1}, time.Millisecond, fn)
	tw.reset()
	if tw.tween != nil {
		t.Error("reset should drop the tween")
	}
}

func TestClampBetween(t *testing.T) {
	if got := clampBetween(1.2, 0, 1); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
	if got := clampBetween(-0.1, 1, 0); got != 0 {
		t.Errorf("reversed bounds: got %v, want 0", got)
	}
	if got := clampBetween(0.4, 0.2, 0.6); got != 0.4 {
		t.Errorf("got %v, want 0.4", got)
	}
}
