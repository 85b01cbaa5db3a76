package anim

import (
	"math"
	"testing"
)

func collect(l *Linear, n int) []float64 {
	out := make([]float64, 0, n)
	for range n {
		l.Tick()
		out = append(out, l.Get())
	}
	return out
}

func approxSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestLinearModes(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		n    int
		want []float64
	}{
		{"stop", Stop, 5, []float64{0, 5, 10, 10, 10}},
		{"bounce", Bounce, 6, []float64{0, 5, 10, 5, 0, 5}},
		{"loop", Loop, 6, []float64{0, 5, 10, 0, 5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLinear(0, 10, 3, tt.mode)
			got := collect(l, tt.n)
			if !approxSlice(got, tt.want) {
				t.Errorf("values = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinearStopDone(t *testing.T) {
	l := NewLinear(0, 1, 3, Stop)
	for i := 0; i < 3; i++ {
		if l.Done() {
			t.Fatalf("Done() = true after %d ticks", i)
		}
		l.Tick()
	}
	l.Tick()
	if !l.Done() {
		t.Error("Done() = false after running past the end")
	}
	if got := l.Get(); got != 1 {
		t.Errorf("Get() = %v, want 1", got)
	}
}

func TestLinearBackward(t *testing.T) {
	l := NewLinear(0, 10, 3, Stop, WithStart(10), WithDirection(Backward))
	if l.Frame() != 2 {
		t.Fatalf("Frame() = %d, want 2", l.Frame())
	}
	got := collect(l, 3)
	want := []float64{10, 5, 0}
	if !approxSlice(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}
}

func TestLinearDegenerate(t *testing.T) {
	l := NewLinear(4, 4, 0, Bounce)
	got := collect(l, 3)
	for _, v := range got {
		if math.IsNaN(v) || v != 4 {
			t.Fatalf("values = %v, want all 4", got)
		}
	}
}

func TestModeString(t *testing.T) {
	if Bounce.String() != "bounce" || Mode(9).String() != "unknown" {
		t.Errorf("unexpected mode names %q %q", Bounce, Mode(9))
	}
}

func TestBezierEndpoints(t *testing.T) {
	for _, e := range []Easing{EaseIn, EaseOut, Bezier(0.25, 0.1, 0.25, 1)} {
		if got := e(0); math.Abs(got) > 0.01 {
			t.Errorf("ease(0) = %v, want ~0", got)
		}
		if got := e(1); math.Abs(got-1) > 0.01 {
			t.Errorf("ease(1) = %v, want ~1", got)
		}
	}
}

func TestBezierLinear(t *testing.T) {
	// Control points on the diagonal give the identity curve.
	e := Bezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.8} {
		if got := e(x); math.Abs(got-x) > 0.002 {
			t.Errorf("ease(%v) = %v, want ~%v", x, got, x)
		}
	}
}

func TestEaseInAheadOfLinear(t *testing.T) {
	if got := EaseIn(0.3); got <= 0.3 {
		t.Errorf("EaseIn(0.3) = %v, want > 0.3", got)
	}
	if got := EaseOut(0.3); got >= 0.3 {
		t.Errorf("EaseOut(0.3) = %v, want < 0.3", got)
	}
}

func TestLinearWithEasing(t *testing.T) {
	l := NewLinear(0, 100, 5, Stop, WithEasing(EaseIn))
	l.Tick()
	l.Tick()
	if got := l.Get(); got <= 25 {
		t.Errorf("eased value at frame 1 = %v, want > 25", got)
	}
}
