package torch

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/torch/anim"
	"github.com/gogpu/torch/event"
)

func TestObjectHandlers(t *testing.T) {
	var o Object
	if o.Handles(event.Click) {
		t.Fatal("zero Object handles click")
	}
	calls := 0
	o.On(event.Click, func(Input) { calls++ })
	o.On(event.Click, func(Input) { calls += 10 })
	if !o.Handles(event.Click) {
		t.Fatal("Handles(click) = false after On")
	}
	o.handler(event.Click)(Input{})
	if calls != 10 {
		t.Errorf("calls = %d, want the replacing handler only", calls)
	}

	o.Off(event.Click)
	if o.Handles(event.Click) {
		t.Error("Handles(click) = true after Off")
	}

	o.On(event.NumKinds, func(Input) {})
	if o.Handles(event.NumKinds) || o.handler(event.Kind(99)) != nil {
		t.Error("out of range kinds must be ignored")
	}
}

func TestObjectMaxTouches(t *testing.T) {
	var o Object
	if o.MaxTouches() != DefaultMaxTouches {
		t.Errorf("MaxTouches() = %d, want %d", o.MaxTouches(), DefaultMaxTouches)
	}
	o.SetMaxTouches(5)
	if o.MaxTouches() != 5 {
		t.Errorf("MaxTouches() = %d, want 5", o.MaxTouches())
	}
	o.SetMaxTouches(-1)
	if o.MaxTouches() != 1 {
		t.Errorf("MaxTouches() after SetMaxTouches(-1) = %d, want 1", o.MaxTouches())
	}
}

func TestBindLinearAnimation(t *testing.T) {
	var o Object
	var x float64
	o.Bind(anim.NewLinear(0, 10, 3, anim.Stop), &x, nil)

	var got []float64
	for range 4 {
		o.Tick()
		got = append(got, x)
	}
	want := []float64{0, 5, 10, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestBindTransform(t *testing.T) {
	var o Object
	var y float64
	o.Bind(anim.NewLinear(1, 3, 3, anim.Loop), &y, func(v float64) float64 { return -v })
	o.Tick()
	o.Tick()
	if y != -2 {
		t.Errorf("y = %v, want -2", y)
	}

	// nil arguments are ignored.
	o.Bind(nil, &y, nil)
	o.Bind(anim.NewLinear(0, 1, 2, anim.Stop), nil, nil)
	if len(o.bindings) != 1 {
		t.Errorf("bindings = %d, want 1", len(o.bindings))
	}
}

func TestListeners(t *testing.T) {
	var o Object
	c := &redrawCounter{}
	o.AddListener(c)
	o.AddListener(c)
	o.AddListener(nil)
	o.RequestRedraw()
	if c.n != 1 {
		t.Errorf("redraws = %d, want 1", c.n)
	}
	o.RemoveListener(c)
	o.RequestRedraw()
	if c.n != 1 {
		t.Errorf("redraws after RemoveListener = %d, want 1", c.n)
	}
}

func TestHandlerErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	err := &HandlerError{Phase: PhaseHandler, Kind: event.Click, Value: cause}
	if !errors.Is(err, cause) {
		t.Error("HandlerError does not unwrap an error value")
	}
	for _, want := range []string{"handler", "click", "boom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() = %q, want it to contain %q", err.Error(), want)
		}
	}

	plain := &HandlerError{Phase: PhaseDraw, Value: "bad"}
	if errors.Unwrap(plain) != nil {
		t.Error("non-error panic value unwrapped to an error")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseHitTest, "hit-test"},
		{PhaseHandler, "handler"},
		{PhaseDraw, "draw"},
		{PhaseTick, "tick"},
		{PhaseHook, "hook"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}
