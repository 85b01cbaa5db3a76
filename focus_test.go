package torch

import (
	"testing"

	"github.com/gogpu/torch/event"
)

func TestFocusIsExclusive(t *testing.T) {
	s := newHeadless()
	rec := newRecorder()
	a, b := newBox(0, 0, 10, 10), newBox(20, 0, 10, 10)
	rec.watch("a", &a.Object)
	rec.watch("b", &b.Object)
	s.Add("a", a)
	s.Add("b", b)

	s.Focus(a)
	s.Focus(b)

	if a.HasFocus() || !b.HasFocus() {
		t.Fatalf("HasFocus a=%v b=%v, want false true", a.HasFocus(), b.HasFocus())
	}
	if s.Focused() != Drawable(b) {
		t.Errorf("Focused() = %v, want b", s.Focused())
	}
	assertCalls(t, rec.calls, []string{"a:focus", "a:blur", "b:focus"})

	// Focusing the holder again does nothing.
	rec.reset()
	s.Focus(b)
	if len(rec.calls) != 0 {
		t.Errorf("refocus calls = %v, want none", rec.calls)
	}
}

func TestPressFocuses(t *testing.T) {
	tests := []struct {
		name      string
		opts      []SurfaceOption
		button    event.Button
		hover     bool
		wantFocus bool
	}{
		{"with input focus", []SurfaceOption{WithInputFocus(true)}, event.ButtonPrimary, true, true},
		{"without input focus", nil, event.ButtonPrimary, true, false},
		{"secondary button", []SurfaceOption{WithInputFocus(true)}, event.ButtonSecondary, true, false},
		{"middle button", []SurfaceOption{WithInputFocus(true)}, event.ButtonMiddle, true, true},
		{"press without hover", []SurfaceOption{WithInputFocus(true)}, event.ButtonPrimary, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHeadless(tt.opts...)
			b := newBox(0, 0, 10, 10)
			s.Add("b", b)

			if tt.hover {
				mouse(s, event.MouseMove, 4, 4)
			}
			s.Dispatch(event.Mouse(event.MouseDown, 5, 5, tt.button))
			if b.HasFocus() != tt.wantFocus {
				t.Errorf("HasFocus() = %v, want %v", b.HasFocus(), tt.wantFocus)
			}
		})
	}
}

func TestTouchStartFocuses(t *testing.T) {
	s := newHeadless(WithInputFocus(true))
	b := newBox(0, 0, 10, 10)
	s.Add("b", b)

	touch(s, event.TouchStart, 1, 5, 5)
	if !b.HasFocus() {
		t.Error("touchstart did not focus the object")
	}
}

func TestKeysGoToFocusedObject(t *testing.T) {
	s := newHeadless()
	rec := newRecorder()
	a, b := newBox(0, 0, 10, 10), newBox(20, 0, 10, 10)
	rec.watch("a", &a.Object)
	rec.watch("b", &b.Object)
	s.Add("a", a)
	s.Add("b", b)

	// Nothing focused: the key is dropped.
	s.Dispatch(event.KeyEvent(event.KeyDown, event.KeyEnter, 0, 0))
	if len(rec.calls) != 0 {
		t.Fatalf("calls = %v, want none", rec.calls)
	}

	s.Focus(a)
	rec.reset()
	s.Dispatch(event.KeyEvent(event.KeyDown, event.KeyRune, 'x', event.ModShift))
	s.Dispatch(event.KeyEvent(event.KeyPress, event.KeyRune, 'x', event.ModShift))
	s.Dispatch(event.KeyEvent(event.KeyUp, event.KeyRune, 'x', event.ModShift))

	assertCalls(t, rec.calls, []string{"a:keydown", "a:keypress", "a:keyup"})
	in := rec.inputs["a:keypress"][0]
	if in.Event.Rune != 'x' || in.Event.Modifiers != event.ModShift {
		t.Errorf("keypress event = %+v, want rune x with shift", in.Event)
	}
}

func TestHostFocusEvents(t *testing.T) {
	s := newHeadless()
	b := newBox(0, 0, 10, 10)
	s.Add("b", b)

	s.Dispatch(event.Event{Kind: event.Focus})
	if !s.HasInputFocus() {
		t.Fatal("HasInputFocus() = false after host focus")
	}
	mouse(s, event.MouseMove, 5, 5)
	mouse(s, event.MouseDown, 5, 5)
	if !b.HasFocus() {
		t.Fatal("press did not focus the object")
	}

	s.Dispatch(event.Event{Kind: event.Blur})
	if s.HasInputFocus() || b.HasFocus() {
		t.Errorf("after host blur: input focus %v, object focus %v", s.HasInputFocus(), b.HasFocus())
	}
	if s.Focused() != nil {
		t.Errorf("Focused() = %v, want nil", s.Focused())
	}
}

func TestPressOutsideBlurs(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		wantBlur bool
	}{
		{"default", true, true},
		{"disabled", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newHeadless(WithInputFocus(true), WithBlurOnOutsidePress(tt.enabled))
			b := newBox(0, 0, 10, 10)
			s.Add("b", b)

			mouse(s, event.MouseMove, 5, 5)
			mouse(s, event.MouseDown, 5, 5)
			mouse(s, event.MouseUp, 5, 5)
			if !b.HasFocus() {
				t.Fatal("press did not focus the object")
			}
			mouse(s, event.MouseDown, 100, 100)
			if got := !b.HasFocus(); got != tt.wantBlur {
				t.Errorf("blurred = %v, want %v", got, tt.wantBlur)
			}
		})
	}
}

func TestAutoBlurOnExit(t *testing.T) {
	s := newHeadless(WithInputFocus(true), WithAutoBlur(true))
	rec := newRecorder()
	b := newBox(0, 0, 10, 10)
	rec.watch("b", &b.Object)
	s.Add("b", b)

	mouse(s, event.MouseMove, 5, 5)
	mouse(s, event.MouseDown, 5, 5)
	mouse(s, event.MouseUp, 5, 5)
	if !b.HasFocus() {
		t.Fatal("press did not focus the object")
	}
	mouse(s, event.MouseMove, 50, 50)

	if b.HasFocus() {
		t.Error("object kept focus after the pointer left")
	}
	if rec.index("b:mouseout") > rec.index("b:blur") {
		t.Errorf("blur should follow mouseout: %v", rec.calls)
	}
}

func TestRemoveFocusedBlurs(t *testing.T) {
	s := newHeadless()
	rec := newRecorder()
	b := newBox(0, 0, 10, 10)
	rec.watch("b", &b.Object)
	s.Add("b", b)
	s.Focus(b)

	s.Remove("b")
	if b.HasFocus() || s.Focused() != nil {
		t.Error("removed object still focused")
	}
	if rec.count("b", event.Blur) != 1 {
		t.Errorf("blur count = %d, want 1", rec.count("b", event.Blur))
	}

	// Keys no longer reach it.
	rec.reset()
	s.Dispatch(event.KeyEvent(event.KeyDown, event.KeyEscape, 0, 0))
	if len(rec.calls) != 0 {
		t.Errorf("calls after removal = %v, want none", rec.calls)
	}
}

func TestBlurIgnoresOtherSurface(t *testing.T) {
	s1, s2 := newHeadless(), newHeadless()
	b := newBox(0, 0, 10, 10)
	s1.Add("b", b)
	s2.Add("b", b)

	s1.Focus(b)
	s2.Blur(b)
	if !b.HasFocus() {
		t.Error("Blur on a surface that does not own focus took it away")
	}

	// Focusing on the second surface moves ownership.
	s2.Focus(b)
	if s1.Focused() != nil || s2.Focused() != Drawable(b) {
		t.Errorf("Focused s1=%v s2=%v, want nil and b", s1.Focused(), s2.Focused())
	}
}
