package torch

import "github.com/gogpu/torch/event"

// SetInputFocus tells the surface whether it has keyboard focus on the
// host. Losing it blurs the focused object.
func (s *Surface) SetInputFocus(active bool) {
	s.inputFocus = active
	if !active && s.focused != nil {
		s.Blur(s.focused)
	}
}

// HasInputFocus reports whether the surface has keyboard focus on the host.
func (s *Surface) HasInputFocus() bool {
	return s.inputFocus
}

// Focused returns the object receiving keyboard events, or nil.
func (s *Surface) Focused() Drawable {
	return s.focused
}

// Focus gives d keyboard focus. The object holding focus before is blurred
// first, so at most one object per surface has focus. d receives
// event.Focus.
func (s *Surface) Focus(d Drawable) {
	if d == nil || s.focused == d {
		return
	}
	if s.focused != nil {
		s.Blur(s.focused)
	}
	o := d.Base()
	if o.focusOwner != nil && o.focusOwner != s {
		o.focusOwner.Blur(d)
	}
	o.focused = true
	o.focusOwner = s
	s.focused = d
	s.emit(d, event.Focus, 0, 0, nil, 0)
	s.RequestRedraw()
}

// Blur takes keyboard focus away from d, which receives event.Blur.
// It does nothing if d does not hold focus on s.
func (s *Surface) Blur(d Drawable) {
	if d == nil {
		return
	}
	o := d.Base()
	if !o.focused || o.focusOwner != s {
		return
	}
	o.focused = false
	o.focusOwner = nil
	if s.focused == d {
		s.focused = nil
	}
	s.emit(d, event.Blur, 0, 0, nil, 0)
	s.RequestRedraw()
}

// autoFocus focuses d after a press if the surface has input focus.
func (s *Surface) autoFocus(d Drawable) {
	if s.inputFocus {
		s.Focus(d)
	}
}

// autoBlur blurs d when the pointer leaves it, if enabled.
func (s *Surface) autoBlur(d Drawable) {
	if s.opts.autoBlur {
		s.Blur(d)
	}
}

// dispatchKey delivers key events to the focused object only.
func (s *Surface) dispatchKey(ev *event.Event) {
	d := s.focused
	if d == nil {
		Logger().Debug("torch: key event with no focused object", "kind", ev.Kind)
		return
	}
	s.emit(d, ev.Kind, 0, 0, ev, 0)
}
