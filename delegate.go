package torch

import (
	"github.com/gogpu/torch/event"
)

// mouseState is the per-surface half of click synthesis. Positions are in
// page space so they can be re-mapped after the transform changes.
type mouseState struct {
	page     Point
	hasPage  bool
	press    Point
	button   event.Button
	down     bool
	canClick bool
}

// container is implemented by drawables that host their own children and
// re-run delegation against them in their own coordinate space.
type container interface {
	forwardMouse(s *Surface, x, y float64, ev *event.Event, hit bool)
	forwardTouch(s *Surface, x, y float64, ev *event.Event, id event.TouchID, ts *touchState, hit bool)
}

// HitTest returns the topmost object under the page position, or nil.
func (s *Surface) HitTest(pageX, pageY float64) Drawable {
	p, err := s.ToLocal(pageX, pageY)
	if err != nil {
		return nil
	}
	objs := s.objects.snapshot()
	for i := len(objs) - 1; i >= 0; i-- {
		if hit, ok := s.hitTest(objs[i], p.X, p.Y, nil); ok && hit {
			return objs[i]
		}
	}
	return nil
}

func (s *Surface) dispatchMouse(ev *event.Event) {
	switch ev.Kind {
	case event.Click:
		// Clicks are synthesized from down and up. A host click is never
		// delegated; it only ends touch suppression.
		s.suppressLegacy = false
		return
	case event.RightClick, event.MouseOver:
		Logger().Debug("torch: ignoring host event", "kind", ev.Kind)
		return
	case event.MouseDown, event.MouseUp:
		if s.suppressLegacy {
			Logger().Debug("torch: suppressing mouse event during touch", "kind", ev.Kind)
			return
		}
	}

	p, err := s.ToLocal(ev.PageX, ev.PageY)
	if err != nil {
		Logger().Warn("torch: cannot map pointer", "kind", ev.Kind, "err", err)
		return
	}

	m := &s.mouse
	switch ev.Kind {
	case event.MouseDown:
		m.press = p
		m.button = ev.Button
		m.down = true
		m.canClick = true
	case event.MouseMove, event.MouseUp:
		if m.canClick && m.press.beyond(p, s.opts.clickThreshold) {
			m.canClick = false
		}
	}
	if ev.Kind == event.MouseOut {
		m.hasPage = false
	} else {
		m.page = Pt(ev.PageX, ev.PageY)
		m.hasPage = true
	}

	s.delegateMouse(s.objects, p.X, p.Y, ev, false)

	if ev.Kind == event.MouseUp {
		m.down = false
		m.canClick = false
	}
}

// delegateMouse walks reg from the top. Once an object is hit, the objects
// below it see the event as a miss unless the surface passes events through.
func (s *Surface) delegateMouse(reg *Registry, x, y float64, ev *event.Event, blocked bool) {
	objs := reg.snapshot()
	for i := len(objs) - 1; i >= 0; i-- {
		if s.mouseObject(objs[i], x, y, ev, blocked) && !s.opts.passThrough {
			blocked = true
		}
	}
}

// mouseObject runs the hover/press/click state machine for one object and
// reports whether the object was hit.
func (s *Surface) mouseObject(d Drawable, x, y float64, ev *event.Event, blocked bool) bool {
	o := d.Base()
	hit := false
	if !blocked && ev.Kind != event.MouseOut {
		var ok bool
		if hit, ok = s.hitTest(d, x, y, ev); !ok {
			return false
		}
	}
	if !hit {
		if ev.Kind == event.MouseDown && o.focused && s.opts.blurOnOutsidePress {
			s.Blur(d)
		}
		if !o.hovering {
			return false
		}
		o.hovering = false
		o.pressed = false
		if !s.emit(d, event.MouseOut, x, y, ev, 0) {
			return false
		}
		s.autoBlur(d)
		if c, ok := d.(container); ok {
			c.forwardMouse(s, x, y, ev, false)
		}
		return false
	}

	wasHovering := o.hovering
	if !o.hovering {
		o.hovering = true
		if !s.emit(d, event.MouseOver, x, y, ev, 0) {
			return true
		}
	}

	switch ev.Kind {
	case event.MouseDown:
		o.pressed = true
		o.pressBtn = ev.Button
		// Only a press on an object the pointer was already over focuses it.
		if wasHovering && ev.Button != event.ButtonSecondary {
			s.autoFocus(d)
		}
	case event.MouseUp:
		clicked := o.pressed && s.mouse.canClick && o.pressBtn == ev.Button
		o.pressed = false
		if clicked {
			kind := event.Click
			if ev.Button == event.ButtonSecondary {
				kind = event.RightClick
			}
			if !s.emit(d, kind, x, y, ev, 0) {
				return true
			}
		}
	}

	if !ev.Kind.Synthetic() {
		if !s.emit(d, ev.Kind, x, y, ev, 0) {
			return true
		}
	}
	if c, ok := d.(container); ok {
		c.forwardMouse(s, x, y, ev, true)
	}
	return true
}

// delegateDrawn replays the last known pointer and touch positions.
func (s *Surface) delegateDrawn() {
	if s.mouse.hasPage {
		ev := event.Mouse(event.Drawn, s.mouse.page.X, s.mouse.page.Y, s.mouse.button)
		if p, err := s.ToLocal(ev.PageX, ev.PageY); err == nil {
			s.delegateMouse(s.objects, p.X, p.Y, &ev, false)
		}
	}
	for _, id := range s.liveTouches() {
		ts := s.touches[id]
		ev := event.TouchEvent(event.Drawn, event.Touch{ID: id, PageX: ts.page.X, PageY: ts.page.Y})
		if p, err := s.ToLocal(ts.page.X, ts.page.Y); err == nil {
			s.delegateTouch(s.objects, p.X, p.Y, &ev, id, ts, false)
		}
	}
}

// hitTest calls d.HitDetect, recovering a panic. ok is false when the
// hit-test panicked and the object must be skipped.
func (s *Surface) hitTest(d Drawable, x, y float64, ev *event.Event) (hit, ok bool) {
	depth := s.stack.Depth()
	defer func() {
		if r := recover(); r != nil {
			s.unwind(depth)
			kind := event.Unknown
			if ev != nil {
				kind = ev.Kind
			}
			logPanic(PhaseHitTest, kind, r)
			hit, ok = false, false
		}
	}()
	return d.HitDetect(x, y, s, ev), true
}

// emit calls d's handler for kind, if any. It returns false when the
// handler panicked; the caller then skips d for the rest of the pass.
func (s *Surface) emit(d Drawable, kind event.Kind, x, y float64, raw *event.Event, touch event.TouchID) (ok bool) {
	h := d.Base().handler(kind)
	if h == nil {
		return true
	}
	ev := raw
	if raw == nil || raw.Kind != kind {
		cp := event.Event{}
		if raw != nil {
			cp = *raw
		}
		cp.Kind = kind
		ev = &cp
	}

	depth := s.stack.Depth()
	defer func() {
		if r := recover(); r != nil {
			s.unwind(depth)
			logPanic(PhaseHandler, kind, r)
			ok = false
		}
	}()
	h(Input{X: x, Y: y, Event: ev, Surface: s, Touch: touch, Target: d})
	return true
}
