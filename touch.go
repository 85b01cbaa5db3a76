package torch

import (
	"slices"

	"github.com/gogpu/torch/event"
)

// touchState tracks one live touch on a surface.
type touchState struct {
	press  Point
	last   Point
	page   Point
	canTap bool
}

func (s *Surface) liveTouches() []event.TouchID {
	ids := make([]event.TouchID, 0, len(s.touches))
	for id := range s.touches {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Surface) dispatchTouch(ev *event.Event) {
	switch ev.Kind {
	case event.TouchStart:
		s.suppressLegacy = false
	case event.TouchMove:
		s.suppressLegacy = true
	case event.Tap, event.TouchOver, event.TouchOut:
		Logger().Debug("torch: ignoring host event", "kind", ev.Kind)
		return
	}

	for _, t := range ev.Touches {
		p, err := s.ToLocal(t.PageX, t.PageY)
		if err != nil {
			Logger().Warn("torch: cannot map touch", "kind", ev.Kind, "touch", t.ID, "err", err)
			continue
		}

		ts := s.touches[t.ID]
		switch {
		case ev.Kind == event.TouchStart:
			ts = &touchState{press: p, canTap: true}
			s.touches[t.ID] = ts
		case ts == nil:
			// A touch that started elsewhere never taps.
			ts = &touchState{press: p}
			if ev.Kind == event.TouchMove {
				s.touches[t.ID] = ts
			}
		}
		ts.last = p
		ts.page = Pt(t.PageX, t.PageY)
		if ev.Kind == event.TouchMove && ts.canTap && ts.press.beyond(p, s.opts.clickThreshold) {
			ts.canTap = false
		}
		if ev.Kind == event.TouchEnd || ev.Kind == event.TouchCancel {
			delete(s.touches, t.ID)
		}

		s.delegateTouch(s.objects, p.X, p.Y, ev, t.ID, ts, false)
	}
}

func (s *Surface) delegateTouch(reg *Registry, x, y float64, ev *event.Event, id event.TouchID, ts *touchState, blocked bool) {
	objs := reg.snapshot()
	for i := len(objs) - 1; i >= 0; i-- {
		if s.touchObject(objs[i], x, y, ev, id, ts, blocked) && !s.opts.passThrough {
			blocked = true
		}
	}
}

// touchObject runs the per-touch state machine for one object and reports
// whether the object was hit.
func (s *Surface) touchObject(d Drawable, x, y float64, ev *event.Event, id event.TouchID, ts *touchState, blocked bool) bool {
	o := d.Base()
	s.pruneTouches(o, id)

	ending := ev.Kind == event.TouchEnd || ev.Kind == event.TouchCancel
	hit := false
	if !blocked {
		var ok bool
		if hit, ok = s.hitTest(d, x, y, ev); !ok {
			return false
		}
	}

	if !hit {
		if ev.Kind == event.TouchStart && o.focused && s.opts.blurOnOutsidePress {
			s.Blur(d)
		}
		if !o.tracks(id) {
			return false
		}
		o.releaseTouch(id)
		s.autoBlur(d)
		if len(o.touches) == 0 && o.touchOver {
			o.touchOver = false
			if !s.emit(d, event.TouchOut, x, y, ev, id) {
				return false
			}
		}
		if c, ok := d.(container); ok {
			c.forwardTouch(s, x, y, ev, id, ts, false)
		}
		return false
	}

	if !o.tracks(id) {
		if ending {
			return true
		}
		if len(o.touches) >= o.MaxTouches() {
			Logger().Debug("torch: touch beyond object cap ignored", "touch", id, "max", o.MaxTouches())
			return true
		}
		o.trackTouch(id, ev.Kind == event.TouchStart)
	}

	if !o.touchOver {
		o.touchOver = true
		if !s.emit(d, event.TouchOver, x, y, ev, id) {
			return true
		}
	}

	switch ev.Kind {
	case event.TouchStart:
		s.autoFocus(d)
	case event.TouchEnd:
		if ts.canTap && o.pressedBy(id) && !s.emit(d, event.Tap, x, y, ev, id) {
			return true
		}
	}

	if !ev.Kind.Synthetic() && !s.emit(d, ev.Kind, x, y, ev, id) {
		return true
	}
	if c, ok := d.(container); ok {
		c.forwardTouch(s, x, y, ev, id, ts, true)
	}

	if ending {
		o.releaseTouch(id)
		if len(o.touches) == 0 {
			o.touchOver = false
			s.emit(d, event.TouchOut, x, y, ev, id)
		}
	}
	return true
}

// pruneTouches forgets touches the surface no longer knows about, other
// than the one being delegated.
func (s *Surface) pruneTouches(o *Object, current event.TouchID) {
	for id := range o.touches {
		if id == current {
			continue
		}
		if _, live := s.touches[id]; !live {
			delete(o.touches, id)
		}
	}
	if len(o.touches) == 0 {
		o.touchOver = false
	}
}
