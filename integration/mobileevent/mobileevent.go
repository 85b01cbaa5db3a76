// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mobileevent feeds golang.org/x/mobile events, as delivered by
// x/mobile apps and shiny windows, to a torch.Surface.
//
//	d := mobileevent.New(surface)
//	for {
//	    e := w.NextEvent()
//	    if !d.Handle(e) {
//	        // paint.Event, lifecycle death and so on
//	    }
//	}
//
// Mouse and touch positions are window pixels. The window size from
// size.Event becomes the surface's display size, so a surface whose backing
// store differs from the window still maps pointers correctly.
package mobileevent

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// Dispatcher delivers x/mobile events to a surface.
type Dispatcher struct {
	surface *torch.Surface
}

// New returns a Dispatcher for s.
func New(s *torch.Surface) *Dispatcher {
	return &Dispatcher{surface: s}
}

// Handle delivers e and reports whether it was one of the event types the
// surface consumes.
func (d *Dispatcher) Handle(e any) bool {
	if sz, ok := e.(size.Event); ok {
		d.surface.SetDisplaySize(sz.WidthPx, sz.HeightPx)
		return true
	}
	evs, ok := Convert(e)
	for _, ev := range evs {
		d.surface.Dispatch(ev)
	}
	return ok
}

// Convert translates one x/mobile event. ok is false for event types that
// carry no input; a known type may still convert to no events, such as a
// scroll-wheel step.
func Convert(e any) (evs []event.Event, ok bool) {
	switch e := e.(type) {
	case mouse.Event:
		if ev, ok := convertMouse(e); ok {
			evs = append(evs, ev)
		}
	case touch.Event:
		evs = append(evs, convertTouch(e))
	case key.Event:
		evs = convertKey(e)
	case lifecycle.Event:
		switch e.Crosses(lifecycle.StageFocused) {
		case lifecycle.CrossOn:
			evs = append(evs, event.Event{Kind: event.Focus})
		case lifecycle.CrossOff:
			evs = append(evs, event.Event{Kind: event.Blur})
		}
	default:
		return nil, false
	}
	return evs, true
}

func convertMouse(e mouse.Event) (event.Event, bool) {
	var kind event.Kind
	switch e.Direction {
	case mouse.DirPress:
		kind = event.MouseDown
	case mouse.DirRelease:
		kind = event.MouseUp
	case mouse.DirNone:
		kind = event.MouseMove
	default:
		torch.Logger().Debug("mobileevent: ignoring mouse event", "button", e.Button, "direction", e.Direction)
		return event.Event{}, false
	}
	if e.Button.IsWheel() {
		return event.Event{}, false
	}
	return event.Mouse(kind, float64(e.X), float64(e.Y), button(e.Button)), true
}

func button(b mouse.Button) event.Button {
	switch b {
	case mouse.ButtonMiddle:
		return event.ButtonMiddle
	case mouse.ButtonRight:
		return event.ButtonSecondary
	}
	return event.ButtonPrimary
}

func convertTouch(e touch.Event) event.Event {
	kind := event.TouchMove
	switch e.Type {
	case touch.TypeBegin:
		kind = event.TouchStart
	case touch.TypeEnd:
		kind = event.TouchEnd
	}
	return event.TouchEvent(kind, event.Touch{
		ID:    event.TouchID(e.Sequence),
		PageX: float64(e.X),
		PageY: float64(e.Y),
	})
}

var keyCodes = map[key.Code]event.Key{
	key.CodeReturnEnter:     event.KeyEnter,
	key.CodeKeypadEnter:     event.KeyEnter,
	key.CodeTab:             event.KeyTab,
	key.CodeEscape:          event.KeyEscape,
	key.CodeDeleteBackspace: event.KeyBackspace,
	key.CodeDeleteForward:   event.KeyDelete,
	key.CodeSpacebar:        event.KeySpace,
	key.CodeLeftArrow:       event.KeyArrowLeft,
	key.CodeRightArrow:      event.KeyArrowRight,
	key.CodeUpArrow:         event.KeyArrowUp,
	key.CodeDownArrow:       event.KeyArrowDown,
	key.CodeHome:            event.KeyHome,
	key.CodeEnd:             event.KeyEnd,
	key.CodePageUp:          event.KeyPageUp,
	key.CodePageDown:        event.KeyPageDown,
}

// convertKey maps a key event. A press of a key producing a character is
// followed by a KeyPress; x/mobile's DirNone, a press and release in one,
// becomes all three kinds.
func convertKey(e key.Event) []event.Event {
	k, named := keyCodes[e.Code]
	r := e.Rune
	switch {
	case named:
	case r >= 0:
		k = event.KeyRune
	default:
		k = event.KeyUnknown
	}
	if r < 0 {
		r = 0
	}
	mods := modifiers(e.Modifiers)

	down := event.KeyEvent(event.KeyDown, k, r, mods)
	press := event.KeyEvent(event.KeyPress, k, r, mods)
	up := event.KeyEvent(event.KeyUp, k, r, mods)
	typed := r != 0 && (k == event.KeyRune || k == event.KeySpace)

	switch e.Direction {
	case key.DirPress:
		if typed {
			return []event.Event{down, press}
		}
		return []event.Event{down}
	case key.DirRelease:
		return []event.Event{up}
	}
	if typed {
		return []event.Event{down, press, up}
	}
	return []event.Event{down, up}
}

func modifiers(m key.Modifiers) event.Modifiers {
	var out event.Modifiers
	if m&key.ModShift != 0 {
		out |= event.ModShift
	}
	if m&key.ModControl != 0 {
		out |= event.ModCtrl
	}
	if m&key.ModAlt != 0 {
		out |= event.ModAlt
	}
	if m&key.ModMeta != 0 {
		out |= event.ModMeta
	}
	return out
}
