// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tcellevent feeds tcell terminal events to a torch.Surface.
//
// tcell reports which buttons are held rather than presses and releases,
// and it reports cells rather than pixels. A Translator keeps the previous
// button state to recover MouseDown and MouseUp, and maps each cell to the
// page position of its center.
package tcellevent

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// buttons lists the tracked tcell buttons and their torch equivalents.
var buttons = []struct {
	mask tcell.ButtonMask
	b    event.Button
}{
	{tcell.Button1, event.ButtonPrimary},
	{tcell.Button3, event.ButtonMiddle},
	{tcell.Button2, event.ButtonSecondary},
}

// Translator converts tcell events. It is stateful; use one per screen.
type Translator struct {
	cellW, cellH float64

	held    tcell.ButtonMask
	lastX   int
	lastY   int
	hasLast bool
}

// NewTranslator returns a Translator for cells of cellW x cellH page units.
// Non-positive sizes are treated as 1.
func NewTranslator(cellW, cellH float64) *Translator {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Translator{cellW: cellW, cellH: cellH}
}

// CellToPage returns the page position of the center of cell (col, row).
func (t *Translator) CellToPage(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * t.cellW, (float64(row) + 0.5) * t.cellH
}

// Translate converts ev. Events without an equivalent yield nil.
func (t *Translator) Translate(ev tcell.Event) []event.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventKey:
		return convertKey(ev)
	case *tcell.EventFocus:
		if ev.Focused {
			return []event.Event{{Kind: event.Focus}}
		}
		return []event.Event{{Kind: event.Blur}}
	}
	return nil
}

// Dispatch translates ev and delivers the result to s. It reports whether
// anything was delivered.
func (t *Translator) Dispatch(s *torch.Surface, ev tcell.Event) bool {
	evs := t.Translate(ev)
	for _, e := range evs {
		s.Dispatch(e)
	}
	return len(evs) > 0
}

// mouse emits a move when the pointer changed cell, then one event per
// button whose state changed. Wheel bits are ignored.
func (t *Translator) mouse(ev *tcell.EventMouse) []event.Event {
	col, row := ev.Position()
	x, y := t.CellToPage(col, row)
	now := ev.Buttons()

	var out []event.Event
	moved := !t.hasLast || col != t.lastX || row != t.lastY
	t.lastX, t.lastY, t.hasLast = col, row, true

	for _, b := range buttons {
		was, is := t.held&b.mask != 0, now&b.mask != 0
		switch {
		case is && !was:
			if moved {
				out = append(out, event.Mouse(event.MouseMove, x, y, b.b))
				moved = false
			}
			out = append(out, event.Mouse(event.MouseDown, x, y, b.b))
		case was && !is:
			if moved {
				out = append(out, event.Mouse(event.MouseMove, x, y, b.b))
				moved = false
			}
			out = append(out, event.Mouse(event.MouseUp, x, y, b.b))
		}
	}
	t.held = now & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	if moved {
		out = append(out, event.Mouse(event.MouseMove, x, y, event.ButtonPrimary))
	}
	return out
}

var keyNames = map[tcell.Key]event.Key{
	tcell.KeyEnter:      event.KeyEnter,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyEsc:        event.KeyEscape,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyDelete:     event.KeyDelete,
	tcell.KeyLeft:       event.KeyArrowLeft,
	tcell.KeyRight:      event.KeyArrowRight,
	tcell.KeyUp:         event.KeyArrowUp,
	tcell.KeyDown:       event.KeyArrowDown,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPageUp,
	tcell.KeyPgDn:       event.KeyPageDown,
}

// convertKey maps a key event. Terminals do not report releases, so every
// key yields KeyDown and KeyUp, with a KeyPress between them for keys that
// type a character.
func convertKey(ev *tcell.EventKey) []event.Event {
	mods := modifiers(ev.Modifiers())
	var (
		k     event.Key
		r     rune
		typed bool
	)
	switch named, ok := keyNames[ev.Key()]; {
	case ok:
		k = named
	case ev.Key() == tcell.KeyRune:
		k, r, typed = event.KeyRune, ev.Rune(), true
		if r == ' ' {
			k = event.KeySpace
		}
	default:
		k = event.KeyUnknown
	}

	out := []event.Event{event.KeyEvent(event.KeyDown, k, r, mods)}
	if typed {
		out = append(out, event.KeyEvent(event.KeyPress, k, r, mods))
	}
	return append(out, event.KeyEvent(event.KeyUp, k, r, mods))
}

func modifiers(m tcell.ModMask) event.Modifiers {
	var out event.Modifiers
	if m&tcell.ModShift != 0 {
		out |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= event.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= event.ModMeta
	}
	return out
}
