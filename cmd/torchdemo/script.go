package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// Script is a list of input steps replayed against a surface.
//
//	[[events]]
//	kind = "mousedown"
//	x = 100
//	y = 60
//
//	[[events]]
//	kind = "tick"
//	frames = 10
type Script struct {
	Events []Step `toml:"events"`

	// Background clears the context before each repaint.
	Background gg.RGBA `toml:"-"`
}

// Step is one scripted input. Kind is any event kind name accepted by
// event.ParseKind, or one of the script commands:
//
//	tick   advance animations by Frames frames (default 1)
//	draw   repaint now
//	type   send KeyDown, KeyPress and KeyUp for every rune of Text
type Step struct {
	Kind   string  `toml:"kind"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Button string  `toml:"button"`
	ID     int     `toml:"id"`
	Text   string  `toml:"text"`
	Frames int     `toml:"frames"`
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	var sc Script
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return &sc, checkScript(&sc, md)
}

// DecodeScript parses script text.
func DecodeScript(data string) (*Script, error) {
	var sc Script
	md, err := toml.Decode(data, &sc)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &sc, checkScript(&sc, md)
}

func checkScript(sc *Script, md toml.MetaData) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("script: unknown key %q", keys[0].String())
	}
	for i, st := range sc.Events {
		if _, err := st.events(); err != nil {
			return fmt.Errorf("script: step %d: %w", i+1, err)
		}
	}
	return nil
}

// Play dispatches every step to s, repainting whenever a step left the
// surface in need of a redraw.
func (sc *Script) Play(s *torch.Surface) error {
	sc.repaint(s)
	for i, st := range sc.Events {
		switch strings.ToLower(st.Kind) {
		case "tick":
			for range max(st.Frames, 1) {
				s.Tick()
			}
			s.RequestRedraw()
		case "draw":
			s.RequestRedraw()
		default:
			evs, err := st.events()
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			for _, ev := range evs {
				s.Dispatch(ev)
			}
		}
		sc.repaint(s)
	}
	return nil
}

func (sc *Script) repaint(s *torch.Surface) {
	if !s.RedrawNeeded() {
		return
	}
	if dc := s.DC(); dc != nil {
		dc.ClearWithColor(sc.Background)
	}
	s.Draw()
}

// events converts the step into surface events. Commands yield none.
func (st Step) events() ([]event.Event, error) {
	switch strings.ToLower(st.Kind) {
	case "tick", "draw":
		return nil, nil
	case "type":
		if st.Text == "" {
			return nil, fmt.Errorf("type needs text")
		}
		var out []event.Event
		for _, r := range st.Text {
			k := event.KeyRune
			if r == ' ' {
				k = event.KeySpace
			}
			out = append(out,
				event.KeyEvent(event.KeyDown, k, r, 0),
				event.KeyEvent(event.KeyPress, k, r, 0),
				event.KeyEvent(event.KeyUp, k, r, 0),
			)
		}
		return out, nil
	}

	kind, err := event.ParseKind(st.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case event.MouseOver, event.RightClick, event.TouchOver, event.TouchOut, event.Tap, event.Drawn:
		return nil, fmt.Errorf("%s is synthesized by the surface", kind)
	}
	switch {
	case kind.IsMouse():
		b, err := parseButton(st.Button)
		if err != nil {
			return nil, err
		}
		return []event.Event{event.Mouse(kind, st.X, st.Y, b)}, nil
	case kind.IsTouch():
		t := event.Touch{ID: event.TouchID(st.ID), PageX: st.X, PageY: st.Y}
		return []event.Event{event.TouchEvent(kind, t)}, nil
	case kind.IsKey():
		var r rune
		if st.Text != "" {
			r = []rune(st.Text)[0]
		}
		return []event.Event{event.KeyEvent(kind, event.KeyRune, r, 0)}, nil
	case kind == event.Focus || kind == event.Blur:
		return []event.Event{{Kind: kind}}, nil
	}
	return nil, fmt.Errorf("%s cannot be scripted", kind)
}

func parseButton(name string) (event.Button, error) {
	switch strings.ToLower(name) {
	case "", "primary", "left":
		return event.ButtonPrimary, nil
	case "middle":
		return event.ButtonMiddle, nil
	case "secondary", "right":
		return event.ButtonSecondary, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}
