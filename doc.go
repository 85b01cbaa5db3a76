// Package torch makes shapes drawn on a gg.Context behave like interactive
// elements: they receive pointer, touch and keyboard events, hover and
// press state is tracked per object, and clicks and taps are synthesized
// from raw down and up events.
//
// # Quick Start
//
//	dc := gg.NewContext(400, 300)
//	s := torch.NewSurface(dc, torch.WithInputFocus(true))
//
//	dot := shape.NewCircle(100, 100, 20, shape.Filled(gg.RGBA{R: 1, A: 1}))
//	dot.On(event.Click, func(in torch.Input) {
//	    fmt.Println("clicked at", in.X, in.Y)
//	})
//	s.Add("dot", dot)
//
//	// From the host's event loop:
//	s.Dispatch(event.Mouse(event.MouseDown, 100, 100, event.ButtonPrimary))
//	s.Dispatch(event.Mouse(event.MouseUp, 100, 100, event.ButtonPrimary))
//
//	// From the host's frame callback:
//	if s.RedrawNeeded() {
//	    dc.Clear()
//	    s.Draw()
//	}
//
// # Coordinates
//
// Host events carry page coordinates. A Surface maps them into drawing
// space by subtracting its page offset, scaling by the backing-to-display
// pixel ratio and applying the inverse of the current transform. The
// current transform is tracked by the Surface's TransformStack, which
// mirrors every Save, Restore and transform call onto the gg.Context.
//
// Transforms follow the canvas convention: Matrix{A, B, C, D, E, F} maps
// (x, y) to (A*x + C*y + E, B*x + D*y + F), and m.Multiply(n) applies n
// first.
//
// # Delegation
//
// Objects are hit-tested from the top of the paint order down. By default
// the first object hit takes the event and the objects below see a miss;
// WithPassThrough delivers to every object hit. Groups apply their own
// transform and run the same delegation against their children.
//
// Keyboard events go only to the object holding focus. At most one object
// per surface holds focus.
//
// A panic in a hit-test, handler, draw or tick is recovered, logged as a
// *HandlerError, and only the object that raised it is skipped.
//
// # Redraw
//
// Redraw is requested, never automatic. Objects call RequestRedraw, which
// bubbles up to the surface; the host checks RedrawNeeded and calls Draw.
package torch
