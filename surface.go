package torch

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/torch/event"
)

// Surface makes the drawables painted on a gg.Context interactive.
//
// A Surface owns a TransformStack that shadows the context's own transform,
// so the transform used for painting can always be read back and inverted
// to map pointer positions into drawing space. Every transform call goes
// through the Surface and is applied to both.
//
// A Surface created with a nil context is headless: it tracks transforms
// and delegates events but draws nothing.
//
// Surface is not safe for concurrent use. Dispatch, Draw and Tick are
// expected to run on the host's event loop.
type Surface struct {
	dc      *gg.Context
	stack   *TransformStack
	objects *Registry
	opts    surfaceOptions

	backingW, backingH int
	displayW, displayH int
	density            float64

	redraw     bool
	inputFocus bool
	focused    Drawable

	mouse          mouseState
	suppressLegacy bool
	touches        map[event.TouchID]*touchState

	hooks [event.NumKinds][]func(*event.Event)
}

// NewSurface wraps dc. Pass nil for a headless surface.
func NewSurface(dc *gg.Context, opts ...SurfaceOption) *Surface {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		dc:         dc,
		stack:      NewTransformStack(),
		opts:       o,
		density:    1,
		redraw:     true,
		inputFocus: o.inputFocus,
		touches:    make(map[event.TouchID]*touchState),
	}
	s.objects = NewRegistry(s)

	s.backingW, s.backingH = o.backingW, o.backingH
	if dc != nil {
		s.backingW, s.backingH = dc.Width(), dc.Height()
		dc.Identity()
	}
	s.displayW, s.displayH = o.displayW, o.displayH
	if s.displayW <= 0 || s.displayH <= 0 {
		s.displayW, s.displayH = s.backingW, s.backingH
	}
	return s
}

// DC returns the wrapped context, or nil for a headless surface.
func (s *Surface) DC() *gg.Context {
	return s.dc
}

// Size returns the backing-store size in pixels.
func (s *Surface) Size() (w, h int) {
	return s.backingW, s.backingH
}

// DisplaySize returns the size the surface is displayed at, in page units.
func (s *Surface) DisplaySize() (w, h int) {
	return s.displayW, s.displayH
}

// SetDisplaySize changes the size the surface is displayed at.
func (s *Surface) SetDisplaySize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.displayW, s.displayH = w, h
}

// SetBackingSize records a new backing-store size after the host resized
// the context. The display size follows it at the current pixel density.
func (s *Surface) SetBackingSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.backingW, s.backingH = w, h
	s.displayW = int(math.Round(float64(w) / s.density))
	s.displayH = int(math.Round(float64(h) / s.density))
	s.RequestRedraw()
}

// SetPixelDensity configures the surface for a display with density device
// pixels per page unit. The display size becomes the backing size divided by
// density and the transform is reset to a density scale, so drawing
// coordinates are display units. Non-positive densities are ignored.
func (s *Surface) SetPixelDensity(density float64) {
	if density <= 0 || math.IsInf(density, 0) || math.IsNaN(density) {
		return
	}
	s.density = density
	s.displayW = int(math.Round(float64(s.backingW) / density))
	s.displayH = int(math.Round(float64(s.backingH) / density))
	s.ResetTransform()
	s.Scale(density, density)
	s.RequestRedraw()
}

// PixelDensity returns the density set by SetPixelDensity, 1 by default.
func (s *Surface) PixelDensity() float64 {
	return s.density
}

// ClickThreshold returns the distance a press may travel and still click.
func (s *Surface) ClickThreshold() float64 {
	return s.opts.clickThreshold
}

// Transform stack. Each call is mirrored onto the context.

// CurrentTransform returns the transform currently applied to drawing.
func (s *Surface) CurrentTransform() Matrix {
	return s.stack.Current()
}

// Save pushes the current transform and context state.
func (s *Surface) Save() {
	s.stack.Save()
	if s.dc != nil {
		s.dc.Push()
	}
}

// Restore pops the last saved state. With nothing saved the transform is
// reset to the identity.
func (s *Surface) Restore() {
	saved := s.stack.Depth() > 0
	s.stack.Restore()
	if s.dc == nil {
		return
	}
	if saved {
		s.dc.Pop()
	}
	s.dc.SetTransform(s.stack.Current().GG())
}

// Translate moves the origin by (x, y).
func (s *Surface) Translate(x, y float64) {
	s.stack.Translate(x, y)
	if s.dc != nil {
		s.dc.Translate(x, y)
	}
}

// Scale scales drawing by (x, y).
func (s *Surface) Scale(x, y float64) {
	s.stack.Scale(x, y)
	if s.dc != nil {
		s.dc.Scale(x, y)
	}
}

// Rotate rotates drawing by angle radians about the current origin.
func (s *Surface) Rotate(angle float64) {
	s.stack.Rotate(angle)
	if s.dc != nil {
		s.dc.Rotate(angle)
	}
}

// Transform multiplies the current transform by m.
func (s *Surface) Transform(m Matrix) {
	s.stack.Transform(m)
	if s.dc != nil {
		s.dc.Transform(m.GG())
	}
}

// SetTransform replaces the current transform.
func (s *Surface) SetTransform(m Matrix) {
	s.stack.SetTransform(m)
	if s.dc != nil {
		s.dc.SetTransform(m.GG())
	}
}

// ResetTransform replaces the current transform with the identity.
func (s *Surface) ResetTransform() {
	s.stack.ResetTransform()
	if s.dc != nil {
		s.dc.Identity()
	}
}

// unwind restores until depth states remain saved. Used after a consumer
// callback panics with the stack pushed.
func (s *Surface) unwind(depth int) {
	for s.stack.Depth() > depth {
		s.Restore()
	}
}

// Registry passthrough.

// Objects returns the surface's registry.
func (s *Surface) Objects() *Registry {
	return s.objects
}

// Add registers d under key on top of the existing objects.
func (s *Surface) Add(key Key, d Drawable) {
	s.objects.Add(key, d)
	s.RequestRedraw()
}

// Remove unregisters the first object added under key.
func (s *Surface) Remove(key Key) bool {
	if !s.objects.Remove(key) {
		return false
	}
	s.RequestRedraw()
	return true
}

// ByKey returns the object most recently added under key, or nil.
func (s *Surface) ByKey(key Key) Drawable {
	return s.objects.ByKey(key)
}

// At returns the object at paint position i.
func (s *Surface) At(i int) Drawable {
	return s.objects.At(i)
}

// Len returns the number of registered objects.
func (s *Surface) Len() int {
	return s.objects.Len()
}

// Redraw scheduling.

// RequestRedraw marks the surface as needing a repaint.
func (s *Surface) RequestRedraw() {
	s.redraw = true
}

// RedrawNeeded reports whether anything requested a repaint since the last
// Draw.
func (s *Surface) RedrawNeeded() bool {
	return s.redraw
}

// Draw paints every object in order, then re-delegates the last pointer
// and touch positions as event.Drawn so hover state follows objects that
// moved under a stationary pointer. A panicking Draw is logged and the
// remaining objects are still painted.
func (s *Surface) Draw() {
	s.redraw = false
	for _, d := range s.objects.snapshot() {
		s.drawObject(d)
	}
	s.delegateDrawn()
}

func (s *Surface) drawObject(d Drawable) {
	depth := s.stack.Depth()
	defer func() {
		if r := recover(); r != nil {
			s.unwind(depth)
			logPanic(PhaseDraw, event.Unknown, r)
		}
	}()
	d.Draw(s)
}

// Tick advances every object that implements Ticker.
func (s *Surface) Tick() {
	for _, d := range s.objects.snapshot() {
		tickObject(d)
	}
}

// tickObject ticks d, recovering a panic so callers can go on to the next
// object.
func tickObject(d Drawable) {
	defer func() {
		if r := recover(); r != nil {
			logPanic(PhaseTick, event.Unknown, r)
		}
	}()
	if t, ok := d.(Ticker); ok {
		t.Tick()
		return
	}
	d.Base().Tick()
}

// Hook registers fn to run after every event of kind passed to Dispatch
// has been delegated to the objects. Hooks see only events from the host:
// a Click synthesized for an object never reaches them, while a Click or
// Focus sent by the host does.
func (s *Surface) Hook(kind event.Kind, fn func(ev *event.Event)) {
	if kind >= event.NumKinds || fn == nil {
		return
	}
	s.hooks[kind] = append(s.hooks[kind], fn)
}

func (s *Surface) runHooks(ev *event.Event) {
	if ev.Kind >= event.NumKinds {
		return
	}
	for _, fn := range s.hooks[ev.Kind] {
		s.runHook(fn, ev)
	}
}

func (s *Surface) runHook(fn func(*event.Event), ev *event.Event) {
	defer func() {
		if r := recover(); r != nil {
			logPanic(PhaseHook, ev.Kind, r)
		}
	}()
	fn(ev)
}

// Dispatch delegates a raw host event to the registered objects and then
// runs the surface hooks for its kind.
func (s *Surface) Dispatch(ev event.Event) {
	switch {
	case ev.Kind.IsMouse():
		s.dispatchMouse(&ev)
	case ev.Kind.IsTouch():
		s.dispatchTouch(&ev)
	case ev.Kind.IsKey():
		s.dispatchKey(&ev)
	case ev.Kind == event.Focus:
		s.SetInputFocus(true)
	case ev.Kind == event.Blur:
		s.SetInputFocus(false)
	default:
		Logger().Debug("torch: ignoring event", "kind", ev.Kind)
	}
	s.runHooks(&ev)
}

func logPanic(phase Phase, kind event.Kind, v any) {
	err := &HandlerError{Phase: phase, Kind: kind, Value: v}
	Logger().Error("torch: recovered panic", "phase", phase.String(), "kind", kind.String(), "err", err)
}
