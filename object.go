package torch

import (
	"slices"

	"github.com/gogpu/torch/event"
)

// Drawable is anything a Surface or Group can paint and deliver events to.
//
// Implementations embed Object and return it from Base, which gives them
// the handler table, interaction state and animation bindings:
//
//	type Dot struct {
//	    torch.Object
//	    X, Y float64
//	}
//
//	func (d *Dot) Base() *torch.Object { return &d.Object }
type Drawable interface {
	// Draw paints the object using the surface's current transform.
	Draw(s *Surface)

	// HitDetect reports whether the surface-local point (x, y) lies on the
	// object. ev is the event being delegated, or nil for plain queries.
	HitDetect(x, y float64, s *Surface, ev *event.Event) bool

	// Base returns the embedded Object.
	Base() *Object
}

// Ticker is implemented by drawables that advance per frame.
type Ticker interface {
	Tick()
}

// AddedHook is implemented by drawables that want to know when they are
// added to a registry.
type AddedHook interface {
	OnAdded(r *Registry, key Key)
}

// Redrawer receives redraw requests.
type Redrawer interface {
	RequestRedraw()
}

// Animation is a frame-stepped value source. Tick computes the value of
// the next frame and Get returns it.
type Animation interface {
	Get() float64
	Tick()
	Done() bool
}

// Input is passed to event handlers.
type Input struct {
	// X and Y are in the coordinate space of the registry holding Target.
	X, Y float64

	// Event is the event being delegated. For synthesized kinds it is a
	// copy of the raw event with Kind replaced.
	Event *event.Event

	Surface *Surface

	// Touch is the identifier of the touch being delegated, if any.
	Touch event.TouchID

	Target Drawable
}

// Handler responds to one kind of event.
type Handler func(in Input)

// DefaultMaxTouches is the number of touches an object tracks at once
// unless SetMaxTouches says otherwise.
const DefaultMaxTouches = 1

type binding struct {
	anim   Animation
	target *float64
	fn     func(float64) float64
}

// Object carries the per-object state the delegator needs. It is meant to
// be embedded in a Drawable. The zero value is ready to use.
type Object struct {
	handlers [event.NumKinds]Handler

	hovering   bool
	touchOver  bool
	focused    bool
	pressed    bool
	pressBtn   event.Button
	touches    map[event.TouchID]bool // true when the touch started on the object
	maxTouches int

	// focusOwner is the surface that focused this object.
	focusOwner *Surface

	listeners     []Redrawer
	bindings      []binding
	registrations int
}

// On sets the handler for kind, replacing any previous one.
// A nil handler removes it.
func (o *Object) On(kind event.Kind, h Handler) {
	if kind >= event.NumKinds {
		return
	}
	o.handlers[kind] = h
}

// Off removes the handler for kind.
func (o *Object) Off(kind event.Kind) {
	o.On(kind, nil)
}

// Handles reports whether a handler is set for kind.
func (o *Object) Handles(kind event.Kind) bool {
	return kind < event.NumKinds && o.handlers[kind] != nil
}

func (o *Object) handler(kind event.Kind) Handler {
	if kind >= event.NumKinds {
		return nil
	}
	return o.handlers[kind]
}

// IsHovering reports whether the mouse is over the object.
func (o *Object) IsHovering() bool { return o.hovering }

// IsTouchOver reports whether at least one tracked touch is over the object.
func (o *Object) IsTouchOver() bool { return o.touchOver }

// HasFocus reports whether the object receives keyboard events.
func (o *Object) HasFocus() bool { return o.focused }

// ActiveTouches returns the tracked touch identifiers in ascending order.
func (o *Object) ActiveTouches() []event.TouchID {
	ids := make([]event.TouchID, 0, len(o.touches))
	for id := range o.touches {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// MaxTouches returns how many touches the object tracks simultaneously.
func (o *Object) MaxTouches() int {
	if o.maxTouches < 1 {
		return DefaultMaxTouches
	}
	return o.maxTouches
}

// SetMaxTouches sets how many touches the object tracks simultaneously.
// Values below one are raised to one.
func (o *Object) SetMaxTouches(n int) {
	o.maxTouches = max(n, 1)
}

// AddListener registers l to be told when the object requests a redraw.
func (o *Object) AddListener(l Redrawer) {
	if l == nil || slices.Contains(o.listeners, l) {
		return
	}
	o.listeners = append(o.listeners, l)
}

// RemoveListener unregisters l.
func (o *Object) RemoveListener(l Redrawer) {
	if i := slices.Index(o.listeners, l); i >= 0 {
		o.listeners = slices.Delete(o.listeners, i, i+1)
	}
}

// RequestRedraw tells every listener that the object changed.
func (o *Object) RequestRedraw() {
	for _, l := range o.listeners {
		l.RequestRedraw()
	}
}

// Bind drives *target from a. On every Tick a is advanced by one frame and
// its value, passed through fn when fn is not nil, is stored in *target.
// Finished animations are skipped.
func (o *Object) Bind(a Animation, target *float64, fn func(float64) float64) {
	if a == nil || target == nil {
		return
	}
	o.bindings = append(o.bindings, binding{anim: a, target: target, fn: fn})
}

// Tick advances the bound animations.
func (o *Object) Tick() {
	for _, b := range o.bindings {
		if b.anim.Done() {
			continue
		}
		b.anim.Tick()
		v := b.anim.Get()
		if b.fn != nil {
			v = b.fn(v)
		}
		*b.target = v
	}
}

// resetInteraction clears the state the delegator keeps for the object.
func (o *Object) resetInteraction() {
	if s := o.focusOwner; s != nil && s.focused != nil && s.focused.Base() == o {
		s.focused = nil
	}
	o.hovering = false
	o.touchOver = false
	o.focused = false
	o.pressed = false
	o.pressBtn = event.ButtonPrimary
	o.touches = make(map[event.TouchID]bool)
	o.focusOwner = nil
}

// trackTouch starts tracking id. pressed records that the touch began on
// the object, which a tap requires.
func (o *Object) trackTouch(id event.TouchID, pressed bool) {
	if o.touches == nil {
		o.touches = make(map[event.TouchID]bool)
	}
	o.touches[id] = pressed
}

// pressedBy reports whether touch id began on the object.
func (o *Object) pressedBy(id event.TouchID) bool {
	return o.touches[id]
}

func (o *Object) tracks(id event.TouchID) bool {
	_, ok := o.touches[id]
	return ok
}

func (o *Object) releaseTouch(id event.TouchID) {
	delete(o.touches, id)
}
