// Package event defines the input events understood by torch surfaces.
//
// Hosts (browser glue, x/mobile, tcell, tests) translate their native input
// into [Event] values and hand them to torch.Surface.Dispatch. Some kinds are
// raw device events a host may send; others are synthesized by the delegator
// and only ever reach object handlers. See [Kind.Synthetic].
package event

import (
	"fmt"
	"strings"
)

// Kind identifies the type of an event.
type Kind uint8

const (
	// Unknown is the zero Kind.
	Unknown Kind = iota

	// MouseDown is sent when a mouse button is pressed.
	MouseDown
	// MouseUp is sent when a mouse button is released.
	MouseUp
	// MouseMove is sent when the mouse moves over the surface.
	MouseMove
	// MouseOver is synthesized when the pointer enters an object's hit area.
	MouseOver
	// MouseOut is synthesized when the pointer leaves an object's hit area.
	// A host may also send it when the pointer leaves the whole surface.
	MouseOut
	// Click is synthesized for a press and release of a non-secondary button
	// without moving further than the click threshold.
	Click
	// RightClick replaces Click when the secondary button was used.
	RightClick
	// DoubleClick is forwarded verbatim from the host.
	DoubleClick

	// TouchStart is sent when a finger touches the surface.
	TouchStart
	// TouchMove is sent when a finger moves.
	TouchMove
	// TouchEnd is sent when a finger is lifted.
	TouchEnd
	// TouchCancel is sent when the host aborts a touch.
	TouchCancel
	// TouchOver is synthesized when a tracked touch enters an object.
	TouchOver
	// TouchOut is synthesized when an object stops tracking its last touch.
	TouchOut
	// Tap is the touch counterpart of Click.
	Tap

	// KeyDown is sent when a key is pressed.
	KeyDown
	// KeyUp is sent when a key is released.
	KeyUp
	// KeyPress is sent for keys producing a character.
	KeyPress

	// Focus is synthesized when an object gains surface focus.
	Focus
	// Blur is synthesized when an object loses surface focus.
	Blur

	// Drawn is synthesized after the surface repaints, re-delegating the
	// last known pointer positions.
	Drawn

	// NumKinds is the number of defined kinds.
	NumKinds
)

var kindNames = [NumKinds]string{
	Unknown:     "unknown",
	MouseDown:   "mousedown",
	MouseUp:     "mouseup",
	MouseMove:   "mousemove",
	MouseOver:   "mouseover",
	MouseOut:    "mouseout",
	Click:       "click",
	RightClick:  "rightclick",
	DoubleClick: "dblclick",
	TouchStart:  "touchstart",
	TouchMove:   "touchmove",
	TouchEnd:    "touchend",
	TouchCancel: "touchcancel",
	TouchOver:   "touchover",
	TouchOut:    "touchout",
	Tap:         "tap",
	KeyDown:     "keydown",
	KeyUp:       "keyup",
	KeyPress:    "keypress",
	Focus:       "focus",
	Blur:        "blur",
	Drawn:       "drawn",
}

// String returns the DOM-style name of the kind ("mousedown", "tap", ...).
func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind with the given name. Names are matched case
// insensitively and an optional "on" prefix is accepted ("onclick").
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "on")
	for k, s := range kindNames {
		if s == n && Kind(k) != Unknown {
			return Kind(k), nil
		}
	}
	return Unknown, fmt.Errorf("event: unknown kind %q", name)
}

// IsMouse reports whether k belongs to the mouse family.
func (k Kind) IsMouse() bool {
	return k >= MouseDown && k <= DoubleClick
}

// IsTouch reports whether k belongs to the touch family.
func (k Kind) IsTouch() bool {
	return k >= TouchStart && k <= Tap
}

// IsKey reports whether k is a keyboard event.
func (k Kind) IsKey() bool {
	return k >= KeyDown && k <= KeyPress
}

// Synthetic reports whether k is only ever produced by the delegator.
// Synthetic kinds are never forwarded verbatim to object handlers, so a host
// sending one of them cannot cause a duplicate delivery.
func (k Kind) Synthetic() bool {
	switch k {
	case MouseOver, MouseOut, Click, RightClick, TouchOver, TouchOut, Tap, Focus, Blur:
		return true
	}
	return false
}

// Button identifies a mouse button using DOM numbering.
type Button int8

const (
	// ButtonPrimary is usually the left button.
	ButtonPrimary Button = 0
	// ButtonMiddle is the wheel button.
	ButtonMiddle Button = 1
	// ButtonSecondary is usually the right button.
	ButtonSecondary Button = 2
)

// TouchID identifies a finger for the lifetime of one touch.
type TouchID int

// Touch is one changed touch point in page coordinates.
type Touch struct {
	ID           TouchID
	PageX, PageY float64
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Contain reports whether all modifiers in m2 are held in m.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// Key names a non-character key. Character keys use KeyRune with Event.Rune set.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeySpace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Event is a single input event.
//
// Mouse events carry PageX/PageY and Button. Touch events carry the touches
// that changed in Touches. Key events carry Key, Rune and Modifiers.
type Event struct {
	Kind Kind

	PageX, PageY float64
	Button       Button

	Touches []Touch

	Key       Key
	Rune      rune
	Modifiers Modifiers
}

// Mouse returns a mouse event at the given page position.
func Mouse(kind Kind, x, y float64, b Button) Event {
	return Event{Kind: kind, PageX: x, PageY: y, Button: b}
}

// TouchEvent returns a touch event with the given changed touches.
func TouchEvent(kind Kind, touches ...Touch) Event {
	return Event{Kind: kind, Touches: touches}
}

// KeyEvent returns a keyboard event.
func KeyEvent(kind Kind, k Key, r rune, mods Modifiers) Event {
	return Event{Kind: kind, Key: k, Rune: r, Modifiers: mods}
}
