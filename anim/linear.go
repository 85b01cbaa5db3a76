// Package anim provides frame-stepped animations for binding to drawable
// properties with torch.Object.Bind.
package anim

import "math"

// Mode selects what a Linear animation does when it reaches an end.
type Mode uint8

const (
	// Stop finishes the animation at the end it runs into.
	Stop Mode = iota
	// Bounce reverses direction at each end.
	Bounce
	// Loop jumps back to the opposite end.
	Loop
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Stop:
		return "stop"
	case Bounce:
		return "bounce"
	case Loop:
		return "loop"
	}
	return "unknown"
}

// Direction is the way a Linear animation is moving through its frames.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Linear moves a value between min and max over a fixed number of frames.
// Each Tick computes the value for the current frame and then steps to the
// next one.
type Linear struct {
	min, max float64
	dif      float64
	maxFrame int
	frame    int
	mode     Mode
	dir      Direction
	forward  Easing
	backward Easing
	value    float64
	done     bool
}

// Option configures a Linear animation.
type Option func(*Linear)

// WithStart starts the animation at value v instead of min. The starting
// frame is the one closest to v.
func WithStart(v float64) Option {
	return func(l *Linear) {
		l.value = v
	}
}

// WithDirection sets the starting direction.
func WithDirection(d Direction) Option {
	return func(l *Linear) {
		if d < 0 {
			l.dir = Backward
		} else {
			l.dir = Forward
		}
	}
}

// WithEasing sets the easing for both directions.
func WithEasing(e Easing) Option {
	return func(l *Linear) {
		if e != nil {
			l.forward, l.backward = e, e
		}
	}
}

// WithBackwardEasing sets the easing used while moving backward.
func WithBackwardEasing(e Easing) Option {
	return func(l *Linear) {
		if e != nil {
			l.backward = e
		}
	}
}

// NewLinear returns an animation from lo to hi over frames frames.
// Fewer than two frames behave as two.
func NewLinear(lo, hi float64, frames int, mode Mode, opts ...Option) *Linear {
	l := &Linear{
		min:      lo,
		max:      hi,
		dif:      hi - lo,
		maxFrame: max(frames-1, 1),
		mode:     mode,
		dir:      Forward,
		forward:  NoEase,
		backward: NoEase,
		value:    lo,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.dif != 0 {
		f := math.Round((l.value - l.min) / l.dif * float64(l.maxFrame))
		l.frame = int(min(max(f, 0), float64(l.maxFrame)))
	}
	return l
}

// Get returns the value computed by the last Tick, or the start value.
func (l *Linear) Get() float64 { return l.value }

// Done reports whether a Stop animation has reached its end.
func (l *Linear) Done() bool { return l.done }

// Frame returns the frame the next Tick computes.
func (l *Linear) Frame() int { return l.frame }

// Tick computes the value for the current frame and advances one frame.
func (l *Linear) Tick() {
	if l.done {
		return
	}

	t := float64(l.frame) / float64(l.maxFrame)
	if l.dir == Forward {
		l.value = l.min + l.dif*l.forward(t)
	} else {
		l.value = l.max - l.dif*l.backward(1-t)
	}

	next := l.frame + int(l.dir)
	if next < 0 || next > l.maxFrame {
		switch l.mode {
		case Bounce:
			l.dir = -l.dir
			next = l.frame + int(l.dir)
		case Loop:
			next = 0
			if l.dir == Backward {
				next = l.maxFrame
			}
		default:
			l.done = true
			next = l.frame
		}
	}
	l.frame = next
}
