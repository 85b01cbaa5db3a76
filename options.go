package torch

// DefaultClickThreshold is the distance in surface units a pointer may
// travel on either axis between press and release and still count as a
// click or tap.
const DefaultClickThreshold = 3

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	s := torch.NewSurface(dc,
//	    torch.WithClickThreshold(5),
//	    torch.WithInputFocus(true),
//	)
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	clickThreshold     float64
	backingW, backingH int
	displayW, displayH int
	pageOffset         func() Point
	inputFocus         bool
	autoBlur           bool
	blurOnOutsidePress bool
	passThrough        bool
}

func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		clickThreshold:     DefaultClickThreshold,
		blurOnOutsidePress: true,
	}
}

// WithClickThreshold sets how far a press may move before it stops being a
// click or tap. Negative values are treated as zero.
func WithClickThreshold(px float64) SurfaceOption {
	return func(o *surfaceOptions) {
		if px < 0 {
			px = 0
		}
		o.clickThreshold = px
	}
}

// WithBackingSize sets the backing-store size in pixels. It is only needed
// for surfaces created without a gg.Context; otherwise the context size is
// used.
func WithBackingSize(w, h int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.backingW, o.backingH = w, h
	}
}

// WithDisplaySize sets the size at which the surface is displayed, in page
// units. When it differs from the backing size, pointer coordinates are
// scaled by backing/display before the inverse transform is applied.
func WithDisplaySize(w, h int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.displayW, o.displayH = w, h
	}
}

// WithPageOffset fixes the surface's position on the page.
func WithPageOffset(x, y float64) SurfaceOption {
	p := Pt(x, y)
	return func(o *surfaceOptions) {
		o.pageOffset = func() Point { return p }
	}
}

// WithPageOffsetFunc sets a function reporting the surface's cumulative page
// offset. It is called for every mapped pointer event, so hosts whose layout
// changes can report the live value.
func WithPageOffsetFunc(fn func() Point) SurfaceOption {
	return func(o *surfaceOptions) {
		o.pageOffset = fn
	}
}

// WithInputFocus sets whether the surface starts with input focus. Objects
// are only focused by a press while the surface has input focus.
func WithInputFocus(active bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.inputFocus = active
	}
}

// WithAutoBlur makes a focused object lose focus when the pointer or touch
// that was over it leaves.
func WithAutoBlur(enabled bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.autoBlur = enabled
	}
}

// WithBlurOnOutsidePress controls whether a press that misses the focused
// object blurs it. Enabled by default.
func WithBlurOnOutsidePress(enabled bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.blurOnOutsidePress = enabled
	}
}

// WithPassThrough makes events reach every object under the pointer instead
// of only the topmost one. Objects below a hit object otherwise see the event
// as a miss.
func WithPassThrough(enabled bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.passThrough = enabled
	}
}

// WithConfig applies every setting of cfg.
func WithConfig(cfg Config) SurfaceOption {
	return func(o *surfaceOptions) {
		for _, opt := range cfg.Options() {
			opt(o)
		}
	}
}
