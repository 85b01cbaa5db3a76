package shape

import (
	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	torch.Object
	Style

	X, Y, W, H float64
}

// NewRect returns a w by h rectangle at (x, y).
func NewRect(x, y, w, h float64, st Style) *Rect {
	return &Rect{Style: st, X: x, Y: y, W: w, H: h}
}

// Base implements torch.Drawable.
func (r *Rect) Base() *torch.Object { return &r.Object }

// Draw implements torch.Drawable.
func (r *Rect) Draw(s *torch.Surface) {
	dc := s.DC()
	if dc == nil {
		return
	}
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	r.paint(dc)
}

// HitDetect reports whether (x, y) lies within the rectangle, edges and
// stroke included. Negative sizes are handled.
func (r *Rect) HitDetect(x, y float64, _ *torch.Surface, _ *event.Event) bool {
	hs := r.halfStroke()
	x0, x1 := min(r.X, r.X+r.W), max(r.X, r.X+r.W)
	y0, y1 := min(r.Y, r.Y+r.H), max(r.Y, r.Y+r.H)
	return x >= x0-hs && x <= x1+hs && y >= y0-hs && y <= y1+hs
}
