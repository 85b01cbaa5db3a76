package shape

import (
	"math"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// Circle is a filled or stroked circle.
type Circle struct {
	torch.Object
	Style

	X, Y, R float64
}

// NewCircle returns a circle centered at (x, y).
func NewCircle(x, y, r float64, st Style) *Circle {
	return &Circle{Style: st, X: x, Y: y, R: r}
}

// Base implements torch.Drawable.
func (c *Circle) Base() *torch.Object { return &c.Object }

// Draw implements torch.Drawable.
func (c *Circle) Draw(s *torch.Surface) {
	dc := s.DC()
	if dc == nil {
		return
	}
	dc.DrawCircle(c.X, c.Y, c.R)
	c.paint(dc)
}

// HitDetect reports whether (x, y) lies within the circle or its stroke.
func (c *Circle) HitDetect(x, y float64, _ *torch.Surface, _ *event.Event) bool {
	return math.Hypot(x-c.X, y-c.Y) <= c.R+c.halfStroke()
}
