package shape

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// Line is a straight segment from (X1, Y1) to (X2, Y2).
type Line struct {
	torch.Object

	X1, Y1, X2, Y2 float64
	Color          gg.RGBA
	Width          float64

	// HitWidth widens the hit area beyond the painted width, which helps
	// with thin lines on touch screens.
	HitWidth float64
}

// NewLine returns a line of the given color and width.
func NewLine(x1, y1, x2, y2 float64, c gg.RGBA, width float64) *Line {
	return &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c, Width: width}
}

// Base implements torch.Drawable.
func (l *Line) Base() *torch.Object { return &l.Object }

// Draw implements torch.Drawable.
func (l *Line) Draw(s *torch.Surface) {
	dc := s.DC()
	if dc == nil {
		return
	}
	dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	Stroked(l.Color, l.Width).paint(dc)
}

// HitDetect reports whether (x, y) is within half the hit width of the
// segment.
func (l *Line) HitDetect(x, y float64, _ *torch.Surface, _ *event.Event) bool {
	return segmentDistance(x, y, l.X1, l.Y1, l.X2, l.Y2) <= max(l.HitWidth, l.Width)/2
}

// segmentDistance returns the distance from (px, py) to the segment
// (ax, ay)-(bx, by).
func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = min(max(t, 0), 1)
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
