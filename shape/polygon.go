package shape

import (
	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// Polygon is a closed shape through Points.
type Polygon struct {
	torch.Object
	Style

	Points []torch.Point
}

// NewPolygon returns a polygon through pts.
func NewPolygon(st Style, pts ...torch.Point) *Polygon {
	return &Polygon{Style: st, Points: pts}
}

// Base implements torch.Drawable.
func (p *Polygon) Base() *torch.Object { return &p.Object }

// Draw implements torch.Drawable.
func (p *Polygon) Draw(s *torch.Surface) {
	dc := s.DC()
	if dc == nil || len(p.Points) < 2 {
		return
	}
	dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	p.paint(dc)
}

// HitDetect uses the even-odd rule. With a stroke, points within half the
// stroke width of an edge also hit.
func (p *Polygon) HitDetect(x, y float64, _ *torch.Surface, _ *event.Event) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	if inside {
		return true
	}
	hs := p.halfStroke()
	if hs == 0 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if segmentDistance(x, y, a.X, a.Y, b.X, b.Y) <= hs {
			return true
		}
	}
	return false
}
