package main

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/anim"
	"github.com/gogpu/torch/event"
	"github.com/gogpu/torch/shape"
)

var (
	background = gg.RGBA{R: 0.12, G: 0.13, B: 0.16, A: 1}
	idle       = gg.RGBA{R: 0.25, G: 0.45, B: 0.85, A: 1}
	hot        = gg.RGBA{R: 0.45, G: 0.65, B: 1, A: 1}
	ring       = gg.RGBA{R: 1, G: 0.8, B: 0.2, A: 1}
	white      = gg.RGBA{R: 1, G: 1, B: 1, A: 1}
)

// scene holds the demo objects and counts what happened to them.
type scene struct {
	button *shape.Rect
	ball   *shape.Circle
	star   *shape.Polygon
	dial   *torch.Group

	clicks int
	taps   int
	typed  []rune
}

func newScene(s *torch.Surface, logger *slog.Logger) *scene {
	sc := &scene{}

	sc.button = shape.NewRect(40, 40, 180, 70, shape.Style{Fill: idle, Stroke: white, StrokeWidth: 2})
	b := sc.button
	b.On(event.MouseOver, func(torch.Input) { b.Fill = hot; b.RequestRedraw() })
	b.On(event.MouseOut, func(torch.Input) { b.Fill = idle; b.RequestRedraw() })
	b.On(event.Focus, func(torch.Input) { b.Stroke = ring; b.RequestRedraw() })
	b.On(event.Blur, func(torch.Input) { b.Stroke = white; b.RequestRedraw() })
	b.On(event.Click, func(in torch.Input) {
		sc.clicks++
		logger.Info("button clicked", "x", in.X, "y", in.Y, "count", sc.clicks)
	})
	b.On(event.KeyPress, func(in torch.Input) {
		sc.typed = append(sc.typed, in.Event.Rune)
		logger.Info("typed", "text", string(sc.typed))
	})
	s.Add("button", b)

	// The ball bounces along the bottom edge on every tick.
	sc.ball = shape.NewCircle(60, 330, 24, shape.Filled(gg.RGBA{R: 0.9, G: 0.3, B: 0.3, A: 1}))
	sc.ball.Bind(anim.NewLinear(60, 580, 40, anim.Bounce, anim.WithEasing(anim.EaseOut)), &sc.ball.X, nil)
	sc.ball.On(event.MouseOver, func(torch.Input) { logger.Info("ball hovered") })
	sc.ball.On(event.Drawn, func(in torch.Input) { logger.Debug("ball moved under pointer", "x", in.X) })
	s.Add("ball", sc.ball)

	// The dial is a rotated group; its star is hit in the group's space.
	sc.dial = torch.NewGroup()
	sc.dial.Translate(470, 150)
	sc.dial.Rotate(math.Pi / 8)
	sc.star = shape.NewPolygon(shape.Filled(ring), starPoints(60, 26, 5)...)
	sc.star.SetMaxTouches(2)
	sc.star.On(event.Tap, func(in torch.Input) {
		sc.taps++
		logger.Info("star tapped", "touch", in.Touch, "x", in.X, "y", in.Y, "count", sc.taps)
	})
	sc.star.On(event.TouchOver, func(torch.Input) { sc.star.Fill = white; sc.star.RequestRedraw() })
	sc.star.On(event.TouchOut, func(torch.Input) { sc.star.Fill = ring; sc.star.RequestRedraw() })
	sc.dial.Add("hand", shape.NewLine(0, 0, 90, 0, white, 3))
	sc.dial.Add("star", sc.star)
	s.Add("dial", sc.dial)

	s.Hook(event.MouseDown, func(ev *event.Event) {
		if s.HitTest(ev.PageX, ev.PageY) == nil {
			logger.Debug("press on empty space", "x", ev.PageX, "y", ev.PageY)
		}
	})
	return sc
}

// starPoints returns the corners of a star centered on the origin.
func starPoints(outer, inner float64, points int) []torch.Point {
	pts := make([]torch.Point, 0, points*2)
	for i := range points * 2 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(points) - math.Pi/2
		pts = append(pts, torch.Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	return pts
}
