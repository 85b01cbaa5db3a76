// Package shape provides basic drawables for torch surfaces: circles,
// rectangles, lines, polygons and images. Each embeds torch.Object, so
// handlers are attached with On and state is read with IsHovering,
// HasFocus and the rest.
package shape

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/torch"
)

// Style is how a shape is painted. A zero alpha disables fill or stroke.
type Style struct {
	Fill        gg.RGBA
	Stroke      gg.RGBA
	StrokeWidth float64
}

// Filled returns a style that only fills with c.
func Filled(c gg.RGBA) Style {
	return Style{Fill: c}
}

// Stroked returns a style that only strokes with c at width w.
func Stroked(c gg.RGBA, w float64) Style {
	return Style{Stroke: c, StrokeWidth: w}
}

func (st Style) strokes() bool {
	return st.Stroke.A > 0 && st.StrokeWidth > 0
}

// halfStroke is how far the painted area extends past the geometry.
func (st Style) halfStroke() float64 {
	if !st.strokes() {
		return 0
	}
	return st.StrokeWidth / 2
}

// paint fills and strokes the current path on dc, then clears it.
func (st Style) paint(dc *gg.Context) {
	var err error
	switch {
	case st.Fill.A > 0 && st.strokes():
		dc.SetColor(st.Fill.Color())
		if err = dc.FillPreserve(); err == nil {
			err = st.stroke(dc)
		}
	case st.Fill.A > 0:
		dc.SetColor(st.Fill.Color())
		err = dc.Fill()
	case st.strokes():
		err = st.stroke(dc)
	default:
		dc.ClearPath()
	}
	if err != nil {
		torch.Logger().Warn("shape: paint failed", "err", err)
	}
}

func (st Style) stroke(dc *gg.Context) error {
	dc.SetColor(st.Stroke.Color())
	dc.SetLineWidth(st.StrokeWidth)
	return dc.Stroke()
}
