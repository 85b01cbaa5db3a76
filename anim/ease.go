package anim

import (
	"math"

	"github.com/gogpu/gg"
)

// Easing maps linear progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

// NoEase is linear progress.
func NoEase(t float64) float64 { return t }

// bezierTolerance is how close the solved x must be to the requested time.
const bezierTolerance = 0.0005

// Bezier returns a cubic-bezier easing with control points (x1, y1) and
// (x2, y2), like CSS cubic-bezier(). The curve runs from (0, 0) to (1, 1);
// the x coordinates should lie in [0, 1].
func Bezier(x1, y1, x2, y2 float64) Easing {
	curve := gg.NewCubicBez(gg.Pt(0, 0), gg.Pt(x1, y1), gg.Pt(x2, y2), gg.Pt(1, 1))
	return func(x float64) float64 {
		// Bisect on the curve parameter until its x is within tolerance.
		t, step := 0.5, 0.25
		for step > bezierTolerance {
			p := curve.Eval(t)
			switch {
			case math.Abs(p.X-x) < bezierTolerance:
				return p.Y
			case p.X > x:
				t -= step
			default:
				t += step
			}
			step /= 2
		}
		return curve.Eval(t).Y
	}
}

var (
	// EaseIn starts fast and settles slowly.
	EaseIn = Bezier(0.2, 0.8, 0.5, 0.9)

	// EaseOut starts slowly and speeds up.
	EaseOut = Bezier(0.8, 0.2, 0.9, 0.5)
)
