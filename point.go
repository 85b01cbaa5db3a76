package torch

import "math"

// Point is a position in page, surface or group-local coordinates. Which
// space a Point is in depends on where it came from; the mapper functions
// name the space they return.
type Point struct {
	X, Y float64
}

// Pt returns Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the straight-line distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ApproxEqual reports whether both coordinates differ by at most eps.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// beyond reports whether q lies further than threshold from p on either
// axis. Click and tap eligibility use it, so a diagonal drag of threshold
// on both axes still clicks.
func (p Point) beyond(q Point, threshold float64) bool {
	d := q.Sub(p)
	return math.Abs(d.X) > threshold || math.Abs(d.Y) > threshold
}
