package torch

import (
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/f64"
)

// invertEpsilon is the smallest determinant magnitude Invert accepts.
const invertEpsilon = 1e-12

// Matrix represents a 2D affine transformation using the canvas
// convention of six coefficients:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// Matrix is a value type; every method returns a new Matrix.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix. The angle is in degrees.
func Rotate(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply composes m with other. The result maps a point the same way as
// applying other first and then m, which is how a drawing context stacks
// successive transform calls.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Translate returns m with a translation applied in its local space.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Multiply(Translate(x, y))
}

// Scale returns m with a non-uniform scale applied in its local space.
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Multiply(Scale(x, y))
}

// ScaleUniform returns m scaled by s on both axes.
func (m Matrix) ScaleUniform(s float64) Matrix {
	return m.Scale(s, s)
}

// Rotate returns m rotated about its current origin. The angle is in degrees.
func (m Matrix) Rotate(degrees float64) Matrix {
	return m.Multiply(Rotate(degrees))
}

// RotateFromVector returns m rotated by the angle of the vector (x, y).
func (m Matrix) RotateFromVector(x, y float64) Matrix {
	return m.Rotate(math.Atan2(y, x) * 180 / math.Pi)
}

// FlipX returns m mirrored across the y axis.
func (m Matrix) FlipX() Matrix {
	return m.Multiply(Matrix{A: -1, D: 1})
}

// FlipY returns m mirrored across the x axis.
func (m Matrix) FlipY() Matrix {
	return m.Multiply(Matrix{A: 1, D: -1})
}

// SkewX returns m skewed along the x axis. The angle is in degrees.
func (m Matrix) SkewX(degrees float64) Matrix {
	return m.Multiply(Matrix{A: 1, C: math.Tan(degrees * math.Pi / 180), D: 1})
}

// SkewY returns m skewed along the y axis. The angle is in degrees.
func (m Matrix) SkewY(degrees float64) Matrix {
	return m.Multiply(Matrix{A: 1, B: math.Tan(degrees * math.Pi / 180), D: 1})
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix.
// It returns a *MathError wrapping ErrSingularMatrix when the determinant is
// zero or within floating tolerance of zero.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < invertEpsilon {
		return Matrix{}, &MathError{Op: "invert", Det: det}
	}
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.E*m.D) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, nil
}

// Apply transforms a point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyVector transforms a vector (no translation).
func (m Matrix) ApplyVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ApproxEqual reports whether every coefficient of m and o differs by at most eps.
func (m Matrix) ApproxEqual(o Matrix, eps float64) bool {
	return math.Abs(m.A-o.A) <= eps && math.Abs(m.B-o.B) <= eps &&
		math.Abs(m.C-o.C) <= eps && math.Abs(m.D-o.D) <= eps &&
		math.Abs(m.E-o.E) <= eps && math.Abs(m.F-o.F) <= eps
}

// GG converts m to gg's row-major matrix layout.
func (m Matrix) GG() gg.Matrix {
	return gg.Matrix{
		A: m.A, B: m.C, C: m.E,
		D: m.B, E: m.D, F: m.F,
	}
}

// MatrixFromGG converts a gg matrix to the canvas layout.
func MatrixFromGG(g gg.Matrix) Matrix {
	return Matrix{A: g.A, B: g.D, C: g.B, D: g.E, E: g.C, F: g.F}
}

// Aff3 converts m to the x/image affine layout used by x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
}

// MatrixFromAff3 converts an x/image affine matrix to the canvas layout.
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{A: a[0], B: a[3], C: a[1], D: a[4], E: a[2], F: a[5]}
}
