package torch

// Coordinate mapping between page space and surface drawing space.
//
// Page space is where host events report positions. Drawing space is the
// space objects draw and hit-test in: page space minus the surface's page
// offset, scaled by the backing-to-display pixel ratio, then through the
// inverse of the current transform. Transforms applied to the surface by
// the host outside this package are not corrected for.

// PageOffset returns the surface's position on the page.
func (s *Surface) PageOffset() Point {
	if s.opts.pageOffset == nil {
		return Point{}
	}
	return s.opts.pageOffset()
}

// PixelRatio returns the backing-store pixels per displayed unit on each
// axis. It is (1, 1) when the sizes are unknown or equal.
func (s *Surface) PixelRatio() (rx, ry float64) {
	rx, ry = 1, 1
	if s.displayW > 0 && s.backingW > 0 {
		rx = float64(s.backingW) / float64(s.displayW)
	}
	if s.displayH > 0 && s.backingH > 0 {
		ry = float64(s.backingH) / float64(s.displayH)
	}
	return rx, ry
}

// toBacking maps a page position to backing-store pixels.
func (s *Surface) toBacking(pageX, pageY float64) Point {
	off := s.PageOffset()
	rx, ry := s.PixelRatio()
	return Pt((pageX-off.X)*rx, (pageY-off.Y)*ry)
}

// ToLocal maps a page position into the surface's drawing space.
// It fails with a *MathError when the current transform is singular.
func (s *Surface) ToLocal(pageX, pageY float64) (Point, error) {
	inv, err := s.stack.Current().Invert()
	if err != nil {
		return Point{}, err
	}
	return inv.Apply(s.toBacking(pageX, pageY)), nil
}

// ToPage maps a point in the surface's drawing space to page space.
// It is the inverse of ToLocal.
func (s *Surface) ToPage(p Point) Point {
	b := s.stack.Current().Apply(p)
	rx, ry := s.PixelRatio()
	off := s.PageOffset()
	return Pt(b.X/rx+off.X, b.Y/ry+off.Y)
}

// ToOther maps p from the drawing space of from into the drawing space of
// to, for surfaces layered over the same backing area. It fails when the
// transform of to is singular.
func ToOther(p Point, from, to *Surface) (Point, error) {
	inv, err := to.stack.Current().Invert()
	if err != nil {
		return Point{}, err
	}
	return inv.Apply(from.stack.Current().Apply(p)), nil
}
