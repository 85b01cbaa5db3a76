package torch

import (
	"github.com/gogpu/torch/event"
)

// DefaultGroupMaxTouches is the number of touches a Group tracks at once.
const DefaultGroupMaxTouches = 100

// Group is a Drawable holding other drawables under its own transform.
//
// The group's TransformStack maps its children's space into the space of
// the registry holding the group. Drawing, hit-testing and event delegation
// all apply it, so groups nest to any depth with each level working in its
// own coordinates.
//
//	g := torch.NewGroup()
//	g.Translate(100, 0)
//	g.Add("dot", dot) // dot at (0, 0) is hit at (100, 0)
type Group struct {
	Object
	*TransformStack

	children *Registry
}

// NewGroup returns an empty group with an identity transform.
func NewGroup() *Group {
	g := &Group{TransformStack: NewTransformStack()}
	g.maxTouches = DefaultGroupMaxTouches
	g.children = NewRegistry(g)
	return g
}

// Base implements Drawable.
func (g *Group) Base() *Object { return &g.Object }

// RequestRedraw forwards a child's redraw request to the group's listeners.
func (g *Group) RequestRedraw() {
	g.Object.RequestRedraw()
}

// Children returns the group's registry.
func (g *Group) Children() *Registry {
	return g.children
}

// Add registers d in the group under key.
func (g *Group) Add(key Key, d Drawable) {
	g.children.Add(key, d)
	g.RequestRedraw()
}

// Remove unregisters the first child added under key.
func (g *Group) Remove(key Key) bool {
	if !g.children.Remove(key) {
		return false
	}
	g.RequestRedraw()
	return true
}

// ByKey returns the child most recently added under key, or nil.
func (g *Group) ByKey(key Key) Drawable {
	return g.children.ByKey(key)
}

// At returns the child at paint position i.
func (g *Group) At(i int) Drawable {
	return g.children.At(i)
}

// Len returns the number of children.
func (g *Group) Len() int {
	return g.children.Len()
}

// Draw paints the children under the group's transform.
func (g *Group) Draw(s *Surface) {
	s.Save()
	s.Transform(g.Current())
	for _, d := range g.children.snapshot() {
		s.drawObject(d)
	}
	s.Restore()
}

// HitDetect reports whether any child is hit at (x, y), given in the space
// of the registry holding the group. Children are tested from the top and
// the first hit wins. A group with a singular transform is never hit.
func (g *Group) HitDetect(x, y float64, s *Surface, ev *event.Event) bool {
	p, ok := g.toLocal(x, y)
	if !ok {
		return false
	}
	s.Save()
	defer s.Restore()
	s.Transform(g.Current())

	objs := g.children.snapshot()
	for i := len(objs) - 1; i >= 0; i-- {
		if hit, ok := s.hitTest(objs[i], p.X, p.Y, ev); ok && hit {
			return true
		}
	}
	return false
}

// Tick advances the group's own animations and then its children. A
// panicking child is logged and its siblings are still ticked.
func (g *Group) Tick() {
	g.Object.Tick()
	for _, d := range g.children.snapshot() {
		tickObject(d)
	}
}

func (g *Group) toLocal(x, y float64) (Point, bool) {
	inv, err := g.Current().Invert()
	if err != nil {
		Logger().Warn("torch: group transform is singular", "err", err)
		return Point{}, false
	}
	return inv.Apply(Pt(x, y)), true
}

func (g *Group) forwardMouse(s *Surface, x, y float64, ev *event.Event, hit bool) {
	p, ok := g.toLocal(x, y)
	if !ok {
		p, hit = Pt(x, y), false
	}
	depth := s.stack.Depth()
	s.Save()
	s.Transform(g.Current())
	s.delegateMouse(g.children, p.X, p.Y, ev, !hit)
	s.unwind(depth)
}

func (g *Group) forwardTouch(s *Surface, x, y float64, ev *event.Event, id event.TouchID, ts *touchState, hit bool) {
	p, ok := g.toLocal(x, y)
	if !ok {
		p, hit = Pt(x, y), false
	}
	depth := s.stack.Depth()
	s.Save()
	s.Transform(g.Current())
	s.delegateTouch(g.children, p.X, p.Y, ev, id, ts, !hit)
	s.unwind(depth)
}
