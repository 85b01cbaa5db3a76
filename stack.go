package torch

import "math"

// TransformStack tracks a current transform together with the transforms
// saved by Save. It mirrors the save/restore model of a drawing context so
// the current transform can always be queried.
//
// The zero value is not ready for use; call NewTransformStack.
type TransformStack struct {
	current Matrix
	saved   []Matrix
}

// NewTransformStack returns a stack whose current transform is the identity.
func NewTransformStack() *TransformStack {
	return &TransformStack{
		current: Identity(),
		saved:   make([]Matrix, 0, 8),
	}
}

// Current returns a copy of the current transform.
func (t *TransformStack) Current() Matrix {
	return t.current
}

// Depth returns the number of saved transforms.
func (t *TransformStack) Depth() int {
	return len(t.saved)
}

// Save pushes a copy of the current transform.
func (t *TransformStack) Save() {
	t.saved = append(t.saved, t.current)
}

// Restore pops the last saved transform and makes it current.
// With nothing saved the current transform is reset to the identity.
func (t *TransformStack) Restore() {
	n := len(t.saved)
	if n == 0 {
		t.current = Identity()
		return
	}
	t.current = t.saved[n-1]
	t.saved = t.saved[:n-1]
}

// Translate applies a translation to the current transform.
func (t *TransformStack) Translate(x, y float64) {
	t.current = t.current.Translate(x, y)
}

// Scale applies a scaling transformation.
func (t *TransformStack) Scale(x, y float64) {
	t.current = t.current.Scale(x, y)
}

// Rotate applies a rotation. The angle is in radians, like gg.Context.Rotate.
func (t *TransformStack) Rotate(angle float64) {
	t.current = t.current.Rotate(radToDeg(angle))
}

// Transform multiplies the current transform by m (current * m).
func (t *TransformStack) Transform(m Matrix) {
	t.current = t.current.Multiply(m)
}

// SetTransform replaces the current transform.
func (t *TransformStack) SetTransform(m Matrix) {
	t.current = m
}

// ResetTransform replaces the current transform with the identity.
// Saved transforms are kept.
func (t *TransformStack) ResetTransform() {
	t.current = Identity()
}

// unwind restores until at most depth transforms remain saved.
func (t *TransformStack) unwind(depth int) {
	for len(t.saved) > depth {
		t.Restore()
	}
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
