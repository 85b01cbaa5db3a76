package torch

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/torch/event"
)

// box is an axis-aligned rectangle drawable used by the delegation tests.
type box struct {
	Object
	x, y, w, h float64

	panicOnHit  bool
	panicOnDraw bool
	draws       int
	drawMatrix  Matrix
}

func newBox(x, y, w, h float64) *box {
	return &box{x: x, y: y, w: w, h: h}
}

func (b *box) Base() *Object { return &b.Object }

func (b *box) Draw(s *Surface) {
	if b.panicOnDraw {
		panic("draw failed")
	}
	b.draws++
	b.drawMatrix = s.CurrentTransform()
}

func (b *box) HitDetect(x, y float64, _ *Surface, _ *event.Event) bool {
	if b.panicOnHit {
		panic("hit-test failed")
	}
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// disc is a circle drawable.
type disc struct {
	Object
	cx, cy, r float64
}

func (d *disc) Base() *Object  { return &d.Object }
func (d *disc) Draw(*Surface) {}
func (d *disc) HitDetect(x, y float64, _ *Surface, _ *event.Event) bool {
	return math.Hypot(x-d.cx, y-d.cy) <= d.r
}

// recorder logs every handler call as "name:kind".
type recorder struct {
	calls  []string
	inputs map[string][]Input
}

func newRecorder() *recorder {
	return &recorder{inputs: make(map[string][]Input)}
}

func (r *recorder) watch(name string, o *Object) {
	for k := event.Kind(1); k < event.NumKinds; k++ {
		o.On(k, func(in Input) {
			key := name + ":" + in.Event.Kind.String()
			r.calls = append(r.calls, key)
			r.inputs[key] = append(r.inputs[key], in)
		})
	}
}

func (r *recorder) count(name string, kind event.Kind) int {
	key := name + ":" + kind.String()
	n := 0
	for _, c := range r.calls {
		if c == key {
			n++
		}
	}
	return n
}

func (r *recorder) of(name string) []string {
	var out []string
	for _, c := range r.calls {
		if n, k, _ := strings.Cut(c, ":"); n == name {
			out = append(out, k)
		}
	}
	return out
}

func (r *recorder) index(call string) int {
	return slices.Index(r.calls, call)
}

func (r *recorder) reset() {
	r.calls = nil
	r.inputs = make(map[string][]Input)
}

func newHeadless(opts ...SurfaceOption) *Surface {
	return NewSurface(nil, append([]SurfaceOption{WithBackingSize(200, 200)}, opts...)...)
}

func mouse(s *Surface, kind event.Kind, x, y float64) {
	s.Dispatch(event.Mouse(kind, x, y, event.ButtonPrimary))
}

func touch(s *Surface, kind event.Kind, id event.TouchID, x, y float64) {
	s.Dispatch(event.TouchEvent(kind, event.Touch{ID: id, PageX: x, PageY: y}))
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}
