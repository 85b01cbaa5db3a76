// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// stubProvider satisfies gpucontext.DeviceProvider. Its methods are never
// called without a registered accelerator.
type stubProvider struct {
	gpucontext.DeviceProvider
}

// stubTexture records uploads and destruction.
type stubTexture struct {
	gpucontext.Texture
	updates   int
	destroyed bool
}

func (s *stubTexture) UpdateData(data []byte) error {
	s.updates++
	return nil
}

func (s *stubTexture) Destroy() { s.destroyed = true }

// stubDrawer records DrawTexture calls.
type stubDrawer struct {
	gpucontext.TextureDrawer
	drawn  gpucontext.Texture
	x, y   float32
	draws  int
	failed error
}

func (s *stubDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	s.drawn, s.x, s.y = tex, x, y
	s.draws++
	return s.failed
}

// dot is a filled circle drawable.
type dot struct {
	torch.Object
	x, y, r float64
	draws   int
}

func (d *dot) Base() *torch.Object { return &d.Object }

func (d *dot) Draw(s *torch.Surface) {
	d.draws++
	dc := s.DC()
	dc.SetColor(gg.RGBA{R: 1, A: 1}.Color())
	dc.DrawCircle(d.x, d.y, d.r)
	if err := dc.Fill(); err != nil {
		torch.Logger().Warn("fill failed", "err", err)
	}
}

func (d *dot) HitDetect(x, y float64, _ *torch.Surface, _ *event.Event) bool {
	dx, dy := x-d.x, y-d.y
	return dx*dx+dy*dy <= d.r*d.r
}

func newCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := New(&stubProvider{}, 64, 48)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		w, h     int
		wantErr  error
	}{
		{"valid", &stubProvider{}, 64, 48, nil},
		{"nil provider", nil, 64, 48, ErrNilProvider},
		{"zero width", &stubProvider{}, 0, 48, ErrInvalidDimensions},
		{"negative height", &stubProvider{}, 64, -1, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.provider, tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer c.Close()
			if w, h := c.Size(); w != 64 || h != 48 {
				t.Errorf("Size() = %dx%d, want 64x48", w, h)
			}
			if c.Surface().DC() != c.Context() {
				t.Error("surface does not wrap the canvas context")
			}
			if !c.IsDirty() {
				t.Error("new canvas is not dirty")
			}
		})
	}
}

func TestNewAppliesSurfaceOptions(t *testing.T) {
	c, err := New(&stubProvider{}, 10, 10, torch.WithClickThreshold(9))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if got := c.Surface().ClickThreshold(); got != 9 {
		t.Errorf("ClickThreshold() = %v, want 9", got)
	}
}

func TestFlushRepaintsOnlyWhenNeeded(t *testing.T) {
	c := newCanvas(t)
	d := &dot{x: 32, y: 24, r: 10}
	c.Surface().Add("d", d)

	tex, err := c.Flush()
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if _, ok := tex.(*pendingTexture); !ok {
		t.Fatalf("first Flush() = %T, want *pendingTexture", tex)
	}
	if d.draws != 1 {
		t.Errorf("draws after first Flush = %d, want 1", d.draws)
	}

	// Swap in an uploaded texture, as RenderTo would.
	up := &stubTexture{}
	c.texture = up

	if _, err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if d.draws != 1 || up.updates != 0 {
		t.Errorf("idle Flush drew %d times and uploaded %d times", d.draws, up.updates)
	}

	d.RequestRedraw()
	if _, err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if d.draws != 2 || up.updates != 1 {
		t.Errorf("Flush after a redraw request: draws %d uploads %d, want 2 and 1", d.draws, up.updates)
	}
}

func TestRepaintPixels(t *testing.T) {
	c := newCanvas(t)
	c.SetBackground(gg.RGBA{B: 1, A: 1})
	c.Surface().Add("d", &dot{x: 32, y: 24, r: 10})

	if !c.Repaint() {
		t.Fatal("Repaint() = false with a pending redraw")
	}
	img := c.Context().Image()
	if r, _, _, _ := img.At(32, 24).RGBA(); r < 0xf000 {
		t.Errorf("center red = %#x, want the dot color", r)
	}
	if _, _, b, _ := img.At(1, 1).RGBA(); b < 0xf000 {
		t.Errorf("corner blue = %#x, want the background", b)
	}
	if c.Repaint() {
		t.Error("second Repaint() = true without a redraw request")
	}
}

func TestDispatchReachesSurface(t *testing.T) {
	c := newCanvas(t)
	d := &dot{x: 32, y: 24, r: 10}
	clicks := 0
	d.On(event.Click, func(torch.Input) { clicks++ })
	c.Surface().Add("d", d)

	for _, k := range []event.Kind{event.MouseDown, event.MouseUp} {
		if err := c.Dispatch(event.Mouse(k, 32, 24, event.ButtonPrimary)); err != nil {
			t.Fatal(err)
		}
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestRenderToDrawsTexture(t *testing.T) {
	c := newCanvas(t)
	up := &stubTexture{}
	c.texture = up
	c.dirty = false
	c.Surface().Draw()

	dr := &stubDrawer{}
	if err := c.RenderAt(dr, 5, 7); err != nil {
		t.Fatalf("RenderAt() error = %v", err)
	}
	if dr.draws != 1 || dr.x != 5 || dr.y != 7 {
		t.Errorf("DrawTexture calls = %d at (%v, %v), want 1 at (5, 7)", dr.draws, dr.x, dr.y)
	}
	if dr.drawn != gpucontext.Texture(up) {
		t.Error("a different texture was drawn")
	}

	dr.failed = errors.New("device lost")
	if err := c.RenderTo(dr); !errors.Is(err, dr.failed) {
		t.Errorf("RenderTo() error = %v, want the draw error", err)
	}
}

func TestResize(t *testing.T) {
	c := newCanvas(t)
	old := &stubTexture{}
	c.texture = old
	c.dirty = false
	c.Surface().Draw()

	if err := c.Resize(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 10) error = %v", err)
	}
	if err := c.Resize(128, 96); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if w, h := c.Surface().Size(); w != 128 || h != 96 {
		t.Errorf("surface Size() = %dx%d, want 128x96", w, h)
	}
	if w, h := c.Surface().DisplaySize(); w != 128 || h != 96 {
		t.Errorf("surface DisplaySize() = %dx%d, want 128x96", w, h)
	}

	tex, err := c.Flush()
	if err != nil {
		t.Fatal(err)
	}
	p, ok := tex.(*pendingTexture)
	if !ok || p.width != 128 || p.height != 96 {
		t.Fatalf("Flush after Resize = %#v, want a 128x96 pending texture", tex)
	}
	if old.destroyed {
		t.Error("old texture destroyed before its replacement was created")
	}
	if c.oldTexture != any(old) {
		t.Error("old texture not kept for deferred destruction")
	}
}

func TestClose(t *testing.T) {
	c, err := New(&stubProvider{}, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	tex := &stubTexture{}
	c.texture = tex

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !tex.destroyed {
		t.Error("texture not destroyed")
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if c.Context() != nil || c.Provider() != nil {
		t.Error("closed canvas still exposes its context or provider")
	}

	if _, err := c.Flush(); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Flush() error = %v, want ErrCanvasClosed", err)
	}
	if err := c.RenderTo(&stubDrawer{}); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("RenderTo() error = %v, want ErrCanvasClosed", err)
	}
	if err := c.Resize(4, 4); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Resize() error = %v, want ErrCanvasClosed", err)
	}
	if err := c.Dispatch(event.Mouse(event.MouseMove, 1, 1, 0)); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Dispatch() error = %v, want ErrCanvasClosed", err)
	}
}
