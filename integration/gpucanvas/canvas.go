// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

var (
	// ErrCanvasClosed is returned when a closed canvas is used.
	ErrCanvasClosed = errors.New("gpucanvas: canvas is closed")

	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = errors.New("gpucanvas: invalid dimensions")

	// ErrNilProvider is returned when New is given a nil DeviceProvider.
	ErrNilProvider = errors.New("gpucanvas: nil DeviceProvider")
)

// destroyer matches the Destroy method of gogpu textures.
type destroyer interface {
	Destroy()
}

// Canvas is a torch.Surface backed by a gg.Context whose pixels are
// uploaded to a GPU texture when the surface has been redrawn.
type Canvas struct {
	ctx      *gg.Context
	surface  *torch.Surface
	provider gpucontext.DeviceProvider

	background gg.RGBA

	texture     any
	oldTexture  any
	dirty       bool
	sizeChanged bool
	closed      bool
}

// New creates a width x height canvas for provider, which should come from
// gogpu.App.GPUContextProvider. opts configure the surface.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...torch.SurfaceOption) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// Device sharing is optional; without it the accelerator keeps its own
	// device.
	if err := gg.SetAcceleratorDeviceProvider(provider); err != nil {
		torch.Logger().Debug("gpucanvas: accelerator device sharing unavailable", "err", err)
	}

	ctx := gg.NewContext(width, height)
	return &Canvas{
		ctx:        ctx,
		surface:    torch.NewSurface(ctx, opts...),
		provider:   provider,
		background: gg.White,
		dirty:      true,
	}, nil
}

// Surface returns the interactive surface drawn on the canvas.
func (c *Canvas) Surface() *torch.Surface {
	return c.surface
}

// Context returns the gg context, or nil after Close.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Provider returns the DeviceProvider, or nil after Close.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.surface.Size()
}

// SetBackground sets the color the canvas is cleared to before each repaint.
func (c *Canvas) SetBackground(col gg.RGBA) {
	c.background = col
	c.surface.RequestRedraw()
}

// Dispatch delivers a host event to the surface.
func (c *Canvas) Dispatch(ev event.Event) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.surface.Dispatch(ev)
	return nil
}

// IsDirty reports whether the next Flush uploads pixels.
func (c *Canvas) IsDirty() bool {
	return c.dirty || c.surface.RedrawNeeded()
}

// Resize changes the canvas size. The surface keeps its objects and
// transform and is repainted on the next Flush.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if w, h := c.surface.Size(); w == width && h == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("gpucanvas: resize context: %w", err)
	}
	c.surface.SetBackingSize(width, height)
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Repaint clears the context and draws the surface if a redraw was
// requested. It reports whether anything was drawn.
func (c *Canvas) Repaint() bool {
	if c.closed || !c.surface.RedrawNeeded() {
		return false
	}
	c.ctx.ClearWithColor(c.background)
	c.surface.Draw()
	c.dirty = true
	return true
}

// Flush repaints the surface if needed and brings the texture up to date.
// The first Flush, and the first one after a resize, returns a pending
// texture that RenderTo turns into a GPU texture.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	c.Repaint()

	// The old texture may still be read by in-flight command buffers, so it
	// is destroyed only after the replacement has been written.
	if c.sizeChanged {
		if c.texture != nil {
			destroy(c.oldTexture)
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	if err := c.ctx.FlushGPU(); err != nil {
		// The CPU pixmap already holds the frame.
		torch.Logger().Warn("gpucanvas: GPU flush failed", "err", err)
	}
	data := c.ctx.ResizeTarget().Data()

	if c.texture == nil {
		w, h := c.surface.Size()
		c.texture = &pendingTexture{width: w, height: h, data: data}
		c.dirty = false
		return c.texture, nil
	}

	if u, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := u.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gpucanvas: update texture: %w", err)
		}
	}
	c.dirty = false
	return c.texture, nil
}

// Texture returns the current texture without flushing, or nil.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases the textures and the context. It is safe to call twice.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	destroy(c.oldTexture)
	destroy(c.texture)
	c.oldTexture, c.texture = nil, nil

	err := c.ctx.Close()
	c.provider = nil
	if err != nil {
		return fmt.Errorf("gpucanvas: close context: %w", err)
	}
	return nil
}

func destroy(tex any) {
	if d, ok := tex.(destroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds pixels until RenderTo has a TextureCreator.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
