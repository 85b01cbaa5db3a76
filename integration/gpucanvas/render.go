// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

var (
	// ErrNotTexture is returned when the flushed texture cannot be drawn
	// through gpucontext.
	ErrNotTexture = errors.New("gpucanvas: texture does not implement gpucontext.Texture")

	// ErrNoTextureCreator is returned when the draw context cannot create
	// textures.
	ErrNoTextureCreator = errors.New("gpucanvas: draw context has no TextureCreator")
)

// RenderTo repaints the surface if needed, uploads it and draws it at the
// window origin. dc usually comes from gogpu.Context.AsTextureDrawer.
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderAt(dc, 0, 0)
}

// RenderAt is RenderTo with the canvas drawn at (x, y) in window pixels.
// Hosts drawing the canvas away from the origin should give the surface a
// matching torch.WithPageOffset so pointer positions line up.
func (c *Canvas) RenderAt(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}
	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if p, ok := tex.(*pendingTexture); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		created, err := creator.NewTextureFromRGBA(p.width, p.height, p.data)
		if err != nil {
			return fmt.Errorf("gpucanvas: create texture: %w", err)
		}
		// gg pixmaps hold premultiplied alpha.
		if pm, ok := created.(interface{ SetPremultiplied(bool) }); ok {
			pm.SetPremultiplied(true)
		}
		c.texture = created
		tex = created

		// Creating the texture waited for the GPU, so the replaced one is idle.
		destroy(c.oldTexture)
		c.oldTexture = nil
	}

	gt, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrNotTexture
	}
	return dc.DrawTexture(gt, x, y)
}
