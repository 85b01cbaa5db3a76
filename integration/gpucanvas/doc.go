// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpucanvas hosts an interactive torch.Surface in a gogpu window.
//
// A Canvas owns a gg.Context and the Surface wrapping it. Host input is fed
// to Dispatch; once per frame RenderTo repaints the surface if any object
// asked for a redraw and uploads the pixels to a GPU texture:
//
//	Dispatch (events) -> Surface.Draw (gg, CPU) -> texture upload -> window
//
// # Usage
//
//	canvas, err := gpucanvas.New(app.GPUContextProvider(), 800, 600,
//	    torch.WithInputFocus(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer canvas.Close()
//
//	canvas.Surface().Add("dot", dot)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// The package only depends on gpucontext interfaces, so it does not import
// gogpu itself.
//
// Canvas is not safe for concurrent use. Dispatch and RenderTo are expected
// to run on the window's event loop.
package gpucanvas
