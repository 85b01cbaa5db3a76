package shape

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/torch"
	"github.com/gogpu/torch/event"
)

// Image draws a picture scaled into the box at (X, Y) of size W by H.
// A zero W or H uses the source size.
type Image struct {
	torch.Object

	X, Y, W, H float64
	Src        image.Image

	// AlphaHit makes fully transparent pixels of Src ignore the pointer.
	AlphaHit bool

	// Scaler resamples Src when the box differs from its size.
	// Defaults to draw.ApproxBiLinear.
	Scaler draw.Transformer

	cache    *gg.ImageBuf
	cacheSrc image.Image
	cacheW   int
	cacheH   int
}

// NewImage returns an image drawn at its natural size at (x, y).
func NewImage(x, y float64, src image.Image) *Image {
	return &Image{X: x, Y: y, Src: src}
}

// Base implements torch.Drawable.
func (im *Image) Base() *torch.Object { return &im.Object }

func (im *Image) size() (w, h float64) {
	if im.Src == nil {
		return 0, 0
	}
	b := im.Src.Bounds()
	w, h = im.W, im.H
	if w == 0 {
		w = float64(b.Dx())
	}
	if h == 0 {
		h = float64(b.Dy())
	}
	return w, h
}

// Draw implements torch.Drawable.
func (im *Image) Draw(s *torch.Surface) {
	dc := s.DC()
	if dc == nil || im.Src == nil {
		return
	}
	if buf := im.buffer(); buf != nil {
		dc.DrawImage(buf, im.X, im.Y)
	}
}

// buffer returns Src resampled to the box, reusing the last result while
// neither the source nor the box changed.
func (im *Image) buffer() *gg.ImageBuf {
	w, h := im.size()
	iw, ih := int(w+0.5), int(h+0.5)
	if iw <= 0 || ih <= 0 {
		return nil
	}
	if im.cache != nil && im.cacheSrc == im.Src && im.cacheW == iw && im.cacheH == ih {
		return im.cache
	}
	im.cache = gg.ImageBufFromImage(im.Resampled())
	im.cacheSrc, im.cacheW, im.cacheH = im.Src, iw, ih
	return im.cache
}

// Resampled returns Src scaled to the box size. It returns Src itself when
// no scaling is needed.
func (im *Image) Resampled() image.Image {
	w, h := im.size()
	iw, ih := int(w+0.5), int(h+0.5)
	sr := im.Src.Bounds()
	if iw == sr.Dx() && ih == sr.Dy() {
		return im.Src
	}
	scaler := im.Scaler
	if scaler == nil {
		scaler = draw.ApproxBiLinear
	}
	dst := image.NewRGBA(image.Rect(0, 0, iw, ih))
	s2d := torch.Scale(float64(iw)/float64(sr.Dx()), float64(ih)/float64(sr.Dy())).
		Multiply(torch.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))
	scaler.Transform(dst, s2d.Aff3(), im.Src, sr, draw.Over, nil)
	return dst
}

// HitDetect reports whether (x, y) lies in the box and, with AlphaHit, on
// a pixel that is not fully transparent.
func (im *Image) HitDetect(x, y float64, _ *torch.Surface, _ *event.Event) bool {
	w, h := im.size()
	if w <= 0 || h <= 0 {
		return false
	}
	if x < im.X || x >= im.X+w || y < im.Y || y >= im.Y+h {
		return false
	}
	if !im.AlphaHit {
		return true
	}
	b := im.Src.Bounds()
	sx := b.Min.X + int((x-im.X)*float64(b.Dx())/w)
	sy := b.Min.Y + int((y-im.Y)*float64(b.Dy())/h)
	return color.AlphaModel.Convert(im.Src.At(sx, sy)).(color.Alpha).A > 0
}
