package widget

import (
	"image"
	"image/color"
)

// Image stretched into the rect. Usually a full window child anchored on all sides, or the Backdrop of another node.
type Backdrop struct {
	ENode
	Image image.Image
}

func NewBackdrop(img image.Image) *Backdrop {
	b := &Backdrop{Image: img}
	b.Wrapper = b
	b.BgColor = color.NRGBA{100, 100, 100, 50}
	b.Borderless = true
	return b
}

func (b *Backdrop) Paint(ctx *Context, s Surface) {
	b.PaintFill(s, b.BgColor)
	if b.Image == nil || b.rect.Empty() {
		return
	}
	s.DrawTexture(b.Image, b.Image.Bounds(), b.rect, b.Opacity())
}
