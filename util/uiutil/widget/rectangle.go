package widget

import (
	"image/color"
)

// Filled box with a declared size.
type Rectangle struct {
	ENode
}

func NewRectangle(c color.NRGBA, w, h int) *Rectangle {
	r := &Rectangle{}
	r.Wrapper = r
	r.BgColor = c
	r.Borderless = true
	r.SetSize(w, h)
	return r
}
