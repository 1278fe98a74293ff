package widget

import (
	"image"

	"github.com/jmigpin/squidl/util/uiutil/geom"
)

type HAlign int

const (
	HLeft HAlign = iota
	HCenter
	HRight
	HStretch
	HJustify
)

type VAlign int

const (
	VTop VAlign = iota
	VCenter
	VBottom
	VStretch
	VJustify
)

//----------

// Places a box of the desired size inside the slot. Center truncates on odd leftovers. Stretch and justify fill the slot on that axis.
func AlignInSlot(slot geom.Rect, desired image.Point, h HAlign, v VAlign) geom.Rect {
	r := geom.Rect{W: desired.X, H: desired.Y}

	switch h {
	case HLeft:
		r.X = slot.X
	case HCenter:
		r.X = slot.X + (slot.W-desired.X)/2
	case HRight:
		r.X = slot.X + slot.W - desired.X
	case HStretch, HJustify:
		r.X = slot.X
		r.W = slot.W
	}

	switch v {
	case VTop:
		r.Y = slot.Y
	case VCenter:
		r.Y = slot.Y + (slot.H-desired.Y)/2
	case VBottom:
		r.Y = slot.Y + slot.H - desired.Y
	case VStretch, VJustify:
		r.Y = slot.Y
		r.H = slot.H
	}

	return r
}
