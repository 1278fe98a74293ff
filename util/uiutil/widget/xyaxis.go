package widget

import (
	"image"

	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Allows calculations to be done X oriented, and have it translated to Y axis.
// Usefull for layouts that want to layout elements in a vertical or horizontal
// direction depending on a flag.
type XYAxis struct {
	YAxis bool
}

func (xy XYAxis) Point(p image.Point) image.Point {
	if xy.YAxis {
		return image.Point{p.Y, p.X}
	}
	return p
}
func (xy XYAxis) Rect(r geom.Rect) geom.Rect {
	if xy.YAxis {
		return geom.Rect{X: r.Y, Y: r.X, W: r.H, H: r.W}
	}
	return r
}
func (xy XYAxis) Insets(in geom.Insets) geom.Insets {
	if xy.YAxis {
		return geom.Insets{Top: in.Left, Left: in.Top, Bottom: in.Right, Right: in.Bottom}
	}
	return in
}

// Alignments share the same ordering (near, center, far, stretch, justify).
func (xy XYAxis) Align(h HAlign, v VAlign) (HAlign, VAlign) {
	if xy.YAxis {
		return HAlign(v), VAlign(h)
	}
	return h, v
}
