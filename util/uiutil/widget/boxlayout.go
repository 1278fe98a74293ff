package widget

import (
	"image"

	"github.com/jmigpin/squidl/util/mathutil"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Stacks the childs horizontally, or vertically if YAxis is set.
type BoxLayout struct {
	Container
	YAxis bool
}

func NewVBox(t *Theme, spacing int) *BoxLayout {
	return newBoxLayout(t, spacing, true)
}

func NewHBox(t *Theme, spacing int) *BoxLayout {
	return newBoxLayout(t, spacing, false)
}

func newBoxLayout(t *Theme, spacing int, yAxis bool) *BoxLayout {
	bl := &BoxLayout{YAxis: yAxis}
	bl.init(bl, t)
	bl.Spacing = spacing
	return bl
}

//----------

func (bl *BoxLayout) SetRect(r geom.Rect) {
	bl.EmbedNode.SetRect(r)
	bl.arrange()
}

// Computed X oriented.
func (bl *BoxLayout) arrange() {
	xya := XYAxis{bl.YAxis}

	bl.autosizeChilds()

	r := xya.Rect(bl.Rect())
	pad := xya.Insets(bl.Padding)
	innerW := max(0, r.W-pad.WidthSum())
	innerH := max(0, r.H-pad.HeightSum())

	managed := bl.managedChilds()

	stretch := bl.stackAlign() == HStretch
	slotW := 0
	if stretch && len(managed) > 0 {
		margins := 0
		for _, ce := range managed {
			margins += xya.Insets(ce.Margin).WidthSum()
		}
		gaps := len(managed) - 1
		avail := innerW - gaps*bl.Spacing - margins
		slotW = max(0, mathutil.DivFloor(avail, len(managed)))
	}

	x := r.X + pad.Left
	for _, ce := range managed {
		cr := xya.Rect(ce.Wrapper.Rect())
		m := xya.Insets(ce.Margin)

		w := cr.W
		if stretch {
			w = slotW
		}
		slot := geom.Rect{
			X: x + m.Left,
			Y: r.Y + pad.Top + m.Top,
			W: w,
			H: innerH - m.HeightSum(),
		}
		desired := image.Point{w, cr.H}
		ha, va := xya.Align(bl.childAlign(ce))
		r2 := AlignInSlot(slot, desired, ha, va)
		ce.Wrapper.SetRect(xya.Rect(r2).Floor())

		x += w + m.WidthSum() + bl.Spacing
	}
}

// Container alignment on the stacking axis, X oriented.
func (bl *BoxLayout) stackAlign() HAlign {
	if bl.YAxis {
		return HAlign(bl.VAlign)
	}
	return bl.HAlign
}

//----------

func (bl *BoxLayout) Autosize() {
	if !bl.managedByChilds {
		bl.autosizeChildsOnly()
		return
	}

	xya := XYAxis{bl.YAxis}
	pad := xya.Insets(bl.Padding)

	w, h := pad.WidthSum(), 0
	for i, ce := range bl.managedChilds() {
		ce.Wrapper.Autosize()
		cr := xya.Rect(ce.Wrapper.Rect())
		m := xya.Insets(ce.Margin)
		w += cr.W + m.WidthSum()
		if i > 0 {
			w += bl.Spacing
		}
		h = max(h, cr.H+m.HeightSum())
	}
	h += pad.HeightSum()

	r := bl.Rect()
	size := xya.Point(image.Point{w, h})
	r.W, r.H = size.X, size.Y
	bl.Wrapper.SetRect(r)
}
