package widget

import "github.com/jmigpin/squidl/util/uiutil/geom"

type Anchor uint8

const (
	AnchorNone Anchor = 0
	AnchorLeft Anchor = 1 << (iota - 1)
	AnchorRight
	AnchorTop
	AnchorBottom
	AnchorHCenter // accepted, has no effect
	AnchorVCenter // accepted, has no effect
)

func (a Anchor) Has(b Anchor) bool {
	return a&b == b
}
func (a Anchor) HasAny(b Anchor) bool {
	return a&b != 0
}

//----------

// The offsets to the parent edges are captured on the first call only, for the lifetime of the node (reparenting doesn't reset them).
func (en *EmbedNode) UpdateAnchoredRect(pr geom.Rect) {
	r := en.rect
	if !en.anchorOffsetsOk {
		en.anchorOffsets = geom.Insets{
			Left:   r.X - pr.X,
			Right:  pr.Right() - r.Right(),
			Top:    r.Y - pr.Y,
			Bottom: pr.Bottom() - r.Bottom(),
		}
		en.anchorOffsetsOk = true
	}
	o := en.anchorOffsets
	a := en.Anchor

	switch {
	case a.Has(AnchorLeft | AnchorRight):
		r.X = pr.X + o.Left
		r.W = pr.W - o.Left - o.Right
	case a.Has(AnchorLeft):
		r.X = pr.X + o.Left
	case a.Has(AnchorRight):
		r.X = pr.Right() - (r.W + o.Right)
	}

	switch {
	case a.Has(AnchorTop | AnchorBottom):
		r.Y = pr.Y + o.Top
		r.H = pr.H - o.Top - o.Bottom
	case a.Has(AnchorTop):
		r.Y = pr.Y + o.Top
	case a.Has(AnchorBottom):
		r.Y = pr.Bottom() - (r.H + o.Bottom)
	}

	en.Wrapper.SetRect(r.Floor())
}

func (en *EmbedNode) AnchorOffsets() (geom.Insets, bool) {
	return en.anchorOffsets, en.anchorOffsetsOk
}
