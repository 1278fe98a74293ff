package widget

import (
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Doesn't stack. Anchored childs follow the panel rect, the others keep the rect given by the application.
type Panel struct {
	Container
}

func NewPanel(t *Theme) *Panel {
	p := &Panel{}
	p.init(p, t)
	p.Padding = geom.Insets{}
	return p
}

func (p *Panel) SetRect(r geom.Rect) {
	p.EmbedNode.SetRect(r)
	p.autosizeChilds()
	pr := p.Rect()
	p.Iterate2(func(ce *EmbedNode) {
		if ce.Anchor != AnchorNone {
			ce.Wrapper.UpdateAnchoredRect(pr)
		}
	})
}

// In sized-by-childs mode the panel covers the childs union plus padding.
func (p *Panel) Autosize() {
	if !p.managedByChilds {
		p.autosizeChildsOnly()
		return
	}
	p.autosizeChilds()
	r := p.Rect()
	var u geom.Rect
	p.Iterate2(func(ce *EmbedNode) {
		u = u.Union(ce.Rect())
	})
	w := p.Padding.WidthSum()
	h := p.Padding.HeightSum()
	if !u.Empty() {
		w = max(w, u.Right()-r.X+p.Padding.Right)
		h = max(h, u.Bottom()-r.Y+p.Padding.Bottom)
	}
	r.W, r.H = w, h
	p.Wrapper.SetRect(r)
}
