package widget

import (
	"log"

	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Base of the layouts. Owns an ordered childs list: the order is the z-order for dispatch and the position order for stacking.
type Container struct {
	ENode
	Spacing int

	childHAlign *HAlign
	childVAlign *VAlign
}

func (c *Container) init(wrapper Node, t *Theme) {
	c.Wrapper = wrapper
	c.Padding = geom.Uniform(DefaultPadding)
	c.Spacing = 1
	wrapper.OnThemeChange(themeOrDefault(t))
}

//----------

// Appends the child. Nil childs are ignored. Adding a child already in this container is a no-op; a child of another container is moved (its anchor offsets are kept).
func (c *Container) Add(child Node) {
	if isNilNode(child) {
		logNilNode("add")
		return
	}
	ce := child.Embed()
	if ce == &c.EmbedNode {
		log.Printf("widget: add: node into itself")
		return
	}
	if p := ce.Parent(); p != nil {
		if p == &c.EmbedNode {
			return
		}
		p.removeChild(ce)
	}
	c.appendChild(child)
	ce.managedByLayout = true
	if ce.Font == nil && c.Font != nil {
		ce.SetFont(c.Font)
	}
}

func (c *Container) Remove(child Node) {
	if isNilNode(child) {
		logNilNode("remove")
		return
	}
	ce := child.Embed()
	if ce.Parent() != &c.EmbedNode {
		log.Printf("widget: remove: not a child")
		return
	}
	c.removeChild(ce)
}

//----------

// Alignment applied to all childs regardless of their own. Nil clears.
func (c *Container) SetChildAlignOverride(h *HAlign, v *VAlign) {
	c.childHAlign = h
	c.childVAlign = v
}

func (c *Container) childAlign(ce *EmbedNode) (HAlign, VAlign) {
	h, v := ce.HAlign, ce.VAlign
	if c.childHAlign != nil {
		h = *c.childHAlign
	}
	if c.childVAlign != nil {
		v = *c.childVAlign
	}
	return h, v
}

// Childs positioned by this container, in list order. Updates their index.
func (c *Container) managedChilds() []*EmbedNode {
	u := make([]*EmbedNode, 0, len(c.childs))
	i := 0
	c.Iterate2(func(ce *EmbedNode) {
		ce.Index = i
		i++
		if ce.managedByLayout {
			u = append(u, ce)
		}
	})
	return u
}

func (c *Container) autosizeChilds() {
	c.IterateWrappers2(func(n Node) {
		n.Autosize()
	})
}

// Forwards autosize to the childs and reapplies the constraints. Used when the container is not sized by its childs.
func (c *Container) autosizeChildsOnly() {
	c.autosizeChilds()
	c.ApplyConstraints()
}

//----------

func (c *Container) Update(ctx *Context, s Surface) bool {
	if !c.updateAnchors() && !c.managedByLayout {
		c.relayout()
	}
	c.Wrapper.Paint(ctx, s)
	return c.UpdateChilds(ctx, s)
}

// Containers not positioned by a parent layout run their own layout pass.
func (c *Container) relayout() {
	if c.managedByChilds {
		c.Wrapper.Autosize()
		return
	}
	c.Wrapper.SetRect(c.Rect())
}

//----------

func (c *Container) OnThemeChange(t *Theme) {
	c.BgColor = t.Container.Bg
	c.BorderColor = t.Container.Border
}
