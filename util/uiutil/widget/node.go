package widget

import (
	"image"
	"image/color"
	"log"
	"reflect"
	"weak"

	"github.com/jmigpin/squidl/util/fontutil"
	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/mathutil"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

type Node interface {
	fullNode() // ensure that EmbedNode can't be directly assigned to a Node

	Embed() *EmbedNode

	Rect() geom.Rect
	SetRect(r geom.Rect)
	Autosize()
	UpdateAnchoredRect(parent geom.Rect)

	OnEvent(ev event.Event)
	OnThemeChange(t *Theme)

	// Relayout if needed, paint, update childs. Returns if the node (or a child) is visually active (hovered, pressed).
	Update(ctx *Context, s Surface) bool
	Paint(ctx *Context, s Surface)

	// Empty for nodes that can't have childs.
	Childs() []Node
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

const DefaultMaxSize = 10000

type EmbedNode struct {
	Wrapper Node

	// Declared size. A zero axis is computed from content by Autosize.
	Size     image.Point
	Position image.Point // local position, kept for the application

	HAlign HAlign
	VAlign VAlign
	Anchor Anchor

	Margin  geom.Insets
	Padding geom.Insets

	Font  *fontutil.FontFace
	Index int // position in the parent childs list

	BgColor     color.NRGBA
	BorderColor color.NRGBA
	Borderless  bool
	Backdrop    Node

	rect       geom.Rect
	minSize    image.Point
	maxSize    image.Point
	maxSizeSet bool

	// stored inverted so the zero value is opaque
	transparency       float64
	borderTransparency float64

	anchorOffsets   geom.Insets
	anchorOffsetsOk bool

	managedByLayout bool
	managedByChilds bool

	// only the parent side holds strong references
	parent weak.Pointer[EmbedNode]
	childs []*EmbedNode
}

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

//----------

func (en *EmbedNode) Rect() geom.Rect {
	return en.rect
}

func (en *EmbedNode) SetRect(r geom.Rect) {
	en.rect = r
	en.ApplyConstraints()
}

// Sets the declared size and the current rect size.
func (en *EmbedNode) SetSize(w, h int) {
	en.Size = image.Point{w, h}
	r := en.rect
	r.W, r.H = w, h
	en.Wrapper.SetRect(r)
}

func (en *EmbedNode) SetPos(x, y int) {
	r := en.rect
	r.X, r.Y = x, y
	en.Wrapper.SetRect(r)
}

//----------

func (en *EmbedNode) MinSize() image.Point {
	return en.minSize
}
func (en *EmbedNode) MaxSize() image.Point {
	if !en.maxSizeSet {
		return image.Point{DefaultMaxSize, DefaultMaxSize}
	}
	return en.maxSize
}
func (en *EmbedNode) SetMinSize(w, h int) {
	en.minSize = image.Point{max(0, w), max(0, h)}
	en.ApplyConstraints()
}
func (en *EmbedNode) SetMaxSize(w, h int) {
	en.maxSize = image.Point{max(0, w), max(0, h)}
	en.maxSizeSet = true
	en.ApplyConstraints()
}

// Clamps the rect size into [min,max] per axis. Max wins over min.
func (en *EmbedNode) ApplyConstraints() {
	min, max := en.MinSize(), en.MaxSize()
	en.rect.W = clampSize(en.rect.W, min.X, max.X)
	en.rect.H = clampSize(en.rect.H, min.Y, max.Y)
}

func clampSize(v, min, max int) int {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

//----------

// Applies the declared size. Content based nodes override.
func (en *EmbedNode) Autosize() {
	r := en.rect
	if en.Size.X > 0 {
		r.W = en.Size.X
	}
	if en.Size.Y > 0 {
		r.H = en.Size.Y
	}
	en.SetRect(r)
}

//----------

func (en *EmbedNode) Opacity() float64 {
	return 1 - en.transparency
}
func (en *EmbedNode) SetOpacity(v float64) {
	en.transparency = 1 - mathutil.Limit(v, 0, 1)
}
func (en *EmbedNode) BorderOpacity() float64 {
	return 1 - en.borderTransparency
}
func (en *EmbedNode) SetBorderOpacity(v float64) {
	en.borderTransparency = 1 - mathutil.Limit(v, 0, 1)
}

//----------

func (en *EmbedNode) ManagedByLayout() bool {
	return en.managedByLayout
}
func (en *EmbedNode) SetManagedByLayout(v bool) {
	en.managedByLayout = v
}

// Sized-by-childs (autosize) mode: the node rect is computed from the childs instead of being imposed on them.
func (en *EmbedNode) ManagedByChilds() bool {
	return en.managedByChilds
}
func (en *EmbedNode) SetManagedByChilds(v bool) {
	en.managedByChilds = v
}

//----------

// Sets the font on this node and on the childs that have none.
func (en *EmbedNode) SetFont(ff *fontutil.FontFace) {
	en.Font = ff
	en.Iterate2(func(c *EmbedNode) {
		if c.Font == nil {
			c.SetFont(ff)
		}
	})
}

// First font found walking up the tree, or the default font.
func (en *EmbedNode) TreeFontFace() *fontutil.FontFace {
	for n := en; n != nil; n = n.Parent() {
		if n.Font != nil {
			return n.Font
		}
	}
	return fontutil.DefaultFontFace()
}

//----------

// Nil if there is no parent or if the parent is gone.
func (en *EmbedNode) Parent() *EmbedNode {
	return en.parent.Value()
}

func (en *EmbedNode) ParentNode() Node {
	if p := en.Parent(); p != nil {
		return p.Wrapper
	}
	return nil
}

// Topmost ancestor. Nil if the node has no parent.
func (en *EmbedNode) Root() Node {
	p := en.Parent()
	if p == nil {
		return nil
	}
	for {
		next := p.Parent()
		if next == nil {
			return p.Wrapper
		}
		p = next
	}
}

//----------

func (en *EmbedNode) appendChild(child Node) {
	ce := child.Embed()
	ce.Wrapper = child // auto set the wrapper
	en.childs = append(en.childs, ce)
	ce.parent = weak.Make(en)
	ce.Index = len(en.childs) - 1
}

func (en *EmbedNode) removeChild(ce *EmbedNode) {
	i := en.childIndex(ce)
	if i < 0 {
		return
	}
	// new slice: iterations in progress keep the old one
	u := make([]*EmbedNode, 0, len(en.childs)-1)
	u = append(u, en.childs[:i]...)
	en.childs = append(u, en.childs[i+1:]...)
	ce.parent = weak.Pointer[EmbedNode]{}
	ce.managedByLayout = false
	en.reindexChilds()
}

func (en *EmbedNode) childIndex(ce *EmbedNode) int {
	if ce.Index >= 0 && ce.Index < len(en.childs) && en.childs[ce.Index] == ce {
		return ce.Index
	}
	for i, c := range en.childs {
		if c == ce {
			return i
		}
	}
	return -1
}

func (en *EmbedNode) reindexChilds() {
	for i, c := range en.childs {
		c.Index = i
	}
}

func (en *EmbedNode) ChildsLen() int {
	return len(en.childs)
}

//----------

func (en *EmbedNode) Iterate2(f func(*EmbedNode)) {
	for _, c := range en.childs {
		f(c)
	}
}
func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	for _, c := range en.childs {
		f(c.Wrapper)
	}
}

func (en *EmbedNode) Childs() []Node {
	if len(en.childs) == 0 {
		return nil
	}
	w := make([]Node, 0, len(en.childs))
	en.IterateWrappers2(func(c Node) {
		w = append(w, c)
	})
	return w
}

//----------

func (en *EmbedNode) OnEvent(ev event.Event) {
}

func (en *EmbedNode) OnThemeChange(t *Theme) {
}

//----------

func (en *EmbedNode) Update(ctx *Context, s Surface) bool {
	en.updateAnchors()
	en.Wrapper.Paint(ctx, s)
	return en.UpdateChilds(ctx, s)
}

// Nodes not positioned by a layout follow their anchors against the parent rect. Returns true if the rect was recomputed.
func (en *EmbedNode) updateAnchors() bool {
	if en.Anchor == AnchorNone || en.managedByLayout {
		return false
	}
	p := en.Parent()
	if p == nil {
		return false
	}
	en.Wrapper.UpdateAnchoredRect(p.Rect())
	return true
}

func (en *EmbedNode) UpdateChilds(ctx *Context, s Surface) bool {
	active := false
	en.IterateWrappers2(func(c Node) {
		if c.Update(ctx, s) {
			active = true
		}
	})
	return active
}

//----------

func (en *EmbedNode) Paint(ctx *Context, s Surface) {
	en.PaintBackground(ctx, s)
}

// Paints the backdrop if present, otherwise the background and border colors.
func (en *EmbedNode) PaintBackground(ctx *Context, s Surface) {
	if en.Backdrop != nil {
		be := en.Backdrop.Embed()
		be.SetOpacity(en.Opacity())
		en.Backdrop.SetRect(en.rect)
		en.Backdrop.Update(ctx, s)
		return
	}
	en.PaintFill(s, en.BgColor)
}

// Paints the given background color and the node border.
func (en *EmbedNode) PaintFill(s Surface, bg color.NRGBA) {
	en.PaintFillBorder(s, bg, en.BorderColor)
}

func (en *EmbedNode) PaintFillBorder(s Surface, bg, border color.NRGBA) {
	if bg.A > 0 {
		s.DrawFilledRect(en.rect, imageutil.Fade(bg, en.Opacity()))
	}
	if !en.Borderless && border.A > 0 && en.BorderOpacity() > 0 {
		s.DrawOutlineRect(en.rect, imageutil.Fade(border, en.BorderOpacity()))
	}
}

//----------

// Also detects typed nil pointers stored in the interface.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func logNilNode(op string) {
	log.Printf("widget: %v: nil node", op)
}
