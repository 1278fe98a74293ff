package widget

import (
	"image"

	"github.com/jmigpin/squidl/util/mathutil"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Homogeneous cell width grid. Rows are as tall as their tallest child.
type Grid struct {
	Container
	Columns int // values below 1 are used as 1
}

func NewGrid(t *Theme, columns, spacing int) *Grid {
	g := &Grid{Columns: columns}
	g.init(g, t)
	g.Spacing = spacing
	return g
}

func (g *Grid) columns() int {
	return max(1, g.Columns)
}

//----------

func (g *Grid) SetRect(r geom.Rect) {
	g.EmbedNode.SetRect(r)
	g.arrange()
}

func (g *Grid) arrange() {
	g.autosizeChilds()

	r := g.Rect()
	cols := g.columns()
	innerW := max(0, r.W-g.Padding.WidthSum())
	cellW := max(0, mathutil.DivFloor(innerW-(cols-1)*g.Spacing, cols))

	managed := g.managedChilds()
	y := r.Y + g.Padding.Top
	for _, row := range gridRows(managed, cols) {
		rowH := gridRowHeight(row)
		for col, ce := range row {
			cr := ce.Wrapper.Rect()
			ha, va := g.childAlign(ce)
			h := cr.H
			if va == VStretch || va == VJustify {
				h = rowH - ce.Margin.HeightSum()
			}
			slot := geom.Rect{
				X: r.X + g.Padding.Left + col*(cellW+g.Spacing) + ce.Margin.Left,
				Y: y + ce.Margin.Top,
				W: cellW - ce.Margin.WidthSum(),
				H: h,
			}
			desired := image.Point{cr.W, cr.H}
			ce.Wrapper.SetRect(AlignInSlot(slot, desired, ha, va).Floor())
		}
		y += rowH + g.Spacing
	}
}

//----------

func (g *Grid) Autosize() {
	if !g.managedByChilds {
		g.autosizeChildsOnly()
		return
	}

	cols := g.columns()
	managed := g.managedChilds()

	maxCellW := 0
	for _, ce := range managed {
		ce.Wrapper.Autosize()
		cr := ce.Wrapper.Rect()
		maxCellW = max(maxCellW, cr.W+ce.Margin.WidthSum())
	}

	w := g.Padding.WidthSum()
	h := g.Padding.HeightSum()
	if len(managed) > 0 {
		w += cols*maxCellW + (cols-1)*g.Spacing
		rows := gridRows(managed, cols)
		for _, row := range rows {
			h += gridRowHeight(row)
		}
		h += (len(rows) - 1) * g.Spacing
	}

	r := g.Rect()
	r.W, r.H = w, h
	g.Wrapper.SetRect(r)
}

//----------

func gridRows(u []*EmbedNode, cols int) [][]*EmbedNode {
	rows := [][]*EmbedNode{}
	for i := 0; i < len(u); i += cols {
		rows = append(rows, u[i:min(i+cols, len(u))])
	}
	return rows
}

func gridRowHeight(row []*EmbedNode) int {
	h := 0
	for _, ce := range row {
		h = max(h, ce.Wrapper.Rect().H+ce.Margin.HeightSum())
	}
	return h
}
