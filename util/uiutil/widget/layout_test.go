package widget

import (
	"image"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

func childRects(n Node) []geom.Rect {
	u := []geom.Rect{}
	for _, c := range n.Childs() {
		u = append(u, c.Rect())
	}
	return u
}

//----------

func TestVBoxAutosize(t *testing.T) {
	vb := NewVBox(nil, 2)
	vb.SetManagedByChilds(true)
	vb.Add(newTestRect(40, 10))
	vb.Add(newTestRect(60, 20))
	vb.Add(newTestRect(50, 30))

	vb.Autosize()
	if r := vb.Rect(); r.W != 70 || r.H != 74 {
		t.Fatal(r)
	}

	want := []geom.Rect{
		{5, 5, 40, 10},
		{5, 17, 60, 20},
		{5, 39, 50, 30},
	}
	if diff := cmp.Diff(want, childRects(vb)); diff != "" {
		t.Fatal(diff)
	}
}

func TestAutosizeIdempotent(t *testing.T) {
	vb := NewVBox(nil, 3)
	vb.SetManagedByChilds(true)
	hb := NewHBox(nil, 1)
	hb.SetManagedByChilds(true)
	hb.Add(newTestRect(10, 7))
	hb.Add(NewLabel(nil, "some\ntext"))
	vb.Add(hb)
	vb.Add(NewButton(nil, "button"))
	g := NewGrid(nil, 2, 4)
	g.SetManagedByChilds(true)
	g.Add(newTestRect(3, 9))
	g.Add(newTestRect(8, 2))
	g.Add(newTestRect(5, 5))
	vb.Add(g)

	vb.Autosize()
	r1, c1 := vb.Rect(), childRects(vb)
	vb.Autosize()
	r2, c2 := vb.Rect(), childRects(vb)
	if r1 != r2 {
		t.Fatal(r1, r2)
	}
	if diff := cmp.Diff(c1, c2); diff != "" {
		t.Fatal(diff)
	}
}

func TestVBoxNotSizedByChilds(t *testing.T) {
	vb := NewVBox(nil, 0)
	vb.SetRect(geom.R(0, 0, 30, 30))
	vb.Add(newTestRect(100, 100))
	vb.Autosize()
	if r := vb.Rect(); r != geom.R(0, 0, 30, 30) {
		t.Fatal(r)
	}
}

func TestHBoxStretch(t *testing.T) {
	hb := NewHBox(nil, 2)
	hb.HAlign = HStretch
	for i := 0; i < 3; i++ {
		hb.Add(newTestRect(10, 10))
	}
	hb.SetRect(geom.R(0, 0, 100, 20))

	want := []geom.Rect{
		{5, 5, 28, 10},
		{35, 5, 28, 10},
		{65, 5, 28, 10},
	}
	got := childRects(hb)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}

	// all the inner width is used, up to the division remainder
	inner := 100 - hb.Padding.WidthSum()
	used := 2 * hb.Spacing
	for _, r := range got {
		used += r.W
	}
	if d := inner - used; d < 0 || d >= len(got) {
		t.Fatalf("inner=%v used=%v", inner, used)
	}
}

func TestVBoxStretch(t *testing.T) {
	vb := NewVBox(nil, 2)
	vb.VAlign = VStretch
	for i := 0; i < 3; i++ {
		vb.Add(newTestRect(10, 10))
	}
	vb.SetRect(geom.R(0, 0, 20, 100))

	want := []geom.Rect{
		{5, 5, 10, 28},
		{5, 35, 10, 28},
		{5, 65, 10, 28},
	}
	got := childRects(vb)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}

	inner := 100 - vb.Padding.HeightSum()
	used := 2 * vb.Spacing
	for _, r := range got {
		used += r.H
	}
	if d := inner - used; d < 0 || d >= len(got) {
		t.Fatalf("inner=%v used=%v", inner, used)
	}
}

func TestHBoxStretchMargins(t *testing.T) {
	hb := NewHBox(nil, 0)
	hb.HAlign = HStretch
	hb.Padding = geom.Insets{}
	a, b := newTestRect(5, 5), newTestRect(5, 5)
	a.Margin = geom.Insets{Left: 4, Right: 6, Top: 1}
	hb.Add(a)
	hb.Add(b)
	hb.SetRect(geom.R(0, 0, 50, 10))

	// (50-10)/2 = 20 per child
	if r := a.Rect(); r != geom.R(4, 1, 20, 5) {
		t.Fatal(r)
	}
	if r := b.Rect(); r != geom.R(30, 0, 20, 5) {
		t.Fatal(r)
	}
}

func TestHBoxNegativeSpaceFloors(t *testing.T) {
	hb := NewHBox(nil, 10)
	hb.HAlign = HStretch
	for i := 0; i < 4; i++ {
		hb.Add(newTestRect(10, 10))
	}
	hb.SetRect(geom.R(0, 0, 12, 12))
	for _, r := range childRects(hb) {
		if r.W < 0 || r.H < 0 {
			t.Fatal(spew.Sdump(childRects(hb)))
		}
	}
}

func TestVBoxChildAlign(t *testing.T) {
	vb := NewVBox(nil, 0)
	a, b, c := newTestRect(10, 10), newTestRect(10, 10), newTestRect(10, 10)
	a.HAlign = HCenter
	b.HAlign = HRight
	c.HAlign = HStretch
	vb.Add(a)
	vb.Add(b)
	vb.Add(c)
	vb.SetRect(geom.R(0, 0, 51, 100))

	want := []geom.Rect{
		{5 + 15, 5, 10, 10}, // (41-10)/2 truncated
		{5 + 31, 15, 10, 10},
		{5, 25, 41, 10},
	}
	if diff := cmp.Diff(want, childRects(vb)); diff != "" {
		t.Fatal(diff)
	}

	// override wins
	h := HLeft
	vb.SetChildAlignOverride(&h, nil)
	vb.SetRect(geom.R(0, 0, 51, 100))
	for _, r := range childRects(vb) {
		if r.X != 5 || r.W != 10 {
			t.Fatal(spew.Sdump(childRects(vb)))
		}
	}
}

//----------

func TestGrid(t *testing.T) {
	g := NewGrid(nil, 3, 5)
	for i := 0; i < 5; i++ {
		h := 10
		if i == 1 {
			h = 20
		}
		g.Add(newTestRect(20, h))
	}
	g.SetRect(geom.R(10, 10, 120, 100))

	// cell width: (110-2*5)/3 = 33
	want := []geom.Rect{
		{15, 15, 20, 10},
		{53, 15, 20, 20},
		{91, 15, 20, 10},
		{15, 40, 20, 10},
		{53, 40, 20, 10},
	}
	if diff := cmp.Diff(want, childRects(g)); diff != "" {
		t.Fatal(diff)
	}
}

func TestGridHomogeneous(t *testing.T) {
	g := NewGrid(nil, 3, 5)
	for i := 0; i < 7; i++ {
		g.Add(newTestRect(5+i*3, 10))
	}
	h := HStretch
	g.SetChildAlignOverride(&h, nil)
	g.SetRect(geom.R(0, 0, 120, 100))
	for _, r := range childRects(g) {
		if r.W != 33 {
			t.Fatal(spew.Sdump(childRects(g)))
		}
	}
}

func TestGridRowStretch(t *testing.T) {
	g := NewGrid(nil, 2, 0)
	g.Padding = geom.Insets{}
	a, b := newTestRect(10, 10), newTestRect(10, 30)
	a.VAlign = VStretch
	g.Add(a)
	g.Add(b)
	g.SetRect(geom.R(0, 0, 40, 40))
	if r := a.Rect(); r.H != 30 {
		t.Fatal(r)
	}
}

func TestGridAutosize(t *testing.T) {
	g := NewGrid(nil, 3, 5)
	g.SetManagedByChilds(true)
	for i := 0; i < 5; i++ {
		h := 10
		if i == 1 {
			h = 20
		}
		g.Add(newTestRect(20, h))
	}
	g.Autosize()
	// 10 + 3*20 + 2*5, 10 + 20 + 10 + 5
	if r := g.Rect(); r.W != 80 || r.H != 45 {
		t.Fatal(r)
	}

	e := NewGrid(nil, 3, 5)
	e.SetManagedByChilds(true)
	e.Autosize()
	if r := e.Rect(); r.W != 10 || r.H != 10 {
		t.Fatal(r)
	}
}

func TestGridColumnsClamp(t *testing.T) {
	g := NewGrid(nil, 0, 0)
	g.Padding = geom.Insets{}
	g.Add(newTestRect(10, 10))
	g.Add(newTestRect(10, 10))
	g.SetRect(geom.R(0, 0, 50, 50))
	want := []geom.Rect{{0, 0, 10, 10}, {0, 10, 10, 10}}
	if diff := cmp.Diff(want, childRects(g)); diff != "" {
		t.Fatal(diff)
	}
}

//----------

func TestClamping(t *testing.T) {
	r := newTestRect(50, 50)
	r.SetMaxSize(30, 100)
	if got := r.Rect().Size(); got != (image.Point{30, 50}) {
		t.Fatal(got)
	}
	r.SetMinSize(40, 60)
	// max wins over min
	if got := r.Rect().Size(); got != (image.Point{30, 60}) {
		t.Fatal(got)
	}

	r2 := newTestRect(0, 0)
	r2.SetRect(geom.R(0, 0, -5, -7))
	if got := r2.Rect().Size(); got != (image.Point{0, 0}) {
		t.Fatal(got)
	}

	r3 := newTestRect(0, 0)
	r3.SetRect(geom.R(0, 0, DefaultMaxSize+10, 1))
	if got := r3.Rect().W; got != DefaultMaxSize {
		t.Fatal(got)
	}
}

func TestAutosizeClamped(t *testing.T) {
	vb := NewVBox(nil, 0)
	vb.SetManagedByChilds(true)
	vb.SetMaxSize(30, 30)
	vb.Add(newTestRect(100, 100))
	vb.Autosize()
	if got := vb.Rect().Size(); got != (image.Point{30, 30}) {
		t.Fatal(got)
	}
}

//----------

func TestAlignInSlot(t *testing.T) {
	slot := geom.R(10, 20, 101, 50)
	d := image.Point{20, 10}
	type tcase struct {
		h    HAlign
		v    VAlign
		want geom.Rect
	}
	tcs := []tcase{
		{HLeft, VTop, geom.R(10, 20, 20, 10)},
		{HCenter, VCenter, geom.R(10+40, 20+20, 20, 10)},
		{HRight, VBottom, geom.R(91, 60, 20, 10)},
		{HStretch, VStretch, geom.R(10, 20, 101, 50)},
		{HJustify, VJustify, geom.R(10, 20, 101, 50)},
	}
	for i, tc := range tcs {
		got := AlignInSlot(slot, d, tc.h, tc.v)
		if got != tc.want {
			t.Fatalf("%v: %v != %v", i, got, tc.want)
		}
	}
}

//----------

func TestAnchorStretch(t *testing.T) {
	p := NewPanel(nil)
	p.SetRect(geom.R(0, 0, 200, 100))
	c := newTestRect(0, 0)
	c.SetRect(geom.R(10, 0, 180, 20))
	c.Anchor = AnchorLeft | AnchorRight
	p.Add(c)

	p.SetRect(geom.R(0, 0, 200, 100))
	if r := c.Rect(); r != geom.R(10, 0, 180, 20) {
		t.Fatal(r)
	}
	p.SetRect(geom.R(0, 0, 300, 100))
	if r := c.Rect(); r != geom.R(10, 0, 280, 20) {
		t.Fatal(r)
	}
	// too small floors to zero
	p.SetRect(geom.R(0, 0, 15, 100))
	if r := c.Rect(); r.W != 0 {
		t.Fatal(r)
	}
}

func TestAnchorRightBottom(t *testing.T) {
	c := newTestRect(0, 0)
	c.SetRect(geom.R(150, 70, 40, 20))
	c.Anchor = AnchorRight | AnchorBottom

	c.UpdateAnchoredRect(geom.R(0, 0, 200, 100))
	if r := c.Rect(); r != geom.R(150, 70, 40, 20) {
		t.Fatal(r)
	}
	c.UpdateAnchoredRect(geom.R(0, 0, 300, 200))
	if r := c.Rect(); r != geom.R(250, 170, 40, 20) {
		t.Fatal(r)
	}
	o, ok := c.AnchorOffsets()
	if !ok || o != (geom.Insets{Top: 70, Left: 150, Bottom: 10, Right: 10}) {
		t.Fatal(o, ok)
	}
}

func TestAnchorOffsetsCapturedOnce(t *testing.T) {
	c := newTestRect(0, 0)
	c.SetRect(geom.R(10, 10, 20, 20))
	c.Anchor = AnchorLeft | AnchorTop | AnchorHCenter
	c.UpdateAnchoredRect(geom.R(0, 0, 100, 100))

	c.SetRect(geom.R(50, 50, 20, 20))
	c.UpdateAnchoredRect(geom.R(5, 5, 100, 100))
	if r := c.Rect(); r != geom.R(15, 15, 20, 20) {
		t.Fatal(r)
	}
}

func TestAnchorUnmanagedUpdate(t *testing.T) {
	root := NewPanel(nil)
	root.SetRect(geom.R(0, 0, 100, 100))
	c := newTestRect(0, 0)
	c.SetRect(geom.R(0, 0, 100, 10))
	c.Anchor = AnchorLeft | AnchorRight
	root.Add(c)
	c.SetManagedByLayout(false)

	root.SetRect(geom.R(0, 0, 100, 100)) // captures
	root.rect.W = 150                    // no layout pass
	c.Update(NewContext(), &recSurface{})
	if r := c.Rect(); r.W != 150 {
		t.Fatal(r)
	}
}

//----------

func TestPanelAutosize(t *testing.T) {
	p := NewPanel(nil)
	p.SetManagedByChilds(true)
	p.SetRect(geom.R(10, 10, 0, 0))
	a := newTestRect(0, 0)
	a.SetRect(geom.R(20, 20, 10, 10))
	b := newTestRect(0, 0)
	b.SetRect(geom.R(40, 15, 5, 30))
	p.Add(a)
	p.Add(b)
	p.Autosize()
	if r := p.Rect(); r != geom.R(10, 10, 35, 35) {
		t.Fatal(r)
	}
}

func TestRootUpdateRelayout(t *testing.T) {
	vb := NewVBox(nil, 0)
	vb.SetManagedByChilds(true)
	a := newTestRect(10, 10)
	vb.Add(a)

	s := &recSurface{}
	if vb.Update(NewContext(), s) {
		t.Fatal("not expecting active")
	}
	if r := vb.Rect(); r.W != 20 || r.H != 20 {
		t.Fatal(r)
	}
	if r := a.Rect(); r != geom.R(5, 5, 10, 10) {
		t.Fatal(r)
	}
	if len(s.ops) == 0 {
		t.Fatal("expecting paint ops")
	}
}
