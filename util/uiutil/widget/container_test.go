package widget

import (
	"runtime"
	"testing"

	"github.com/jmigpin/squidl/util/fontutil"
)

func TestAddNil(t *testing.T) {
	vb := NewVBox(nil, 0)
	vb.Add(nil)
	var b *Button
	vb.Add(b)
	if vb.ChildsLen() != 0 {
		t.Fatal(vb.ChildsLen())
	}
	vb.Add(vb)
	if vb.ChildsLen() != 0 {
		t.Fatal("added to itself")
	}
}

func TestAddTwice(t *testing.T) {
	vb := NewVBox(nil, 0)
	r := newTestRect(1, 1)
	vb.Add(r)
	vb.Add(r)
	if vb.ChildsLen() != 1 {
		t.Fatal(vb.ChildsLen())
	}
	if !r.ManagedByLayout() || r.Parent() != &vb.EmbedNode {
		t.Fatal("bad parent")
	}
}

func TestAddReparent(t *testing.T) {
	a := NewVBox(nil, 0)
	b := NewHBox(nil, 0)
	r0, r1, r2 := newTestRect(1, 1), newTestRect(1, 1), newTestRect(1, 1)
	a.Add(r0)
	a.Add(r1)
	a.Add(r2)
	if r2.Index != 2 {
		t.Fatal(r2.Index)
	}

	b.Add(r1)
	if a.ChildsLen() != 2 || b.ChildsLen() != 1 {
		t.Fatal(a.ChildsLen(), b.ChildsLen())
	}
	if r1.Parent() != &b.EmbedNode || r1.Index != 0 {
		t.Fatal("bad reparent")
	}
	if r2.Index != 1 {
		t.Fatal(r2.Index)
	}
}

func TestRemove(t *testing.T) {
	vb := NewVBox(nil, 0)
	r := newTestRect(1, 1)
	vb.Remove(r) // not a child, logged
	vb.Add(r)
	vb.Remove(r)
	if vb.ChildsLen() != 0 || r.Parent() != nil || r.ManagedByLayout() {
		t.Fatal("bad remove")
	}
}

func TestRootAndParent(t *testing.T) {
	vb := NewVBox(nil, 0)
	hb := NewHBox(nil, 0)
	r := newTestRect(1, 1)
	vb.Add(hb)
	hb.Add(r)

	if r.Root() != Node(vb) {
		t.Fatal("bad root")
	}
	if r.ParentNode() != Node(hb) {
		t.Fatal("bad parent node")
	}
	if vb.Root() != nil || vb.Parent() != nil {
		t.Fatal("expecting no root")
	}
}

//go:noinline
func newOrphanedChild() *Rectangle {
	vb := NewVBox(nil, 0)
	hb := NewHBox(nil, 0)
	r := newTestRect(1, 1)
	vb.Add(hb)
	hb.Add(r)
	return r
}

func TestParentNotKeptAlive(t *testing.T) {
	r := newOrphanedChild()
	for i := 0; i < 10 && r.Parent() != nil; i++ {
		runtime.GC()
	}
	if r.Parent() != nil {
		t.Fatal("parent kept alive by child")
	}
	if r.Root() != nil || r.ParentNode() != nil {
		t.Fatal("expecting no root")
	}
}

func TestFontInherit(t *testing.T) {
	ff := fontutil.DefaultFont().FontFace2(20)
	vb := NewVBox(nil, 0)
	vb.SetFont(ff)
	l := NewLabel(nil, "a")
	vb.Add(l)
	if l.Font != ff {
		t.Fatal("font not inherited")
	}

	own := fontutil.DefaultFont().FontFace2(9)
	l2 := NewLabel(nil, "b")
	l2.Font = own
	vb.Add(l2)
	if l2.Font != own {
		t.Fatal("font overwritten")
	}

	r := newTestRect(1, 1)
	hb := NewHBox(nil, 0)
	hb.Add(r)
	if r.TreeFontFace() != fontutil.DefaultFontFace() {
		t.Fatal("expecting default font")
	}
	vb.Add(hb)
	if r.TreeFontFace() != ff {
		t.Fatal("expecting tree font")
	}
}

func TestChildsLeaf(t *testing.T) {
	if u := NewLabel(nil, "a").Childs(); u != nil {
		t.Fatal(u)
	}
}

func TestApplyTheme(t *testing.T) {
	vb := NewVBox(LightTheme(), 0)
	b := NewButton(LightTheme(), "b")
	vb.Add(b)
	dark := DarkTheme()
	ApplyTheme(vb, dark)
	if vb.BgColor != dark.Container.Bg {
		t.Fatal("container not themed")
	}
	if b.BgColor != dark.Button.Normal || b.Label.TextColor != dark.Button.Text {
		t.Fatal("button not themed")
	}
	ApplyTheme(nil, dark)
}
