package xinput

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/squidl/util/uiutil/event"
)

// keycodes 8..11 with 6 keysyms each
func newTestKMap() *KMap {
	return &KMap{
		minKeycode: 8,
		stride:     6,
		keysyms: []xproto.Keysym{
			0x61, 0x41, 0, 0, 0x40, 0, // a A, altgr @
			0x32, 0x22, 0, 0, 0, 0, // 2 "
			0xff9f, 0xffae, 0, 0, 0, 0, // KP_Delete KP_Decimal
			0xff51, 0, 0, 0, 0, 0, // Left
		},
		numLockMask: xproto.KeyButMaskMod2,
		altGrMask:   xproto.KeyButMaskMod5,
	}
}

func TestKMapLookup(t *testing.T) {
	km := newTestKMap()
	type pair struct {
		kc    xproto.Keycode
		state uint16
		ks    xproto.Keysym
		eks   event.KeySym
		ru    rune
	}
	pairs := []pair{
		{8, 0, 0x61, 'a', 'a'},
		{8, xproto.KeyButMaskShift, 0x41, 'a', 'A'},
		{8, xproto.KeyButMaskLock, 0x41, 'a', 'A'},
		{8, xproto.KeyButMaskLock | xproto.KeyButMaskShift, 0x61, 'a', 'a'},
		{8, xproto.KeyButMaskMod5, 0x40, '@', '@'},
		{9, 0, 0x32, '2', '2'},
		{9, xproto.KeyButMaskLock, 0x32, '2', '2'},
		{9, xproto.KeyButMaskShift, 0x22, '"', '"'},
		{10, 0, 0xff9f, event.KSymDelete, 0},
		{10, xproto.KeyButMaskMod2, 0xffae, '.', '.'},
		{11, xproto.KeyButMaskShift, 0xff51, event.KSymLeft, 0},
		{12, 0, 0, event.KSymNone, 0}, // out of range
		{2, 0, 0, event.KSymNone, 0},
	}
	for i, p := range pairs {
		ks := km.Lookup(p.kc, p.state)
		eks := keysymToEventKeySym(ks)
		ru := keysymRune(ks)
		if ks != p.ks || eks != p.eks || ru != p.ru {
			t.Fatalf("entry %v: (%v,%v)->(0x%x,%v,%q), expected (0x%x,%v,%q)",
				i, p.kc, p.state, ks, eks, ru, p.ks, p.eks, p.ru)
		}
	}
}

func TestKeyPressText(t *testing.T) {
	xi := newXInput(newTestKMap())
	u := xi.KeyPress(&xproto.KeyPressEvent{Detail: 8, State: xproto.KeyButMaskShift})
	if len(u) != 2 {
		t.Fatal(u)
	}
	if wt, ok := u[1].(*event.WindowText); !ok || wt.Text != "A" {
		t.Fatal(u[1])
	}
	u = xi.KeyPress(&xproto.KeyPressEvent{Detail: 8, State: xproto.KeyButMaskControl})
	if len(u) != 1 {
		t.Fatal("ctrl+a produced text")
	}
	u = xi.KeyPress(&xproto.KeyPressEvent{Detail: 11})
	if len(u) != 1 || u[0].(*event.KeyDown).KeySym != event.KSymLeft {
		t.Fatal(u)
	}
}

func TestButtons(t *testing.T) {
	xi := newXInput(newTestKMap())
	ev := xi.ButtonPress(&xproto.ButtonPressEvent{Detail: 5, EventX: 3, EventY: 4})
	w, ok := ev.(*event.MouseWheel)
	if !ok || w.Delta.Y != -1 || w.Point.X != 3 {
		t.Fatal(ev)
	}
	if ev := xi.ButtonRelease(&xproto.ButtonReleaseEvent{Detail: 5}); ev != nil {
		t.Fatal(ev)
	}

	d1 := xi.ButtonPress(&xproto.ButtonPressEvent{Detail: 1}).(*event.MouseDown)
	xi.ButtonRelease(&xproto.ButtonReleaseEvent{Detail: 1})
	d2 := xi.ButtonPress(&xproto.ButtonPressEvent{Detail: 1}).(*event.MouseDown)
	u2 := xi.ButtonRelease(&xproto.ButtonReleaseEvent{Detail: 1}).(*event.MouseUp)
	if d1.Clicks != 1 || d2.Clicks != 2 || u2.Clicks != 2 || d2.Button != event.ButtonLeft {
		t.Fatal(d1, d2, u2)
	}

	mv := xi.MotionNotify(&xproto.MotionNotifyEvent{EventX: 1, EventY: 1, State: xproto.KeyButMaskButton1 | xproto.KeyButMaskShift}).(*event.MouseMove)
	if !mv.Buttons.Has(event.ButtonLeft) || mv.Mods != event.ModShift {
		t.Fatal(mv)
	}
}
