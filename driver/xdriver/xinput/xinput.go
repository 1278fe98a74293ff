package xinput

import (
	"image"
	"unicode"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/mousefilter"
)

// Translates x input events into uiutil/event values.
type XInput struct {
	km     *KMap
	clicks *mousefilter.ClickCounter
}

func NewXInput(conn *xgb.Conn) (*XInput, error) {
	km, err := NewKMap(conn)
	if err != nil {
		return nil, err
	}
	return newXInput(km), nil
}

func newXInput(km *KMap) *XInput {
	return &XInput{km: km, clicks: mousefilter.NewClickCounter()}
}

func (xi *XInput) ReadMapping() error {
	return xi.km.ReadMapping()
}

//----------

// Printable runes typed without ctrl/alt also produce a text event.
func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) []any {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks := xi.km.Lookup(ev.Detail, ev.State)
	m := translateModifiers(ev.State)
	ru := keysymRune(ks)
	u := []any{&event.KeyDown{Point: p, KeySym: keysymToEventKeySym(ks), Mods: m, Rune: ru}}
	if ru != 0 && unicode.IsPrint(ru) && !m.HasAny(event.ModCtrl|event.ModAlt) {
		u = append(u, &event.WindowText{Text: string(ru)})
	}
	return u
}

func (xi *XInput) KeyRelease(ev *xproto.KeyReleaseEvent) any {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	ks := xi.km.Lookup(ev.Detail, ev.State)
	m := translateModifiers(ev.State)
	return &event.KeyUp{Point: p, KeySym: keysymToEventKeySym(ks), Mods: m, Rune: keysymRune(ks)}
}

//----------

// Wheel buttons produce a wheel event on press, nothing on release.
func (xi *XInput) ButtonPress(ev *xproto.ButtonPressEvent) any {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	m := translateModifiers(ev.State)
	if d, ok := wheelDelta(ev.Detail); ok {
		return &event.MouseWheel{Point: p, Delta: d, Mods: m}
	}
	b := translateButton(ev.Detail)
	bs := translateButtons(ev.State)
	n := xi.clicks.Down(b, p)
	return &event.MouseDown{Point: p, Button: b, Buttons: bs, Mods: m, Clicks: n}
}

func (xi *XInput) ButtonRelease(ev *xproto.ButtonReleaseEvent) any {
	if _, ok := wheelDelta(ev.Detail); ok {
		return nil
	}
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButton(ev.Detail)
	bs := translateButtons(ev.State)
	m := translateModifiers(ev.State)
	n := xi.clicks.Up(b, p)
	return &event.MouseUp{Point: p, Button: b, Buttons: bs, Mods: m, Clicks: n}
}

func (xi *XInput) MotionNotify(ev *xproto.MotionNotifyEvent) any {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	xi.clicks.Move(p)
	bs := translateButtons(ev.State)
	m := translateModifiers(ev.State)
	return &event.MouseMove{Point: p, Buttons: bs, Mods: m}
}

//----------

// Buttons 4-7 are the wheel: up, down, left, right.
func wheelDelta(b xproto.Button) (image.Point, bool) {
	switch b {
	case 4:
		return image.Point{0, 1}, true
	case 5:
		return image.Point{0, -1}, true
	case 6:
		return image.Point{-1, 0}, true
	case 7:
		return image.Point{1, 0}, true
	}
	return image.Point{}, false
}
