package widget

import (
	"image"
	"testing"

	"github.com/jmigpin/squidl/util/uiutil/event"
)

func TestContextPointer(t *testing.T) {
	ctx := NewContext()
	if ctx.Size != DefaultContextSize {
		t.Fatal(ctx.Size)
	}

	ctx.HandleEvent(&event.MouseMove{Point: image.Point{3, 4}})
	if ctx.Point != (image.Point{3, 4}) {
		t.Fatal(ctx.Point)
	}

	ctx.HandleEvent(&event.MouseDown{Point: image.Point{5, 5}, Button: event.ButtonLeft})
	if !ctx.Down || !ctx.Pressed || ctx.Released {
		t.Fatal("expecting down")
	}
	ctx.BeginFrame()
	if !ctx.Down || ctx.Pressed {
		t.Fatal("pressed is one-shot")
	}

	ctx.HandleEvent(&event.MouseUp{Point: image.Point{6, 6}, Button: event.ButtonLeft})
	if ctx.Down || !ctx.Released || ctx.Point != (image.Point{6, 6}) {
		t.Fatal("expecting released")
	}
	ctx.BeginFrame()
	if ctx.Released {
		t.Fatal("released is one-shot")
	}

	ctx.HandleEvent(&event.MouseDown{Button: event.ButtonRight})
	if ctx.Down || ctx.Pressed {
		t.Fatal("only the left button is tracked")
	}
}

func TestContextKeysAndSize(t *testing.T) {
	ctx := NewContext()
	ctx.HandleEvent(&event.KeyDown{KeySym: event.KSymShiftL, Mods: event.ModShift})
	if !ctx.KeyDown(event.KSymShiftL) || ctx.Mods != event.ModShift {
		t.Fatal("expecting key down")
	}
	ctx.HandleEvent(&event.KeyUp{KeySym: event.KSymShiftL})
	if ctx.KeyDown(event.KSymShiftL) {
		t.Fatal("expecting key up")
	}

	ctx.HandleEvent(&event.WindowResize{Rect: image.Rect(0, 0, 300, 200)})
	if ctx.Size != (image.Point{300, 200}) {
		t.Fatal(ctx.Size)
	}
	if r := ctx.Rect(); r.W != 300 || r.H != 200 {
		t.Fatal(r)
	}
}

func TestContextZeroValue(t *testing.T) {
	var ctx Context
	ctx.BeginFrame()
	ctx.HandleEvent(&event.KeyDown{KeySym: event.KSymReturn})
	if !ctx.KeyDown(event.KSymReturn) {
		t.Fatal("expecting key down")
	}
	if ctx.Time().IsZero() {
		t.Fatal("expecting frame time")
	}
}
