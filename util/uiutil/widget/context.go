package widget

import (
	"image"
	"image/color"
	"time"

	"github.com/jmigpin/squidl/util/fontutil"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Drawing target. Coordinates are in surface pixels. SetClipRect/ResetClipRect must be paired.
type Surface interface {
	Clear(c color.Color)
	DrawFilledRect(r geom.Rect, c color.Color)
	DrawOutlineRect(r geom.Rect, c color.Color)
	FillRoundedRect(r geom.Rect, radius int, c color.Color)
	DrawRoundedRect(r geom.Rect, radius int, c color.Color)
	DrawLine(p1, p2 image.Point, c color.Color)
	DrawTexture(img image.Image, src image.Rectangle, dst geom.Rect, opacity float64)
	// Single line, top-left at dst position.
	DrawText(ff *fontutil.FontFace, text string, c color.Color, dst geom.Rect)
	SetClipRect(r geom.Rect)
	ResetClipRect()
}

//----------

var DefaultContextSize = image.Point{1000, 800}

// Per frame input state. Pressed/Released are one-shot flags for the left button, cleared by BeginFrame. Point and Down persist until changed. The zero value is usable; NewContext sets the default size.
type Context struct {
	Point    image.Point
	Down     bool
	Pressed  bool
	Released bool
	Mods     event.KeyModifiers
	Size     image.Point

	Clock func() time.Time // defaults to time.Now

	keys      map[event.KeySym]bool
	frameTime time.Time
}

func NewContext() *Context {
	ctx := &Context{
		Size:  DefaultContextSize,
		Clock: time.Now,
		keys:  map[event.KeySym]bool{},
	}
	ctx.frameTime = ctx.Clock()
	return ctx
}

func (ctx *Context) BeginFrame() {
	ctx.Pressed = false
	ctx.Released = false
	ctx.frameTime = ctx.now()
}

func (ctx *Context) now() time.Time {
	if ctx.Clock == nil {
		return time.Now()
	}
	return ctx.Clock()
}

// Time at the start of the current frame.
func (ctx *Context) Time() time.Time {
	return ctx.frameTime
}

func (ctx *Context) KeyDown(ks event.KeySym) bool {
	return ctx.keys[ks]
}

func (ctx *Context) SetSize(w, h int) {
	ctx.Size = image.Point{w, h}
}

func (ctx *Context) Rect() geom.Rect {
	return geom.Rect{W: ctx.Size.X, H: ctx.Size.Y}
}

//----------

// Tracks the continuous state from driver events.
func (ctx *Context) HandleEvent(ev any) {
	switch t := ev.(type) {
	case *event.MouseMove:
		ctx.Point = t.Point
		ctx.Mods = t.Mods
	case *event.MouseDown:
		ctx.Point = t.Point
		if t.Button == event.ButtonLeft {
			ctx.Down = true
			ctx.Pressed = true
		}
	case *event.MouseUp:
		ctx.Point = t.Point
		if t.Button == event.ButtonLeft {
			ctx.Down = false
			ctx.Released = true
		}
	case *event.KeyDown:
		if ctx.keys == nil {
			ctx.keys = map[event.KeySym]bool{}
		}
		ctx.keys[t.KeySym] = true
		ctx.Mods = t.Mods
	case *event.KeyUp:
		delete(ctx.keys, t.KeySym)
		ctx.Mods = t.Mods
	case *event.WindowResize:
		ctx.SetSize(t.Rect.Dx(), t.Rect.Dy())
	}
}
