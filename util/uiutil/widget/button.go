package widget

import (
	"github.com/jmigpin/squidl/util/uiutil/event"
)

type Button struct {
	ENode
	Label   *Label
	OnClick func()

	Toggleable bool // a click flips Selected
	Selected   bool
	Disabled   bool

	style   ButtonStyle
	hovered bool
	pressed bool
}

func NewButton(t *Theme, text string) *Button {
	b := &Button{}
	b.Wrapper = b
	b.Label = NewLabel(t, text)
	b.Label.owner = &b.EmbedNode
	b.Label.TextHAlign = HCenter
	b.Label.TextVAlign = VCenter
	b.OnThemeChange(themeOrDefault(t))
	return b
}

func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) Pressed() bool { return b.pressed }

//----------

func (b *Button) OnEvent(ev event.Event) {
	if b.Disabled {
		return
	}
	switch t := ev.(type) {
	case *event.PointerMoved:
		b.hovered = b.rect.Contains(t.Point)
	case *event.PointerPressed:
		in := b.rect.Contains(t.Point)
		b.hovered = in
		if in && t.Button == event.ButtonLeft {
			b.pressed = true
			ev.SetHandled(true)
		}
	case *event.PointerReleased:
		in := b.rect.Contains(t.Point)
		b.hovered = in
		if !b.pressed {
			return
		}
		b.pressed = false
		if in && t.Button == event.ButtonLeft {
			if b.Toggleable {
				b.Selected = !b.Selected
			}
			if b.OnClick != nil {
				b.OnClick()
			}
			ev.SetHandled(true)
		}
	}
}

//----------

// Text size plus (20,10) on the axes without a declared size.
func (b *Button) Autosize() {
	b.Label.Autosize()
	lr := b.Label.Rect()
	r := b.rect
	r.W, r.H = lr.W+20, lr.H+10
	if b.Size.X > 0 {
		r.W = b.Size.X
	}
	if b.Size.Y > 0 {
		r.H = b.Size.Y
	}
	b.SetRect(r)
}

func (b *Button) Update(ctx *Context, s Surface) bool {
	if b.Disabled {
		b.pressed = false
		b.hovered = false
	}
	b.EmbedNode.Update(ctx, s)
	return b.hovered || b.pressed
}

func (b *Button) Paint(ctx *Context, s Surface) {
	bg := b.style.Normal
	switch {
	case b.Disabled:
		bg = b.style.Disabled
	case b.Selected:
		bg = b.style.Selected
	case b.pressed:
		bg = b.style.Pressed
	case b.hovered:
		bg = b.style.Hover
	}
	b.PaintFill(s, bg)

	b.Label.SetRect(b.rect)
	b.Label.SetOpacity(b.Opacity())
	b.Label.Paint(ctx, s)
}

func (b *Button) OnThemeChange(t *Theme) {
	b.style = t.Button
	b.BgColor = t.Button.Normal
	b.BorderColor = t.Button.Border
	b.Label.TextColor = t.Button.Text
}
