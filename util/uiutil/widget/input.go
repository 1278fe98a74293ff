package widget

import (
	"time"

	"github.com/jmigpin/squidl/util/fontutil"
	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

const CaretBlinkInterval = 500 * time.Millisecond

// Single line text field. Gains focus on a press inside and loses it on a press outside.
type Input struct {
	ENode
	Placeholder string
	OnChange    func(text string)

	text       []rune
	caret      int // rune index
	textOffset int // <= 0, keeps the caret visible
	focused    bool
	hovered    bool

	caretShow  bool
	caretTime  time.Time
	caretReset bool

	style InputStyle
}

func NewInput(t *Theme, placeholder string) *Input {
	in := &Input{Placeholder: placeholder}
	in.Wrapper = in
	in.Padding = geom.Uniform(DefaultPadding)
	in.OnThemeChange(themeOrDefault(t))
	return in
}

func (in *Input) Text() string {
	return string(in.text)
}

func (in *Input) SetText(s string) {
	in.setText([]rune(s))
}

func (in *Input) setText(u []rune) {
	in.text = u
	in.caret = min(in.caret, len(in.text))
	if in.OnChange != nil {
		in.OnChange(string(in.text))
	}
	in.adjustTextOffset()
}

func (in *Input) Caret() int      { return in.caret }
func (in *Input) Focused() bool   { return in.focused }
func (in *Input) TextOffset() int { return in.textOffset }

func (in *Input) contentRect() geom.Rect {
	return in.rect.Inset(in.Padding)
}

func (in *Input) SetFocused(v bool) {
	in.focused = v
	in.caretReset = true
}

//----------

func (in *Input) OnEvent(ev event.Event) {
	switch t := ev.(type) {
	case *event.PointerMoved:
		in.hovered = in.rect.Contains(t.Point)
	case *event.PointerPressed:
		if t.Button != event.ButtonLeft {
			return
		}
		if !in.rect.Contains(t.Point) {
			in.focused = false
			return
		}
		in.focused = true
		in.caret = in.indexAt(t.Point.X)
		in.caretMoved()
		ev.SetHandled(true)
	case *event.TextInput:
		if !in.focused || t.Text == "" {
			return
		}
		ins := []rune(t.Text)
		u := make([]rune, 0, len(in.text)+len(ins))
		u = append(u, in.text[:in.caret]...)
		u = append(u, ins...)
		u = append(u, in.text[in.caret:]...)
		in.caret += len(ins)
		in.setText(u)
		in.caretMoved()
		ev.SetHandled(true)
	case *event.KeyPressed:
		if !in.focused {
			return
		}
		if in.handleKey(t.KeySym) {
			in.caretMoved()
			ev.SetHandled(true)
		}
	}
}

func (in *Input) handleKey(ks event.KeySym) bool {
	switch ks {
	case event.KSymBackspace:
		if in.caret == 0 {
			return false
		}
		u := append(in.text[:in.caret-1:in.caret-1], in.text[in.caret:]...)
		in.caret--
		in.setText(u)
	case event.KSymDelete:
		if in.caret >= len(in.text) {
			return false
		}
		u := append(in.text[:in.caret:in.caret], in.text[in.caret+1:]...)
		in.setText(u)
	case event.KSymLeft:
		if in.caret == 0 {
			return false
		}
		in.caret--
	case event.KSymRight:
		if in.caret >= len(in.text) {
			return false
		}
		in.caret++
	case event.KSymHome:
		in.caret = 0
	case event.KSymEnd:
		in.caret = len(in.text)
	default:
		return false
	}
	return true
}

func (in *Input) caretMoved() {
	in.caretReset = true
	in.adjustTextOffset()
}

// Caret index closest to the screen x.
func (in *Input) indexAt(x int) int {
	if len(in.text) == 0 {
		return 0
	}
	rx := x - (in.contentRect().X + in.textOffset)
	return in.fontFace().IndexAt(string(in.text), rx)
}

func (in *Input) fontFace() *fontutil.FontFace {
	return in.TreeFontFace()
}

// Shifts the text so the caret stays inside the content area, without leaving empty space at the right when the text is wider than the area.
func (in *Input) adjustTextOffset() {
	ff := in.fontFace()
	tw := ff.MeasureString(string(in.text))
	vw := in.contentRect().W
	if tw <= vw {
		in.textOffset = 0
		return
	}
	cx := ff.MeasureString(string(in.text[:in.caret]))
	if cx+in.textOffset > vw {
		in.textOffset = vw - cx
	} else if cx+in.textOffset < 0 {
		in.textOffset = -cx
	}
	if tw+in.textOffset < vw {
		in.textOffset = vw - tw
	}
	if in.textOffset > 0 {
		in.textOffset = 0
	}
}

//----------

// Text (or placeholder) size plus padding on the axes without a declared size.
func (in *Input) Autosize() {
	ff := in.fontFace()
	s := string(in.text)
	if s == "" {
		s = in.Placeholder
	}
	r := in.rect
	r.W = ff.MeasureString(s) + in.Padding.WidthSum()
	r.H = ff.LineHeight() + in.Padding.HeightSum()
	if in.Size.X > 0 {
		r.W = in.Size.X
	}
	if in.Size.Y > 0 {
		r.H = in.Size.Y
	}
	in.SetRect(r)
}

func (in *Input) Update(ctx *Context, s Surface) bool {
	in.hovered = in.rect.Contains(ctx.Point)
	in.updateCaretBlink(ctx.Time())
	in.EmbedNode.Update(ctx, s)
	return in.focused || in.hovered
}

func (in *Input) updateCaretBlink(now time.Time) {
	if !in.focused {
		return
	}
	if in.caretReset {
		in.caretReset = false
		in.caretShow = true
		in.caretTime = now
		return
	}
	if now.Sub(in.caretTime) > CaretBlinkInterval {
		in.caretShow = !in.caretShow
		in.caretTime = now
	}
}

func (in *Input) CaretVisible() bool {
	return in.focused && in.caretShow
}

func (in *Input) Paint(ctx *Context, s Surface) {
	border := in.style.Border
	if in.focused {
		border = in.style.Focus
	}
	in.PaintFillBorder(s, in.BgColor, border)

	ff := in.fontFace()
	cr := in.contentRect()
	op := in.Opacity()
	if len(in.text) == 0 && !in.focused {
		if in.Placeholder != "" {
			c := imageutil.Fade(in.style.Placeholder, op)
			drawTextLines(s, ff, in.Placeholder, c, cr, HLeft, VCenter, 0)
		}
	} else if len(in.text) > 0 {
		c := imageutil.Fade(in.style.Text, op)
		drawTextLines(s, ff, string(in.text), c, cr, HLeft, VCenter, in.textOffset)
	}

	if in.CaretVisible() {
		x := cr.X + ff.MeasureString(string(in.text[:in.caret])) + in.textOffset
		if x >= cr.X && x <= cr.Right() {
			r := geom.Rect{X: x, Y: cr.Y, W: 2, H: cr.H}
			s.DrawFilledRect(r, imageutil.Fade(in.style.Caret, op))
		}
	}
}

func (in *Input) OnThemeChange(t *Theme) {
	in.style = t.Input
	in.BgColor = t.Input.Bg
	in.BorderColor = t.Input.Border
}
