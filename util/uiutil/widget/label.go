package widget

import (
	"image"
	"image/color"
	"strings"

	"github.com/jmigpin/squidl/util/fontutil"
	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Multi-line text ("\n" separated). Never active.
type Label struct {
	ENode
	Text       string
	TextColor  color.NRGBA
	TextHAlign HAlign
	TextVAlign VAlign
	TextOffset int // horizontal shift of the text inside the clip area

	owner *EmbedNode // font source when used inside another widget
}

func NewLabel(t *Theme, text string) *Label {
	l := &Label{Text: text}
	l.Wrapper = l
	l.Padding = geom.Uniform(DefaultPadding)
	l.Borderless = true
	l.OnThemeChange(themeOrDefault(t))
	return l
}

func (l *Label) fontFace() *fontutil.FontFace {
	if l.Font == nil && l.owner != nil {
		return l.owner.TreeFontFace()
	}
	return l.TreeFontFace()
}

// Text size plus padding on the axes without a declared size. Empty text has no size.
func (l *Label) Autosize() {
	r := l.rect
	var sz image.Point
	if l.Text != "" {
		sz = l.fontFace().MeasureLines(l.Text)
		sz.X += l.Padding.WidthSum()
		sz.Y += l.Padding.HeightSum()
	}
	r.W, r.H = sz.X, sz.Y
	if l.Size.X > 0 {
		r.W = l.Size.X
	}
	if l.Size.Y > 0 {
		r.H = l.Size.Y
	}
	l.SetRect(r)
}

func (l *Label) Paint(ctx *Context, s Surface) {
	l.PaintBackground(ctx, s)
	if l.Text == "" {
		return
	}
	c := l.rect.Inset(l.Padding)
	tc := imageutil.Fade(l.TextColor, l.Opacity())
	drawTextLines(s, l.fontFace(), l.Text, tc, c, l.TextHAlign, l.TextVAlign, l.TextOffset)
}

func (l *Label) OnThemeChange(t *Theme) {
	l.TextColor = t.Text
}

//----------

// Draws each line aligned inside the clip rect. Stretch/justify center vertically and align left horizontally.
func drawTextLines(s Surface, ff *fontutil.FontFace, text string, c color.NRGBA, clip geom.Rect, h HAlign, v VAlign, offsetX int) {
	if c.A == 0 {
		return
	}
	switch h {
	case HStretch, HJustify:
		h = HLeft
	}
	switch v {
	case VStretch, VJustify:
		v = VCenter
	}

	lines := strings.Split(text, "\n")
	lh := ff.LineHeight()
	block := AlignInSlot(clip, image.Point{clip.W, len(lines) * lh}, HLeft, v)

	s.SetClipRect(clip)
	defer s.ResetClipRect()

	y := block.Y
	for _, line := range lines {
		slot := geom.Rect{X: clip.X, Y: y, W: clip.W, H: lh}
		lr := AlignInSlot(slot, image.Point{ff.MeasureString(line), lh}, h, VTop)
		lr.X += offsetX
		s.DrawText(ff, line, c, lr)
		y += lh
	}
}
