package widget

import (
	"image"

	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Square box with an optional text to its right. Pressing the box or the text toggles.
type Checkbox struct {
	ENode
	Checked  bool
	OnToggle func(checked bool)
	Label    *Label

	style CheckboxStyle
}

const checkboxGap = 5

func NewCheckbox(t *Theme, text string, checked bool) *Checkbox {
	c := &Checkbox{Checked: checked}
	c.Wrapper = c
	c.Borderless = true
	c.Label = NewLabel(t, text)
	c.Label.owner = &c.EmbedNode
	c.Label.Padding = geom.Insets{}
	c.Label.TextVAlign = VCenter
	c.OnThemeChange(themeOrDefault(t))
	return c
}

func (c *Checkbox) SetChecked(v bool) {
	if c.Checked == v {
		return
	}
	c.Checked = v
	if c.OnToggle != nil {
		c.OnToggle(v)
	}
}

//----------

// Square of the smaller side. Without text it follows the node alignment inside the rect.
func (c *Checkbox) BoxRect() geom.Rect {
	r := c.rect
	side := min(r.W, r.H)
	if c.Label.Text != "" {
		return AlignInSlot(r, image.Point{side, side}, HLeft, VCenter)
	}
	return AlignInSlot(r, image.Point{side, side}, c.HAlign, c.VAlign)
}

func (c *Checkbox) labelRect() geom.Rect {
	b := c.BoxRect()
	r := c.rect
	r.X = b.Right() + checkboxGap
	r.W = c.rect.Right() - r.X
	return r.Floor()
}

//----------

func (c *Checkbox) OnEvent(ev event.Event) {
	t, ok := ev.(*event.PointerPressed)
	if !ok || t.Button != event.ButtonLeft {
		return
	}
	in := c.BoxRect().Contains(t.Point)
	if !in && c.Label.Text != "" {
		in = c.labelRect().Contains(t.Point)
	}
	if in {
		c.SetChecked(!c.Checked)
		ev.SetHandled(true)
	}
}

//----------

// Box of one line height, plus the text width.
func (c *Checkbox) Autosize() {
	r := c.rect
	ff := c.TreeFontFace()
	side := ff.LineHeight()
	r.W, r.H = side, side
	if c.Label.Text != "" {
		sz := ff.MeasureLines(c.Label.Text)
		r.W += checkboxGap + sz.X
		r.H = max(side, sz.Y)
	}
	if c.Size.X > 0 {
		r.W = c.Size.X
	}
	if c.Size.Y > 0 {
		r.H = c.Size.Y
	}
	c.SetRect(r)
}

func (c *Checkbox) Paint(ctx *Context, s Surface) {
	c.PaintBackground(ctx, s)

	op := c.Opacity()
	b := c.BoxRect()
	s.DrawFilledRect(b, imageutil.Fade(c.style.Box, op))
	s.DrawOutlineRect(b, imageutil.Fade(c.style.Border, op))
	if c.Checked {
		p1 := image.Point{b.X + b.W/4, b.Y + b.H/2}
		p2 := image.Point{b.X + b.W/2, b.Y + b.H - b.H/4}
		p3 := image.Point{b.X + b.W - b.W/4, b.Y + b.H/4}
		mc := imageutil.Fade(c.style.Mark, op)
		s.DrawLine(p1, p2, mc)
		s.DrawLine(p2, p3, mc)
	}

	if c.Label.Text != "" {
		c.Label.SetRect(c.labelRect())
		c.Label.SetOpacity(op)
		c.Label.Paint(ctx, s)
	}
}

func (c *Checkbox) OnThemeChange(t *Theme) {
	c.style = t.Checkbox
	c.Label.TextColor = t.Checkbox.Text
}
