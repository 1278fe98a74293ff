package widget

import (
	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// On/off switch. Toggles on a left press followed by a release inside. Always reports active.
type ToggleSwitch struct {
	ENode
	OnChange func(on bool)

	on      bool
	pressed bool
	style   ToggleStyle
}

func NewToggleSwitch(t *Theme, on bool) *ToggleSwitch {
	ts := &ToggleSwitch{on: on}
	ts.Wrapper = ts
	ts.Borderless = true
	ts.OnThemeChange(themeOrDefault(t))
	ts.SetSize(50, 24)
	return ts
}

func (ts *ToggleSwitch) On() bool {
	return ts.on
}

func (ts *ToggleSwitch) SetOn(v bool) {
	if ts.on == v {
		return
	}
	ts.on = v
	if ts.OnChange != nil {
		ts.OnChange(v)
	}
}

//----------

func (ts *ToggleSwitch) OnEvent(ev event.Event) {
	switch t := ev.(type) {
	case *event.PointerPressed:
		if t.Button == event.ButtonLeft && ts.rect.Contains(t.Point) {
			ts.pressed = true
		}
	case *event.PointerReleased:
		if t.Button != event.ButtonLeft {
			return
		}
		pressed := ts.pressed
		ts.pressed = false
		if pressed && ts.rect.Contains(t.Point) {
			ts.SetOn(!ts.on)
			ev.SetHandled(true)
		}
	}
}

//----------

func (ts *ToggleSwitch) KnobRect() geom.Rect {
	r := ts.rect
	k := max(0, r.H-4)
	x := r.X + 3
	if ts.on {
		x = r.X + r.W - k - 3
	}
	return geom.Rect{X: x, Y: r.Y + 2, W: k, H: k}
}

func (ts *ToggleSwitch) Update(ctx *Context, s Surface) bool {
	ts.EmbedNode.Update(ctx, s)
	return true
}

func (ts *ToggleSwitch) Paint(ctx *Context, s Surface) {
	op := ts.Opacity()
	track := ts.style.TrackOff
	if ts.on {
		track = ts.style.TrackOn
	}
	s.FillRoundedRect(ts.rect, ts.rect.H/2, imageutil.Fade(track, op))

	k := ts.KnobRect()
	s.FillRoundedRect(k, k.W/2, imageutil.Fade(ts.style.Knob, op))
	s.DrawRoundedRect(k, k.W/2, imageutil.Fade(imageutil.Shade(ts.style.Knob, 0.5), op))
}

func (ts *ToggleSwitch) OnThemeChange(t *Theme) {
	ts.style = t.Toggle
}
