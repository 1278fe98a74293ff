package widget

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jmigpin/squidl/util/fontutil"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/geom"
)

// Records the drawing calls.
type recSurface struct {
	ops   []string
	texts []string
	clips int // open clips
}

func (s *recSurface) add(f string, a ...any) {
	s.ops = append(s.ops, fmt.Sprintf(f, a...))
}

func (s *recSurface) Clear(c color.Color)                        { s.add("clear") }
func (s *recSurface) DrawFilledRect(r geom.Rect, c color.Color)  { s.add("fill %v", r) }
func (s *recSurface) DrawOutlineRect(r geom.Rect, c color.Color) { s.add("outline %v", r) }
func (s *recSurface) FillRoundedRect(r geom.Rect, radius int, c color.Color) {
	s.add("fillround %v %v", r, radius)
}
func (s *recSurface) DrawRoundedRect(r geom.Rect, radius int, c color.Color) {
	s.add("round %v %v", r, radius)
}
func (s *recSurface) DrawLine(p1, p2 image.Point, c color.Color) {
	s.add("line %v %v", p1, p2)
}
func (s *recSurface) DrawTexture(img image.Image, src image.Rectangle, dst geom.Rect, opacity float64) {
	s.add("texture %v %v", dst, opacity)
}
func (s *recSurface) DrawText(ff *fontutil.FontFace, text string, c color.Color, dst geom.Rect) {
	s.add("text %q %v", text, dst)
	s.texts = append(s.texts, text)
}
func (s *recSurface) SetClipRect(r geom.Rect) {
	s.clips++
	s.add("clip %v", r)
}
func (s *recSurface) ResetClipRect() {
	s.clips--
	s.add("resetclip")
}

//----------

// Node with a configurable event handler.
type testNode struct {
	ENode
	name    string
	onEvent func(tn *testNode, ev event.Event)
}

func newTestNode(name string, onEvent func(*testNode, event.Event)) *testNode {
	tn := &testNode{name: name, onEvent: onEvent}
	tn.Wrapper = tn
	return tn
}

func (tn *testNode) OnEvent(ev event.Event) {
	if tn.onEvent != nil {
		tn.onEvent(tn, ev)
	}
}

//----------

var testColor = color.NRGBA{10, 20, 30, 255}

func newTestRect(w, h int) *Rectangle {
	return NewRectangle(testColor, w, h)
}

func pressEv(x, y int) *event.PointerPressed {
	return &event.PointerPressed{Point: image.Point{x, y}, Button: event.ButtonLeft, Clicks: 1}
}
func releaseEv(x, y int) *event.PointerReleased {
	return &event.PointerReleased{Point: image.Point{x, y}, Button: event.ButtonLeft, Clicks: 1}
}
