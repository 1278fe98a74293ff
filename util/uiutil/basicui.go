package uiutil

import (
	"image/color"
	"log"

	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/widget"
)

// Owns the input context, the dispatcher and the root node. Runs one frame at a time; has no knowledge of windows or threads.
type BasicUI struct {
	Root       widget.Node
	Ctx        *widget.Context
	Disp       *widget.Dispatcher
	Surface    widget.Surface
	ClearColor color.NRGBA
}

func NewBasicUI(root widget.Node, s widget.Surface) *BasicUI {
	ui := &BasicUI{
		Root:       root,
		Ctx:        widget.NewContext(),
		Disp:       widget.NewDispatcher(),
		Surface:    s,
		ClearColor: color.NRGBA{0, 0, 0, 255},
	}
	if root != nil {
		ui.Disp.AddTree(root)
		root.SetRect(ui.Ctx.Rect())
	}
	return ui
}

//----------

// Registers the node and its descendants as event listeners.
func (ui *BasicUI) AddNode(n widget.Node) {
	ui.Disp.AddTree(n)
}

func (ui *BasicUI) RemoveNode(n widget.Node) {
	ui.Disp.RemoveTree(n)
}

//----------

// Updates the context, then translates and dispatches the event.
func (ui *BasicUI) HandleEvent(ev any) {
	ui.Ctx.HandleEvent(ev)
	if _, ok := ev.(*event.WindowResize); ok && ui.Root != nil {
		ui.Root.SetRect(ui.Ctx.Rect())
	}
	if wev := event.Translate(ev); wev != nil {
		ui.Disp.Dispatch(wev)
	}
}

// Handles the events, clears the surface and updates the root once. Returns if any node reported activity.
func (ui *BasicUI) Frame(evs []any) bool {
	ui.Ctx.BeginFrame()
	for _, ev := range evs {
		ui.HandleEvent(ev)
	}
	if ui.Surface == nil {
		log.Print("basicui: frame without surface")
		return false
	}
	ui.Surface.Clear(ui.ClearColor)
	if ui.Root == nil {
		return false
	}
	return ui.Root.Update(ui.Ctx, ui.Surface)
}
