package uiutil

import (
	"image/draw"
	"sync"
	"time"

	"github.com/jmigpin/squidl/driver"
	"github.com/jmigpin/squidl/util/chanutil"
	"github.com/jmigpin/squidl/util/drawutil"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/jmigpin/squidl/util/uiutil/mousefilter"
	"github.com/jmigpin/squidl/util/uiutil/widget"
)

const DefaultFPS = 60

// Runs a BasicUI over a driver window. Events, frames and RunOnUIThread functions all run on the EventLoop goroutine.
type SimpleUI struct {
	*BasicUI
	Win driver.Window
	FPS int

	OnError func(error)
	OnClose func()

	evQ     *chanutil.ChanQ
	surface *drawutil.ImageSurface
	pending []any
	dirty   bool
	active  bool

	closeOnce sync.Once
	close     chan struct{}
}

func NewSimpleUI(win driver.Window, root widget.Node, t *widget.Theme) *SimpleUI {
	if t == nil {
		t = widget.LightTheme()
	}
	surface := drawutil.NewImageSurface(win.Image())
	sui := &SimpleUI{
		BasicUI: NewBasicUI(root, surface),
		Win:     win,
		FPS:     DefaultFPS,
		OnError: func(error) {},
		OnClose: func() {},
		evQ:     chanutil.NewChanQ(16, 16),
		surface: surface,
		close:   make(chan struct{}),
		dirty:   true,
	}
	sui.ClearColor = t.Window
	widget.ApplyTheme(root, t)
	return sui
}

// Must be called from the UI goroutine.
func (sui *SimpleUI) SetTheme(t *widget.Theme) {
	sui.ClearColor = t.Window
	widget.ApplyTheme(sui.Root, t)
	sui.dirty = true
}

func (sui *SimpleUI) Close() {
	sui.closeOnce.Do(func() {
		sui.OnClose()
		close(sui.close)
	})
}

// Runs f on the UI goroutine. A frame follows.
func (sui *SimpleUI) RunOnUIThread(f func()) {
	sui.evQ.Send(&runFuncEvent{f})
}

type runFuncEvent struct {
	fn func()
}

//----------

func (sui *SimpleUI) EventLoop() {
	fps := max(1, sui.FPS)
	movef := mousefilter.NewMoveFilter(fps, func(ev any) {
		sui.evQ.Send(ev)
	})
	defer func() {
		sui.evQ.Close()
		movef.Close()
		if err := sui.Win.Close(); err != nil {
			sui.OnError(err)
		}
	}()

	winEvs := make(chan any, 16)
	go sui.Win.EventLoop(winEvs)
	go func() {
		for ev := range winEvs {
			movef.Filter(ev)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	evQOut := sui.evQ.Out()
	for {
		select {
		case <-sui.close:
			return
		case ev := <-evQOut:
			sui.handleEvent(ev)
		case <-ticker.C:
			sui.frame()
		}
	}
}

func (sui *SimpleUI) handleEvent(ev any) {
	switch t := ev.(type) {
	case error:
		sui.OnError(t)
	case *event.WindowClose:
		sui.Close()
	case *runFuncEvent:
		t.fn()
		sui.dirty = true
	case *event.WindowExpose:
		sui.dirty = true
	case *event.WindowResize:
		if err := sui.Win.ResizeImage(t.Rect); err != nil {
			sui.OnError(err)
		}
		sui.surface.SetImage(sui.Win.Image())
		sui.pending = append(sui.pending, ev)
	default:
		sui.pending = append(sui.pending, ev)
	}
}

// Skips idle frames: no events, nothing to repaint and no active node.
func (sui *SimpleUI) frame() {
	if len(sui.pending) == 0 && !sui.dirty && !sui.active {
		return
	}
	evs := sui.pending
	sui.pending = nil
	sui.dirty = false
	sui.active = sui.Frame(evs)
	if err := sui.Win.PutImage(sui.Win.Image().Bounds()); err != nil {
		sui.OnError(err)
	}
}

func (sui *SimpleUI) Image() draw.Image {
	return sui.Win.Image()
}
