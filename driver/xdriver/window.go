package xdriver

import (
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/squidl/driver/xdriver/wimage"
	"github.com/jmigpin/squidl/driver/xdriver/wmprotocols"
	"github.com/jmigpin/squidl/driver/xdriver/xinput"
	"github.com/jmigpin/squidl/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	XU     *xgbutil.XUtil
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	XInput *xinput.XInput
	Wmp    *wmprotocols.WMP
	WImg   *wimage.WImage

	closeOnce sync.Once
}

// A zero size uses 500x500.
func NewWindow(size image.Point) (*Window, error) {
	if size.X <= 0 || size.Y <= 0 {
		size = image.Point{500, 500}
	}
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}
	win := &Window{Conn: conn}
	if err := win.initialize(size); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}
	return win, nil
}

func (win *Window) initialize(size image.Point) error {
	xu, err := xgbutil.NewConnXgb(win.Conn)
	if err != nil {
		return err
	}
	win.XU = xu

	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	err = xproto.CreateWindowChecked(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(size.X), uint16(size.Y),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values).Check()
	if err != nil {
		return errors.Wrap(err, "create window")
	}

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	err = xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil).Check()
	if err != nil {
		return errors.Wrap(err, "create gc")
	}

	xi, err := xinput.NewXInput(win.Conn)
	if err != nil {
		return err
	}
	win.XInput = xi

	wmp, err := wmprotocols.NewWMP(win.XU, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	if err := win.setDefaultCursor(); err != nil {
		log.Print(err)
	}

	opt := &wimage.Options{Conn: win.Conn, Window: win.Window, ScreenInfo: win.Screen, GCtx: win.GCtx}
	win.WImg = wimage.NewWImage(opt)

	_ = xproto.MapWindow(win.Conn, win.Window)
	return nil
}

func (win *Window) setDefaultCursor() error {
	c, err := xcursor.CreateCursor(win.XU, xcursor.LeftPtr)
	if err != nil {
		return errors.Wrap(err, "cursor")
	}
	mask := uint32(xproto.CwCursor)
	values := []uint32{uint32(c)}
	_ = xproto.ChangeWindowAttributes(win.Conn, win.Window, mask, values)
	return nil
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		if err := win.WImg.Close(); err != nil {
			log.Print(err)
		}
		win.Conn.Close()
	})
	return nil
}

//----------

func (win *Window) EventLoop(events chan<- any) {
	defer close(events)
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			// connection closed
			events <- &event.WindowClose{}
			return
		}
		if xerr != nil {
			events <- error(xerr)
		}
		if ev != nil {
			for _, ev2 := range win.translateEvent(ev) {
				events <- ev2
			}
		}
	}
}

func (win *Window) translateEvent(ev xgb.Event) []any {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		// position must be (0,0)
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		return []any{&event.WindowResize{Rect: r}}
	case xproto.ExposeEvent: // region needs paint
		if t.Count == 0 {
			return []any{&event.WindowExpose{}}
		}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:
	case xproto.MappingNotifyEvent: // keyboard mapping
		if err := win.XInput.ReadMapping(); err != nil {
			return []any{err}
		}
	case xproto.KeyPressEvent:
		return win.XInput.KeyPress(&t)
	case xproto.KeyReleaseEvent:
		return []any{win.XInput.KeyRelease(&t)}
	case xproto.ButtonPressEvent:
		return nonNil(win.XInput.ButtonPress(&t))
	case xproto.ButtonReleaseEvent:
		return nonNil(win.XInput.ButtonRelease(&t))
	case xproto.MotionNotifyEvent:
		return []any{win.XInput.MotionNotify(&t)}
	case xproto.ClientMessageEvent:
		if win.Wmp.IsDeleteWindow(&t) {
			return []any{&event.WindowClose{}}
		}
	default:
		log.Printf("xdriver: unhandled event: %#v", ev)
	}
	return nil
}

func nonNil(ev any) []any {
	if ev == nil {
		return nil
	}
	return []any{ev}
}

//----------

func (win *Window) SetWindowName(str string) {
	if err := ewmh.WmNameSet(win.XU, win.Window, str); err != nil {
		log.Print(err)
	}
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}

func (win *Window) PutImage(r image.Rectangle) error {
	return win.WImg.PutImage(r)
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}
