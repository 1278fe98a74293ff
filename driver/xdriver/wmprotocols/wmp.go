package wmprotocols

import (
	"log"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/pkg/errors"
)

// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1

type WMP struct {
	protocols    xproto.Atom
	deleteWindow xproto.Atom
}

// Asks the window manager to send a message instead of killing the connection when the window is closed.
func NewWMP(xu *xgbutil.XUtil, win xproto.Window) (*WMP, error) {
	if err := icccm.WmProtocolsSet(xu, win, []string{"WM_DELETE_WINDOW"}); err != nil {
		return nil, errors.Wrap(err, "wm protocols")
	}
	protocols, err := xprop.Atm(xu, "WM_PROTOCOLS")
	if err != nil {
		return nil, err
	}
	deleteWindow, err := xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		return nil, err
	}
	return &WMP{protocols: protocols, deleteWindow: deleteWindow}, nil
}

func (wmp *WMP) IsDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	if ev.Type != wmp.protocols {
		return false
	}
	if ev.Format != 32 {
		log.Printf("wmp: ev format not 32: %+v", ev)
		return false
	}
	for _, e := range ev.Data.Data32 {
		if xproto.Atom(e) == wmp.deleteWindow {
			return true
		}
	}
	return false
}
