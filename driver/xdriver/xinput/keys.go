package xinput

import (
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/squidl/util/uiutil/event"
)

// Constants from /usr/include/X11/keysymdef.h
var keysymTable = map[xproto.Keysym]event.KeySym{
	0xff08: event.KSymBackspace,
	0xff09: event.KSymTab,
	0xfe20: event.KSymTab, // ISO_Left_Tab (shift+tab)
	0xff0d: event.KSymReturn,
	0xff8d: event.KSymReturn, // KP_Enter
	0xff1b: event.KSymEscape,
	0xff50: event.KSymHome,
	0xff95: event.KSymHome, // KP_Home
	0xff51: event.KSymLeft,
	0xff96: event.KSymLeft,
	0xff52: event.KSymUp,
	0xff97: event.KSymUp,
	0xff53: event.KSymRight,
	0xff98: event.KSymRight,
	0xff54: event.KSymDown,
	0xff99: event.KSymDown,
	0xff55: event.KSymPageUp,
	0xff9a: event.KSymPageUp,
	0xff56: event.KSymPageDown,
	0xff9b: event.KSymPageDown,
	0xff57: event.KSymEnd,
	0xff9c: event.KSymEnd,
	0xff63: event.KSymInsert,
	0xff9e: event.KSymInsert,
	0xffff: event.KSymDelete,
	0xff9f: event.KSymDelete,

	0xffbe: event.KSymF1,
	0xffbf: event.KSymF2,
	0xffc0: event.KSymF3,
	0xffc1: event.KSymF4,
	0xffc2: event.KSymF5,
	0xffc3: event.KSymF6,
	0xffc4: event.KSymF7,
	0xffc5: event.KSymF8,
	0xffc6: event.KSymF9,
	0xffc7: event.KSymF10,
	0xffc8: event.KSymF11,
	0xffc9: event.KSymF12,

	0xffe1: event.KSymShiftL,
	0xffe2: event.KSymShiftR,
	0xffe3: event.KSymControlL,
	0xffe4: event.KSymControlR,
	0xffe9: event.KSymAltL,
	0xffea: event.KSymAltR,
	0xfe03: event.KSymAltGr, // ISO_Level3_Shift
	0xffeb: event.KSymSuperL,
	0xffec: event.KSymSuperR,
	0xffe5: event.KSymCapsLock,
	0xff7f: event.KSymNumLock,
}

// Ascii/latin1 keysyms keep their (lower case) value.
func keysymToEventKeySym(ks xproto.Keysym) event.KeySym {
	if eks, ok := keysymTable[ks]; ok {
		return eks
	}
	if ru := keysymRune(ks); ru != 0 && ru < 256 {
		return event.KeySym(unicode.ToLower(ru))
	}
	return event.KSymNone
}

// Rune produced by the keysym, zero if none.
func keysymRune(ks xproto.Keysym) rune {
	switch {
	case 0x20 <= ks && ks <= 0x7e, 0xa0 <= ks && ks <= 0xff:
		return rune(ks)
	case 0x01000100 <= ks && ks <= 0x0110ffff:
		// unicode keysyms
		return rune(ks - 0x01000000)
	case ks == 0xff80: // KP_Space
		return ' '
	case ks == 0xffbd: // KP_Equal
		return '='
	case 0xffaa <= ks && ks <= 0xffb9: // KP_Multiply..KP_9
		return rune(ks - 0xff80)
	}
	return 0
}

//----------

func translateModifiers(state uint16) event.KeyModifiers {
	// event modifiers keep the x bit order
	return event.KeyModifiers(state & 0xff)
}

func translateButtons(state uint16) event.MouseButtons {
	return event.MouseButtons((state >> 8) & 0x1f)
}

func translateButton(b xproto.Button) event.MouseButton {
	switch b {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 4:
		return event.ButtonWheelUp
	case 5:
		return event.ButtonWheelDown
	case 6:
		return event.ButtonWheelLeft
	case 7:
		return event.ButtonWheelRight
	case 8:
		return event.ButtonBackward
	case 9:
		return event.ButtonForward
	}
	return event.ButtonNone
}
