package xinput

import (
	"fmt"
	"unicode"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// $ man keymaps
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html

// xproto.Keycode is a physical key.
// xproto.Keysym is the encoding of a symbol on the cap of a key.
// A list of keysyms is associated with each keycode.

// Keyboard mapping
type KMap struct {
	conn *xgb.Conn

	minKeycode xproto.Keycode
	stride     int // keysyms per keycode
	keysyms    []xproto.Keysym

	// modifier masks, detected from the modifier mapping
	numLockMask uint16
	altGrMask   uint16
}

func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	if err := km.ReadMapping(); err != nil {
		return nil, err
	}
	return km, nil
}

//----------

func (km *KMap) ReadMapping() error {
	if err := km.readKeyboardMapping(); err != nil {
		return errors.Wrap(err, "keyboard mapping")
	}
	if err := km.readModMapping(); err != nil {
		return errors.Wrap(err, "modifier mapping")
	}
	return nil
}

func (km *KMap) readKeyboardMapping() error {
	si := xproto.Setup(km.conn)
	n := int(si.MaxKeycode) - int(si.MinKeycode) + 1
	if n <= 0 || n > 255 {
		return fmt.Errorf("bad keycode count: %v", n)
	}
	reply, err := xproto.GetKeyboardMapping(km.conn, si.MinKeycode, byte(n)).Reply()
	if err != nil {
		return err
	}
	if reply.KeysymsPerKeycode < 2 {
		return fmt.Errorf("keysyms per keycode < 2")
	}
	km.minKeycode = si.MinKeycode
	km.stride = int(reply.KeysymsPerKeycode)
	km.keysyms = reply.Keysyms
	return nil
}

func (km *KMap) readModMapping() error {
	modMap, err := xproto.GetModifierMapping(km.conn).Reply()
	if err != nil {
		return err
	}

	// 8 modifier groups, with n keycodes each
	// 0-2: shift, lock, control; 3-7: mod1-mod5 (detect)
	km.numLockMask = xproto.KeyButMaskMod2
	km.altGrMask = xproto.KeyButMaskMod5

	stride := int(modMap.KeycodesPerModifier)
	for g := 3; g < 8; g++ {
		kcs := modMap.Keycodes[g*stride : (g+1)*stride]
		for _, kc := range kcs {
			for _, ks := range km.keycodeToKeysyms(kc) {
				switch ks {
				case 0xff7f: // Num_Lock
					km.numLockMask = 1 << g
				case 0xfe03, 0xff7e: // ISO_Level3_Shift, Mode_switch
					km.altGrMask = 1 << g
				}
			}
		}
	}
	return nil
}

//----------

// Returns the keysym for the keycode given the modifiers state.
func (km *KMap) Lookup(keycode xproto.Keycode, state uint16) xproto.Keysym {
	return km.keysymsToKeysym(km.keycodeToKeysyms(keycode), state)
}

func (km *KMap) keycodeToKeysyms(keycode xproto.Keycode) []xproto.Keysym {
	if km.stride == 0 {
		return nil
	}
	y := int(keycode) - int(km.minKeycode)
	if y < 0 || (y+1)*km.stride > len(km.keysyms) {
		return nil
	}
	return km.keysyms[y*km.stride : (y+1)*km.stride]
}

func (km *KMap) keysymsToKeysym(kss []xproto.Keysym, state uint16) xproto.Keysym {
	hasShift := state&xproto.KeyButMaskShift != 0
	hasCapsLock := state&xproto.KeyButMaskLock != 0
	hasAltGr := km.altGrMask != 0 && state&km.altGrMask != 0
	hasNumLock := km.numLockMask != 0 && state&km.numLockMask != 0

	// each group has two symbols; the second group is usually at index 4
	i1 := 0
	if hasAltGr && len(kss) >= 6 {
		i1 = 4
	}
	i2 := i1 + 1
	if i1 >= len(kss) {
		return 0
	}
	if i2 >= len(kss) {
		i2 = i1
	}
	ks1, ks2 := kss[i1], kss[i2]
	if ks2 == 0 {
		ks2 = ks1
	}

	// keypad
	if hasNumLock && isKeypad(ks2) {
		if hasShift {
			return ks1
		}
		return ks2
	}

	// letters follow caps lock
	if r1 := keysymRune(ks1); r1 != 0 && unicode.IsLower(unicode.ToLower(r1)) {
		if hasShift != hasCapsLock {
			return ks2
		}
		return ks1
	}
	if hasShift {
		return ks2
	}
	return ks1
}

func isKeypad(ks xproto.Keysym) bool {
	return (0xff80 <= ks && ks <= 0xffbd) ||
		(0x11000000 <= ks && ks <= 0x1100ffff)
}
