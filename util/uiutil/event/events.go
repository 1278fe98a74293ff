// Event values. Window* and Mouse*/Key* are produced by drivers; the
// Event interface values (Pointer*, Key*, TextInput, Resize) are what
// widgets receive from the dispatcher.
package event

import (
	"image"
	"unicode"
)

//----------

type WindowClose struct{}
type WindowExpose struct{}
type WindowResize struct {
	Rect image.Rectangle
}

// Text produced by the keyboard (utf8), already composed by the driver.
type WindowText struct {
	Text string
}

//----------

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
	Clicks  int
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
	Clicks  int
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseWheel struct {
	Point image.Point
	Delta image.Point // x: right>0, y: up>0
	Mods  KeyModifiers
}

//----------

type KeyDown struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

func (kd *KeyDown) LowerRune() rune {
	return unicode.ToLower(kd.Rune)
}

type KeyUp struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

func (ku *KeyUp) LowerRune() rune {
	return unicode.ToLower(ku.Rune)
}
