package event

import "image"

type Kind int

const (
	KindNone Kind = iota
	KindPointerMoved
	KindPointerPressed
	KindPointerReleased
	KindPointerWheel
	KindKeyPressed
	KindKeyReleased
	KindTextInput
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindPointerMoved:
		return "PointerMoved"
	case KindPointerPressed:
		return "PointerPressed"
	case KindPointerReleased:
		return "PointerReleased"
	case KindPointerWheel:
		return "PointerWheel"
	case KindKeyPressed:
		return "KeyPressed"
	case KindKeyReleased:
		return "KeyReleased"
	case KindTextInput:
		return "TextInput"
	case KindResize:
		return "Resize"
	}
	return "None"
}

//----------

// Delivered to widgets. A widget sets the handled flag only when it
// consumed the event; dispatch stops there.
type Event interface {
	Kind() Kind
	IsHandled() bool
	SetHandled(bool)
}

type Handled struct {
	handled bool
}

func (h *Handled) IsHandled() bool {
	return h.handled
}
func (h *Handled) SetHandled(v bool) {
	h.handled = v
}

//----------

type PointerMoved struct {
	Handled
	Point image.Point
}

func (*PointerMoved) Kind() Kind { return KindPointerMoved }

type PointerPressed struct {
	Handled
	Point  image.Point
	Button MouseButton
	Clicks int
}

func (*PointerPressed) Kind() Kind { return KindPointerPressed }

type PointerReleased struct {
	Handled
	Point  image.Point
	Button MouseButton
	Clicks int
}

func (*PointerReleased) Kind() Kind { return KindPointerReleased }

type PointerWheel struct {
	Handled
	Point image.Point
	Delta image.Point
}

func (*PointerWheel) Kind() Kind { return KindPointerWheel }

type KeyPressed struct {
	Handled
	KeySym KeySym
	Mods   KeyModifiers
}

func (*KeyPressed) Kind() Kind { return KindKeyPressed }

type KeyReleased struct {
	Handled
	KeySym KeySym
	Mods   KeyModifiers
}

func (*KeyReleased) Kind() Kind { return KindKeyReleased }

type TextInput struct {
	Handled
	Text string
}

func (*TextInput) Kind() Kind { return KindTextInput }

type Resize struct {
	Handled
	Width, Height int
}

func (*Resize) Kind() Kind { return KindResize }

//----------

// Translates a driver event into the widget event model. Returns nil
// for events that have no widget counterpart.
func Translate(ev any) Event {
	switch t := ev.(type) {
	case *MouseMove:
		return &PointerMoved{Point: t.Point}
	case *MouseDown:
		return &PointerPressed{Point: t.Point, Button: t.Button, Clicks: t.Clicks}
	case *MouseUp:
		return &PointerReleased{Point: t.Point, Button: t.Button, Clicks: t.Clicks}
	case *MouseWheel:
		return &PointerWheel{Point: t.Point, Delta: t.Delta}
	case *KeyDown:
		return &KeyPressed{KeySym: t.KeySym, Mods: t.Mods}
	case *KeyUp:
		return &KeyReleased{KeySym: t.KeySym, Mods: t.Mods}
	case *WindowText:
		return &TextInput{Text: t.Text}
	case *WindowResize:
		return &Resize{Width: t.Rect.Dx(), Height: t.Rect.Dy()}
	}
	return nil
}
