package driver

import (
	"image"
	"image/draw"
)

type Window interface {
	// Emits uiutil/event values and errors. Blocks until the window is closed, then closes the channel.
	EventLoop(events chan<- any)

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error
}
