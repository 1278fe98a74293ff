//go:build !windows

package driver

import (
	"image"

	"github.com/jmigpin/squidl/driver/xdriver"
)

func NewWindow(size image.Point) (Window, error) {
	return xdriver.NewWindow(size)
}
