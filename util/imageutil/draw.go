package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// Draws the color over r with the given op. A nil color draws nothing.
func DrawUniform(dst draw.Image, r image.Rectangle, c color.Color, op draw.Op) {
	if c == nil {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, op)
}

// Alpha blends the color over the rectangle.
func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Over)
}

// Alpha blends a border of the given thickness inside r. Corners are drawn once.
func BorderRectangle(img draw.Image, r image.Rectangle, c color.Color, size int) {
	if size <= 0 || r.Empty() {
		return
	}
	for _, side := range borderSides(r, size) {
		FillRectangle(img, side.Intersect(r), c)
	}
}

// Top and bottom span the full width, left and right fill the rows between them.
func borderSides(r image.Rectangle, size int) [4]image.Rectangle {
	inner := r.Inset(size)
	if inner.Empty() {
		// border covers everything
		return [4]image.Rectangle{r}
	}
	return [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, inner.Min.Y),
		image.Rect(r.Min.X, inner.Max.Y, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y),
		image.Rect(inner.Max.X, inner.Min.Y, r.Max.X, inner.Max.Y),
	}
}
