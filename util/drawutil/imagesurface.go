package drawutil

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jmigpin/squidl/util/fontutil"
	"github.com/jmigpin/squidl/util/imageutil"
	"github.com/jmigpin/squidl/util/uiutil/geom"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Implements widget.Surface over a draw.Image. Colors are alpha blended.
type ImageSurface struct {
	img     draw.Image
	clip    image.Rectangle
	clipSet bool
}

func NewImageSurface(img draw.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

func (s *ImageSurface) Image() draw.Image {
	return s.img
}

func (s *ImageSurface) SetImage(img draw.Image) {
	s.img = img
}

//----------

func (s *ImageSurface) SetClipRect(r geom.Rect) {
	s.clip = r.Image()
	s.clipSet = true
}

func (s *ImageSurface) ResetClipRect() {
	s.clipSet = false
}

// Image restricted to the clip rect. Drawing functions clip to the destination bounds.
func (s *ImageSurface) dst() draw.Image {
	if !s.clipSet {
		return s.img
	}
	if si, ok := s.img.(subImager); ok {
		if d, ok := si.SubImage(s.clip).(draw.Image); ok {
			return d
		}
	}
	return s.img
}

type subImager interface {
	SubImage(image.Rectangle) image.Image
}

//----------

// Fills the whole image, ignoring the clip.
func (s *ImageSurface) Clear(c color.Color) {
	imageutil.DrawUniform(s.img, s.img.Bounds(), c, draw.Src)
}

func (s *ImageSurface) DrawFilledRect(r geom.Rect, c color.Color) {
	imageutil.FillRectangle(s.dst(), r.Image(), c)
}

// One pixel border.
func (s *ImageSurface) DrawOutlineRect(r geom.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	imageutil.BorderRectangle(s.dst(), r.Image(), c, 1)
}

func (s *ImageSurface) FillRoundedRect(r geom.Rect, radius int, c color.Color) {
	if r.Empty() {
		return
	}
	dst := s.dst()
	radius = roundedRadius(r, radius)
	for y := r.Y; y < r.Bottom(); y++ {
		x0, x1 := roundedSpan(r, radius, y)
		imageutil.FillRectangle(dst, image.Rect(x0, y, x1, y+1), c)
	}
}

// One pixel rounded border.
func (s *ImageSurface) DrawRoundedRect(r geom.Rect, radius int, c color.Color) {
	if r.Empty() {
		return
	}
	dst := s.dst()
	radius = roundedRadius(r, radius)
	in := r.Inset(geom.Uniform(1))
	inRadius := max(0, radius-1)
	for y := r.Y; y < r.Bottom(); y++ {
		x0, x1 := roundedSpan(r, radius, y)
		if y == r.Y || y == r.Bottom()-1 || in.Empty() {
			imageutil.FillRectangle(dst, image.Rect(x0, y, x1, y+1), c)
			continue
		}
		ix0, ix1 := roundedSpan(in, inRadius, y)
		if ix0 >= ix1 {
			imageutil.FillRectangle(dst, image.Rect(x0, y, x1, y+1), c)
			continue
		}
		imageutil.FillRectangle(dst, image.Rect(x0, y, ix0, y+1), c)
		imageutil.FillRectangle(dst, image.Rect(ix1, y, x1, y+1), c)
	}
}

func roundedRadius(r geom.Rect, radius int) int {
	return max(0, min(radius, r.W/2, r.H/2))
}

// Horizontal extent [x0,x1) of the rounded rect at row y (pixel centers).
func roundedSpan(r geom.Rect, radius, y int) (int, int) {
	if radius == 0 {
		return r.X, r.Right()
	}
	top := float64(r.Y + radius)
	bottom := float64(r.Bottom() - radius)
	yc := float64(y) + 0.5
	dy := 0.0
	if yc < top {
		dy = top - yc
	} else if yc > bottom {
		dy = yc - bottom
	}
	rf := float64(radius)
	dx := rf - math.Sqrt(math.Max(0, rf*rf-dy*dy))
	d := int(math.Round(dx))
	return r.X + d, r.Right() - d
}

//----------

// Bresenham, both ends included.
func (s *ImageSurface) DrawLine(p1, p2 image.Point, c color.Color) {
	dst := s.dst()
	b := dst.Bounds()
	src := image.NewUniform(c)
	plot := func(x, y int) {
		p := image.Point{x, y}
		if p.In(b) {
			draw.Draw(dst, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
		}
	}

	dx := abs(p2.X - p1.X)
	dy := -abs(p2.Y - p1.Y)
	sx, sy := 1, 1
	if p1.X > p2.X {
		sx = -1
	}
	if p1.Y > p2.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p1.X, p1.Y
	for {
		plot(x, y)
		if x == p2.X && y == p2.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

//----------

// Scales the src part of the image into dst.
func (s *ImageSurface) DrawTexture(img image.Image, src image.Rectangle, dst geom.Rect, opacity float64) {
	if img == nil || dst.Empty() || opacity <= 0 {
		return
	}
	var opt *xdraw.Options
	if opacity < 1 {
		a := uint8(math.Round(opacity * 255))
		opt = &xdraw.Options{DstMask: image.NewUniform(color.Alpha{a})}
	}
	xdraw.ApproxBiLinear.Scale(s.dst(), dst.Image(), img, src, xdraw.Over, opt)
}

// Single line of text with the top-left at the dst position.
func (s *ImageSurface) DrawText(ff *fontutil.FontFace, text string, c color.Color, dst geom.Rect) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  s.dst(),
		Src:  image.NewUniform(c),
		Face: ff.Face,
		Dot: fixed.Point26_6{
			X: fixed.I(dst.X),
			Y: fixed.I(dst.Y) + ff.BaseLine(),
		},
	}
	d.DrawString(text)
}
