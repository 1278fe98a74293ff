// Screen space value types used by the widget tree.
package geom

import (
	"fmt"
	"image"
	"math"
)

// Integer box. W and H are floored to zero before being applied to a node.
type Rect struct {
	X, Y, W, H int
}

func R(x, y, w, h int) Rect {
	return Rect{x, y, w, h}
}

func FromImage(r image.Rectangle) Rect {
	return Rect{r.Min.X, r.Min.Y, r.Dx(), r.Dy()}
}

func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Rect) Pos() image.Point {
	return image.Point{r.X, r.Y}
}
func (r Rect) Size() image.Point {
	return image.Point{r.W, r.H}
}
func (r Rect) Right() int {
	return r.X + r.W
}
func (r Rect) Bottom() int {
	return r.Y + r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Half-open containment.
func (r Rect) Contains(p image.Point) bool {
	return r.X <= p.X && p.X < r.X+r.W &&
		r.Y <= p.Y && p.Y < r.Y+r.H
}

func (r Rect) Add(p image.Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

func (r Rect) Floor() Rect {
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Shrinks the rect by the insets. The result is floored.
func (r Rect) Inset(in Insets) Rect {
	r.X += in.Left
	r.Y += in.Top
	r.W -= in.WidthSum()
	r.H -= in.HeightSum()
	return r.Floor()
}

func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return FromImage(r.Image().Union(s.Image()))
}

func (r Rect) Intersect(s Rect) Rect {
	return FromImage(r.Image().Intersect(s.Image()))
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", r.X, r.Y, r.W, r.H)
}

//----------

// Per edge inset. Used as padding by containers and as margin by children.
type Insets struct {
	Top, Left, Bottom, Right int
}

func Uniform(v int) Insets {
	return Insets{v, v, v, v}
}

func (in Insets) WidthSum() int {
	return in.Left + in.Right
}
func (in Insets) HeightSum() int {
	return in.Top + in.Bottom
}

//----------

func Dist(a, b image.Point) float64 {
	return Magnitude(a.Sub(b))
}

func Magnitude(p image.Point) float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}
