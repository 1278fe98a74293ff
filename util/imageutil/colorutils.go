package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

func NrgbaColor(c color.Color) color.NRGBA {
	if u, ok := c.(color.NRGBA); ok {
		return u
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

//----------

func NrgbaFromInt(u int) color.NRGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.NRGBA{r, g, b, 255}
}

// Accepts "#rrggbb" and "#rrggbbaa" (the "#" is optional).
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad color length: %q", s)
	}
	u, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color: %q", s)
	}
	if len(s) == 6 {
		return NrgbaFromInt(int(u)), nil
	}
	c := NrgbaFromInt(int(u >> 8))
	c.A = uint8(u & 0xff)
	return c, nil
}

func SprintHex(c color.Color) string {
	u := NrgbaColor(c)
	if u.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", u.R, u.G, u.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", u.R, u.G, u.B, u.A)
}

//----------

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.NRGBA, v float64) color.NRGBA {
	v = limit01(v)
	c.R += uint8(v * float64(255-c.R))
	c.G += uint8(v * float64(255-c.G))
	c.B += uint8(v * float64(255-c.B))
	return c
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.NRGBA, v float64) color.NRGBA {
	v = 1.0 - limit01(v)
	c.R = uint8(v * float64(c.R))
	c.G = uint8(v * float64(c.G))
	c.B = uint8(v * float64(c.B))
	return c
}

// Scales the alpha channel by the opacity (0.0, 1.0).
func Fade(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A) * limit01(opacity))
	return c
}

func limit01(v float64) float64 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}
