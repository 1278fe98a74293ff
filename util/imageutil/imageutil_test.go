package imageutil

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.NRGBA{255, 128, 0, 255}) {
		t.Fatal(c)
	}
	c2, err := ParseHexColor("10203040")
	if err != nil {
		t.Fatal(err)
	}
	if c2 != (color.NRGBA{0x10, 0x20, 0x30, 0x40}) {
		t.Fatal(c2)
	}
	if _, err := ParseHexColor("#12"); err == nil {
		t.Fatal("expecting error")
	}
	if s := SprintHex(c2); s != "#10203040" {
		t.Fatal(s)
	}
}

func TestTintShadeFade(t *testing.T) {
	c := color.NRGBA{100, 100, 100, 200}
	if u := Tint(c, 1); u != (color.NRGBA{255, 255, 255, 200}) {
		t.Fatal(u)
	}
	if u := Shade(c, 1); u != (color.NRGBA{0, 0, 0, 200}) {
		t.Fatal(u)
	}
	if u := Fade(c, 0.5); u.A != 100 {
		t.Fatal(u)
	}
	if u := Fade(c, 3); u.A != 200 {
		t.Fatal(u)
	}
}

func TestFillRectangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillRectangle(img, image.Rect(2, 2, 4, 4), color.NRGBA{255, 0, 0, 255})
	if c := img.RGBAAt(3, 3); c != (color.RGBA{255, 0, 0, 255}) {
		t.Fatal(c)
	}
	if c := img.RGBAAt(4, 4); c != (color.RGBA{}) {
		t.Fatal(c)
	}
}

func TestBorderRectangle(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	BorderRectangle(img, image.Rect(0, 0, 10, 10), color.White, 1)
	if c := img.RGBAAt(0, 5); c.A != 255 {
		t.Fatal(c)
	}
	if c := img.RGBAAt(5, 5); c.A != 0 {
		t.Fatal(c)
	}

	// thicker than half the rect: all covered
	img2 := image.NewRGBA(image.Rect(0, 0, 4, 4))
	BorderRectangle(img2, img2.Bounds(), color.White, 3)
	if c := img2.RGBAAt(2, 2); c.A != 255 {
		t.Fatal(c)
	}
}

func TestLoadImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	fn := filepath.Join(t.TempDir(), "a.png")
	f, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img2, err := LoadImage(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !img2.Bounds().Eq(img.Bounds()) {
		t.Fatal(img2.Bounds())
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "none.png")); err == nil {
		t.Fatal("expecting error")
	}
}
