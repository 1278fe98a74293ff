package fontutil

import (
	"image"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func DefaultFont() *Font {
	f, err := FontsMan.Font(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

func DefaultFontFace() *FontFace {
	return DefaultFont().FontFace2(14)
}

//----------

var FontsMan = NewFontsManager()

//----------

type FontsManager struct {
	fontsCache map[string]*Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.fontsCache = map[string]*Font{}
}

func (fm *FontsManager) Font(ttf []byte) (*Font, error) {
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

type Font struct {
	Font       *truetype.Font
	facesCache map[truetype.Options]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	tf, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	f := &Font{Font: tf}
	f.ClearFacesCache()
	return f, nil
}

func (f *Font) ClearFacesCache() {
	f.facesCache = map[truetype.Options]*FontFace{}
}

func (f *Font) FontFace(opt truetype.Options) *FontFace {
	if opt.Size == 0 {
		opt.Size = 12
	}
	if opt.DPI == 0 {
		opt.DPI = 72
	}
	ff, ok := f.facesCache[opt]
	if ok {
		return ff
	}
	ff = NewFontFace(f, opt)
	f.facesCache[opt] = ff
	return ff
}

func (f *Font) FontFace2(size float64) *FontFace {
	opt := truetype.Options{Size: size, Hinting: font.HintingFull}
	return f.FontFace(opt)
}

//----------

type FontFace struct {
	Font    *Font
	Face    font.Face
	Size    float64 // in points, readonly
	Metrics font.Metrics

	lineHeight fixed.Int26_6
	baselineY  fixed.Int26_6
}

func NewFontFace(f *Font, opt truetype.Options) *FontFace {
	face := truetype.NewFace(f.Font, &opt)
	ff := &FontFace{Font: f, Face: NewFaceCache(face), Size: opt.Size}
	ff.Metrics = face.Metrics()
	ff.lineHeight = max(
		ff.Metrics.Ascent+ff.Metrics.Descent,
		ff.Metrics.Height)
	ff.baselineY = min(
		ff.Metrics.Ascent,
		ff.lineHeight-ff.Metrics.Descent)
	return ff
}

func (ff *FontFace) LineHeight() int {
	return ff.lineHeight.Ceil()
}

// Distance from the top of a line to the baseline.
func (ff *FontFace) BaseLine() fixed.Int26_6 {
	return ff.baselineY
}

func (ff *FontFace) MeasureString(s string) int {
	return font.MeasureString(ff.Face, s).Ceil()
}

// Size of a possibly multi-line string ("\n" separated).
func (ff *FontFace) MeasureLines(s string) image.Point {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, ff.MeasureString(l))
	}
	return image.Point{w, len(lines) * ff.LineHeight()}
}

// Rune index whose left edge is closest to x (relative to the start of the string).
func (ff *FontFace) IndexAt(s string, x int) int {
	if x <= 0 {
		return 0
	}
	i := 0
	prev := 0
	for j := range s {
		w := ff.MeasureString(s[:j])
		if w >= x {
			if x-prev < w-x {
				return i - 1
			}
			return i
		}
		prev = w
		i++
	}
	w := ff.MeasureString(s)
	if x-prev < w-x {
		return i - 1
	}
	return i
}
