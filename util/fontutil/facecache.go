package fontutil

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Caches advances and kerning. Glyph masks are not cached since the
// truetype face reuses its mask buffer between calls.
// Not safe for concurrent use (ui loop only).
type FaceCache struct {
	font.Face
	gac map[rune]glyphAdvance
	kc  map[[2]rune]fixed.Int26_6
}

func NewFaceCache(face font.Face) *FaceCache {
	fc := &FaceCache{Face: face}
	fc.gac = map[rune]glyphAdvance{}
	fc.kc = map[[2]rune]fixed.Int26_6{}
	return fc
}

func (fc *FaceCache) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	ga, ok := fc.gac[ru]
	if !ok {
		ga.advance, ga.ok = fc.Face.GlyphAdvance(ru)
		fc.gac[ru] = ga
	}
	return ga.advance, ga.ok
}

func (fc *FaceCache) Kern(r0, r1 rune) fixed.Int26_6 {
	i := [2]rune{r0, r1}
	k, ok := fc.kc[i]
	if !ok {
		k = fc.Face.Kern(r0, r1)
		fc.kc[i] = k
	}
	return k
}

type glyphAdvance struct {
	advance fixed.Int26_6
	ok      bool
}
