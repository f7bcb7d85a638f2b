package textmeasure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// face measures runs of text in one font at one size.
type face struct {
	font    *sfnt.Font
	ppem    fixed.Int26_6
	hinting font.Hinting

	buf sfnt.Buffer
}

func (f *face) advance(r rune) (fixed.Int26_6, bool) {
	g, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || g == 0 {
		return 0, false
	}
	adv, err := f.font.GlyphAdvance(&f.buf, g, f.ppem, f.hinting)
	return adv, err == nil
}

func (f *face) kern(r0, r1 rune) fixed.Int26_6 {
	g0, err := f.font.GlyphIndex(&f.buf, r0)
	if err != nil {
		return 0
	}
	g1, err := f.font.GlyphIndex(&f.buf, r1)
	if err != nil {
		return 0
	}
	k, err := f.font.Kern(&f.buf, g0, g1, f.ppem, f.hinting)
	if err != nil {
		return 0
	}
	return k
}

// lineHeight is ascent plus descent plus line gap.
func (f *face) lineHeight() fixed.Int26_6 {
	m, err := f.font.Metrics(&f.buf, f.ppem, f.hinting)
	if err != nil {
		return f.ppem
	}
	return m.Height
}

// width returns the advance width of s including kerning. Runes the font
// has no glyph for are skipped.
func (f *face) width(s string) fixed.Int26_6 {
	var w fixed.Int26_6
	prev, hasPrev := rune(0), false
	for _, r := range s {
		a, ok := f.advance(r)
		if !ok {
			continue
		}
		if hasPrev {
			w += f.kern(prev, r)
		}
		w += a
		prev, hasPrev = r, true
	}
	return w
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
