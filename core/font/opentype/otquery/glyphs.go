package otquery

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/glyphline/core/font"
	"github.com/npillmayer/glyphline/core/font/opentype/ot"
	"github.com/npillmayer/glyphline/core/font/opentype/otline"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontGlyphs is a glyph provider for a font. It is safe for concurrent use.
type FontGlyphs struct {
	font    *font.ScalableFont
	mx      sync.Mutex
	buf     sfnt.Buffer
	glyphs  map[ot.GlyphIndex]*otline.Glyph
	reverse map[ot.GlyphIndex]rune // lazy
}

var _ otline.GlyphProvider = (*FontGlyphs)(nil)

// NewGlyphProvider creates a glyph provider for f.
func NewGlyphProvider(f *font.ScalableFont) *FontGlyphs {
	return &FontGlyphs{
		font:   f,
		glyphs: make(map[ot.GlyphIndex]*otline.Glyph),
	}
}

// Font returns the font glyphs are taken from.
func (fg *FontGlyphs) Font() *font.ScalableFont {
	return fg.font
}

// Glyph returns the glyph for gid, or nil if the font has no such glyph.
// Glyphs are cached and must not be modified by clients.
//
// The glyph's Unicode is the lowest code-point of the Basic Multilingual
// Plane mapping to gid, if any.
func (fg *FontGlyphs) Glyph(gid ot.GlyphIndex) *otline.Glyph {
	if int(gid) >= fg.font.SFNT.NumGlyphs() {
		tracer().Debugf("font %s has no glyph %d", fg.font.Fontname, gid)
		return nil
	}
	fg.mx.Lock()
	defer fg.mx.Unlock()
	if g, ok := fg.glyphs[gid]; ok {
		return g
	}
	r, ok := fg.reverseCMap()[gid]
	if !ok {
		r = otline.NoUnicode
	}
	g := otline.NewGlyph(gid, r)
	g.Advance = fg.advance(gid)
	fg.glyphs[gid] = g
	return g
}

// GlyphIndex returns the glyph index for a code-point. Code-points not
// covered by the font map to ot.NOTDEF.
func (fg *FontGlyphs) GlyphIndex(r rune) ot.GlyphIndex {
	fg.mx.Lock()
	defer fg.mx.Unlock()
	return fg.glyphIndex(r)
}

func (fg *FontGlyphs) glyphIndex(r rune) ot.GlyphIndex {
	gid, err := fg.font.SFNT.GlyphIndex(&fg.buf, r)
	if err != nil {
		tracer().Errorf("cmap lookup for %#U: %v", r, err)
		return ot.NOTDEF
	}
	return ot.GlyphIndex(gid)
}

// advance returns the advance width of a glyph in font units.
// Scaling to one em per units-per-em leaves the units unchanged.
func (fg *FontGlyphs) advance(gid ot.GlyphIndex) sfnt.Units {
	ppem := fixed.I(int(fg.font.UnitsPerEm()))
	adv, err := fg.font.SFNT.GlyphAdvance(&fg.buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingNone)
	if err != nil {
		tracer().Errorf("no advance for glyph %d: %v", gid, err)
		return 0
	}
	return sfnt.Units(adv.Round())
}

// reverseCMap maps glyphs to code-points. It is created on first use, by
// asking the font for every code-point of the BMP. Must be called with fg.mx
// held.
func (fg *FontGlyphs) reverseCMap() map[ot.GlyphIndex]rune {
	if fg.reverse != nil {
		return fg.reverse
	}
	fg.reverse = make(map[ot.GlyphIndex]rune)
	for r := rune(0); r <= 0xffff; r++ {
		if !utf8.ValidRune(r) {
			continue // surrogates
		}
		gid := fg.glyphIndex(r)
		if gid == ot.NOTDEF {
			continue
		}
		if _, ok := fg.reverse[gid]; !ok {
			fg.reverse[gid] = r
		}
	}
	tracer().Debugf("reverse cmap of %s has %d entries", fg.font.Fontname, len(fg.reverse))
	return fg.reverse
}

// MapText creates a glyph line for text, with one glyph per character.
// Each glyph carries the character it has been mapped from, even if the font
// does not cover it and the glyph is ot.NOTDEF.
func MapText(p *FontGlyphs, text string) *otline.GlyphLine {
	glyphs := make([]*otline.Glyph, 0, len(text))
	for _, r := range text {
		g := *p.Glyph(p.GlyphIndex(r))
		g.Unicode = r
		glyphs = append(glyphs, &g)
	}
	tracer().Debugf("mapped %q to %d glyphs", text, len(glyphs))
	return otline.NewGlyphLine(glyphs)
}
