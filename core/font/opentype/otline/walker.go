package otline

import (
	"unicode"

	"github.com/npillmayer/glyphline/core/font/opentype/ot"
	"golang.org/x/text/unicode/norm"
)

// GlyphClassifier assigns GDEF-like glyph classes to glyphs.
type GlyphClassifier func(*Glyph) ot.GlyphClassDefEnum

// UnicodeGlyphClass classifies glyphs without consulting a font's GDEF table.
// Glyphs standing for more than one character are ligatures; glyphs for
// combining characters are marks. Everything else is a base glyph.
func UnicodeGlyphClass(g *Glyph) ot.GlyphClassDefEnum {
	r := g.Unicode
	if g.Chars != nil {
		if len(g.Chars) > 1 {
			return ot.LigatureGlyph
		} else if len(g.Chars) == 1 {
			r = g.Chars[0]
		}
	}
	if r < 0 {
		return ot.UnclassifiedGlyph
	}
	if unicode.In(r, unicode.Mn, unicode.Me) || norm.NFD.PropertiesString(string(r)).CCC() != 0 {
		return ot.MarkGlyph
	}
	return ot.BaseGlyph
}

// ClassWalker is a NeighbourWalker for the window of a glyph line, skipping
// base glyphs, ligatures and marks as requested by a lookup flag.
// Mark attachment classes and mark filtering sets are not supported.
type ClassWalker struct {
	line     *GlyphLine
	classify GlyphClassifier
}

// NewClassWalker creates a walker for line. If classify is nil,
// UnicodeGlyphClass is used.
func NewClassWalker(line *GlyphLine, classify GlyphClassifier) *ClassWalker {
	if classify == nil {
		classify = UnicodeGlyphClass
	}
	return &ClassWalker{line: line, classify: classify}
}

// Next implements NeighbourWalker.
func (w *ClassWalker) Next(flag ot.LayoutTableLookupFlag, from int) int {
	for i := from + 1; i < w.line.End(); i++ {
		if !w.ignores(flag, w.line.Get(i)) {
			return i
		}
	}
	return -1
}

func (w *ClassWalker) ignores(flag ot.LayoutTableLookupFlag, g *Glyph) bool {
	switch w.classify(g) {
	case ot.BaseGlyph:
		return flag.Has(ot.LOOKUP_FLAG_IGNORE_BASE_GLYPHS)
	case ot.LigatureGlyph:
		return flag.Has(ot.LOOKUP_FLAG_IGNORE_LIGATURES)
	case ot.MarkGlyph:
		return flag.Has(ot.LOOKUP_FLAG_IGNORE_MARKS)
	}
	return false
}
