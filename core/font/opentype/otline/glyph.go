package otline

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/glyphline/core/font/opentype/ot"
	"golang.org/x/image/font/sfnt"
)

// NoUnicode is the Unicode value of glyphs not mapped from a code-point.
const NoUnicode rune = -1

// Glyph is a glyph of a font, as it occurs in a line of shaped text.
// Glyphs are handled by pointer; two glyphs are the same glyph if their pointers are.
type Glyph struct {
	ID      ot.GlyphIndex // glyph index within the font
	Chars   []rune        // characters this glyph has been produced from; nil if unknown
	Unicode rune          // code-point the font maps to this glyph, or NoUnicode
	Advance sfnt.Units    // advance width in font units
}

// NewGlyph creates a glyph without recovered characters.
func NewGlyph(id ot.GlyphIndex, unicode rune) *Glyph {
	return &Glyph{ID: id, Unicode: unicode}
}

// HasValidUnicode is true if g carries a valid Unicode code-point.
func (g *Glyph) HasValidUnicode() bool {
	return g.Unicode >= 0 && utf8.ValidRune(g.Unicode)
}

// Text returns the best guess of the source text a glyph stands for: its
// recovered characters if present, otherwise its code-point.
// Glyphs with neither contribute the empty string.
func (g *Glyph) Text() string {
	return string(g.appendText(nil))
}

func (g *Glyph) appendText(chars []rune) []rune {
	if g.Chars != nil {
		return append(chars, g.Chars...)
	}
	if g.HasValidUnicode() {
		return append(chars, g.Unicode)
	}
	return chars
}

func (g *Glyph) String() string {
	if g == nil {
		return "(nil)"
	}
	return fmt.Sprintf("(GID=%d, %q)", g.ID, g.Text())
}
