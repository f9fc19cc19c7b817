package otline

import (
	"github.com/npillmayer/glyphline/core/font/opentype/ot"
)

// GlyphProvider resolves glyph IDs of a font to glyphs. Glyph returns nil for
// IDs not present in the font.
//
// Glyph line operations never modify a glyph returned by a provider.
type GlyphProvider interface {
	Glyph(ot.GlyphIndex) *Glyph
}

// GlyphProviderFunc is an adapter to use a function as a GlyphProvider.
type GlyphProviderFunc func(ot.GlyphIndex) *Glyph

// Glyph calls f(gid).
func (f GlyphProviderFunc) Glyph(gid ot.GlyphIndex) *Glyph {
	return f(gid)
}

// NeighbourWalker finds the glyph a lookup with a given lookup flag considers
// to be the next one after position from, skipping glyphs the flag tells it to
// ignore. Next returns -1 if there is no such glyph.
type NeighbourWalker interface {
	Next(flag ot.LayoutTableLookupFlag, from int) int
}

// WalkerFunc is an adapter to use a function as a NeighbourWalker.
type WalkerFunc func(flag ot.LayoutTableLookupFlag, from int) int

// Next calls f(flag, from).
func (f WalkerFunc) Next(flag ot.LayoutTableLookupFlag, from int) int {
	return f(flag, from)
}

// resolve gets a private copy of a glyph from p.
func resolve(p GlyphProvider, gid ot.GlyphIndex) *Glyph {
	g := p.Glyph(gid)
	if g == nil {
		violated("font has no glyph for ID %d", gid)
	}
	c := *g
	return &c
}

// SubstituteOneToOne replaces the glyph at the cursor by the glyph for gid.
// The new glyph inherits the characters of the old one. If the old glyph has
// none, the new glyph's code-point is used, and the old glyph's code-point
// as a last resort.
func (l *GlyphLine) SubstituteOneToOne(p GlyphProvider, gid ot.GlyphIndex) {
	checkIndex(l.idx, l.Size(), "cursor")
	old := l.buf.slots[l.idx].glyph
	g := resolve(p, gid)
	switch {
	case old.Chars != nil:
		g.Chars = append([]rune(nil), old.Chars...)
	case g.HasValidUnicode():
		g.Chars = []rune{g.Unicode}
	case old.HasValidUnicode():
		g.Chars = []rune{old.Unicode}
	}
	tracer().Debugf("GSUB 1:1 at %d: subst %v for %v", l.idx, g, old)
	l.buf.slots[l.idx].glyph = g
}

// SubstituteOneToMany replaces the glyph at the cursor by the glyphs for gids.
// The window grows by len(gids)-1 and the cursor advances to the last of the
// new glyphs. gids must not be empty; a single glyph ID is a one-to-one
// substitution.
func (l *GlyphLine) SubstituteOneToMany(p GlyphProvider, gids []ot.GlyphIndex) {
	if len(gids) == 0 {
		violated("one-to-many substitution at %d without glyphs", l.idx)
	}
	if len(gids) == 1 {
		l.SubstituteOneToOne(p, gids[0])
		return
	}
	checkIndex(l.idx, l.Size(), "cursor")
	glyphs := make([]*Glyph, len(gids))
	for i, gid := range gids {
		glyphs[i] = resolve(p, gid)
	}
	tracer().Debugf("GSUB 1:n at %d: subst %v for %v", l.idx, glyphs, l.buf.slots[l.idx].glyph)
	l.buf.slots[l.idx].glyph = glyphs[0]
	l.buf.insert(l.idx+1, glyphs[1:]...)
	l.idx += len(gids) - 1
	l.end += len(gids) - 1
}

// SubstituteManyToOne replaces the glyph at the cursor and rightPartLen of its
// neighbours by the glyph for gid, typically a ligature. Neighbours are
// located with w, using lookup flag flag; glyphs skipped by w stay in place.
//
// The new glyph's characters are the concatenated characters (or
// code-points) of the glyphs it replaces. The window shrinks by rightPartLen,
// and the cursor stays on the new glyph.
func (l *GlyphLine) SubstituteManyToOne(p GlyphProvider, w NeighbourWalker,
	flag ot.LayoutTableLookupFlag, rightPartLen int, gid ot.GlyphIndex) {
	//
	checkIndex(l.idx, l.Size(), "cursor")
	if rightPartLen < 0 {
		violated("many-to-one substitution with %d components", rightPartLen)
	}
	// find all the components before touching the line
	components := make([]int, rightPartLen)
	pos := l.idx
	for j := range components {
		next := w.Next(flag, pos)
		if next <= pos || next >= l.Size() {
			violated("many-to-one substitution at %d: component %d of %d not found",
				l.idx, j+1, rightPartLen)
		}
		components[j] = next
		pos = next
	}
	lig := resolve(p, gid)
	chars := l.buf.slots[l.idx].glyph.appendText(make([]rune, 0, rightPartLen+1))
	for _, i := range components {
		chars = l.buf.slots[i].glyph.appendText(chars)
	}
	for j := len(components) - 1; j >= 0; j-- {
		l.buf.remove(components[j])
	}
	lig.Chars = chars
	tracer().Debugf("GSUB n:1 at %d: subst %v for %d glyphs", l.idx, lig, rightPartLen+1)
	l.buf.slots[l.idx].glyph = lig
	l.end -= rightPartLen
}
