/*
Package otline holds runs of glyphs during OpenType text shaping.

A GlyphLine starts out as the glyphs a font's cmap yields for a piece of text.
While the lookups of a font's GSUB table fire, a shaping driver positions the
line's cursor and calls one of the substitution operations:

▪︎ one-to-one (GSUB lookup type 1 and alternates),

▪︎ one-to-many (GSUB lookup type 2, decomposition),

▪︎ many-to-one (GSUB lookup type 4, ligatures).

Deciding which substitution fires, i.e. walking the lookup list of a font, is
not part of this package. Neither is resolving a glyph ID to a glyph: clients
provide a GlyphProvider for that, and a NeighbourWalker for the lookup flags
controlling which glyphs a ligature may skip over.

After shaping, the text a line of glyphs stands for can be recovered. Every
glyph remembers the characters it was produced from, and ranges of glyphs may
be annotated with an "actual text" (as in PDF's /ActualText). A PartIterator
splits a line into runs of glyphs sharing one annotation and runs without
annotation.

# Aliasing

Glyph lines created with View or Narrow share their buffer with the line they
were derived from. Changes done through one of them are visible through all the
others. Lines created with Copy, SubLine, SetGlyphs or a rejecting Filter own
their buffer. GlyphLine is not synchronized; only one shaping pipeline may
mutate a buffer at a time.

# Errors

Operations on a glyph line panic if a precondition is violated (index out of
range, empty substitution, walker running out of glyphs). These errors are bugs
in a shaping driver or a malformed font, and are never transient. The panic
value is an error wrapping ErrPrecondition. Preconditions are checked before a
line is modified, so a failing operation leaves the line untouched.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otline

import (
	"errors"

	"github.com/npillmayer/glyphline/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glyphline.otline'.
func tracer() tracing.Trace {
	return tracing.Select("glyphline.otline")
}

// ErrPrecondition is wrapped by every error a glyph line panics with.
var ErrPrecondition = errors.New("glyph line precondition violated")

// violated panics with an error carrying code core.EPRECONDITION.
func violated(format string, v ...interface{}) {
	err := core.WrapError(ErrPrecondition, core.EPRECONDITION, format, v...)
	tracer().Errorf(err.Error())
	panic(err)
}

func checkIndex(i, n int, what string) {
	if i < 0 || i >= n {
		violated("%s %d out of range [0,%d)", what, i, n)
	}
}

func checkRange(left, right, n int) {
	if left < 0 || left > right || right > n {
		violated("range [%d,%d) out of bounds [0,%d]", left, right, n)
	}
}
