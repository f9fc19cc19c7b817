/*
Package otquery queries glyph information from OpenType fonts.

It connects fonts to glyph lines: FontGlyphs resolves glyph IDs of a font to
glyphs, carrying the code-point a glyph represents and its advance width, and
MapText creates the initial glyph line for a text, one glyph per character.

No font collections nor variable fonts are supported yet.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glyphline.fonts'
func tracer() tracing.Trace {
	return tracing.Select("glyphline.fonts")
}
