/*
Package font is for loading and locating OpenType fonts.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

Glyph lines never scale fonts: glyph metrics are kept in font units.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Fonts are located by name, either in a font directory given by the
configuration key

   fontpath

or, failing that, among the fonts installed on the system.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'glyphline.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("glyphline.fonts")
}
