/*
Package ot holds the font-level vocabulary shared by the glyph line packages:
glyph indices, the lookup flags of GSUB/GPOS lookups and the
glyph classes of a GDEF table.

Parsing of font tables is left to golang.org/x/image/font/sfnt.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot
