package ot

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// NOTDEF is the glyph index of the missing-glyph glyph, present in every font.
const NOTDEF GlyphIndex = 0

// --- Lookup flags ----------------------------------------------------------

// LayoutTableLookupFlag is a flag type for layout tables (GPOS and GSUB).
// Lookups use it to tell which neighbouring glyphs are to be skipped while
// matching an input sequence.
type LayoutTableLookupFlag uint16

// Lookup flags of layout tables (GPOS and GSUB)
const ( // LookupFlag bit enumeration
	// Note that the RIGHT_TO_LEFT flag is used only for GPOS type 3 lookups and is ignored
	// otherwise. It is not used by client software in determining text direction.
	LOOKUP_FLAG_RIGHT_TO_LEFT             LayoutTableLookupFlag = 0x0001
	LOOKUP_FLAG_IGNORE_BASE_GLYPHS        LayoutTableLookupFlag = 0x0002 // If set, skips over base glyphs
	LOOKUP_FLAG_IGNORE_LIGATURES          LayoutTableLookupFlag = 0x0004 // If set, skips over ligatures
	LOOKUP_FLAG_IGNORE_MARKS              LayoutTableLookupFlag = 0x0008 // If set, skips over all combining marks
	LOOKUP_FLAG_USE_MARK_FILTERING_SET    LayoutTableLookupFlag = 0x0010 // If set, indicates that the lookup table structure is followed by a MarkFilteringSet field.
	LOOKUP_FLAG_MARK_ATTACHMENT_TYPE_MASK LayoutTableLookupFlag = 0xFF00 // If not zero, skips over all marks of attachment type different from specified.
)

// Has reports whether all bits of other are set in f.
func (f LayoutTableLookupFlag) Has(other LayoutTableLookupFlag) bool {
	return f&other == other
}

// --- Glyph classes ---------------------------------------------------------

// GlyphClassDefEnum lists the glyph classes of a GDEF 'GlyphClassDef'-table.
// Glyphs not assigned to a class have class 0.
type GlyphClassDefEnum uint16

const (
	UnclassifiedGlyph GlyphClassDefEnum = iota // no class assigned
	BaseGlyph                                  // single character, spacing glyph
	LigatureGlyph                              // multiple character, spacing glyph
	MarkGlyph                                  // non-spacing combining glyph
	ComponentGlyph                             // part of single character, spacing glyph
)

func (c GlyphClassDefEnum) String() string {
	switch c {
	case BaseGlyph:
		return "base"
	case LigatureGlyph:
		return "ligature"
	case MarkGlyph:
		return "mark"
	case ComponentGlyph:
		return "component"
	}
	return "unclassified"
}
