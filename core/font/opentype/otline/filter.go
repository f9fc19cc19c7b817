package otline

// GlyphFilter decides if a glyph is to be kept.
type GlyphFilter func(*Glyph) bool

// Filter returns the glyphs of the window of l accepted by accept, together
// with their annotations. If every glyph is accepted, Filter returns l itself.
// Otherwise the result is a new line owning its buffer, with its window
// spanning all the accepted glyphs.
func (l *GlyphLine) Filter(accept GlyphFilter) *GlyphLine {
	l.checkWindow()
	kept := make([]slot, 0, l.Len())
	rejected := 0
	for _, s := range l.buf.slots[l.start:l.end] {
		if accept(s.glyph) {
			kept = append(kept, s)
		} else {
			rejected++
		}
	}
	if rejected == 0 {
		return l
	}
	tracer().Debugf("filter rejected %d of %d glyphs", rejected, l.Len())
	buf := &arena{slots: kept, annotated: l.buf.annotated}
	return &GlyphLine{buf: buf, end: len(kept)}
}
