package otline

// Part is a run of glyphs of a line. Annotated parts are maximal runs of glyphs
// sharing the same ActualText. Other parts are maximal runs of glyphs
// without an annotation; their text has to be taken from the glyphs.
type Part struct {
	Start, End int    // glyph positions [Start,End)
	ActualText string // text of the annotation, if Annotated
	Annotated  bool
}

// PartIterator splits a range of a glyph line into parts. It moves forward
// only; to start over, create a new iterator.
type PartIterator struct {
	line *GlyphLine
	pos  int
	end  int
}

// Parts returns an iterator over the parts of the glyphs [start,end).
func (l *GlyphLine) Parts(start, end int) *PartIterator {
	checkRange(start, end, l.Size())
	return &PartIterator{line: l, pos: start, end: end}
}

// AllParts returns an iterator over the parts of the window of l.
func (l *GlyphLine) AllParts() *PartIterator {
	l.checkWindow()
	return l.Parts(l.start, l.end)
}

// Next returns the next part, or false if the range is exhausted.
func (it *PartIterator) Next() (Part, bool) {
	buf := it.line.buf
	end := min(it.end, len(buf.slots))
	if it.pos >= end {
		return Part{}, false
	}
	start := it.pos
	if !buf.annotated {
		it.pos = end
		return Part{Start: start, End: end}, true
	}
	text := buf.slots[start].text
	for it.pos < end && buf.slots[it.pos].text == text {
		it.pos++
	}
	if text == nil {
		return Part{Start: start, End: it.pos}, true
	}
	return Part{Start: start, End: it.pos, ActualText: text.Value, Annotated: true}, true
}

// NeedsActualText is false for annotated parts whose glyphs' code-points
// spell out the annotation anyway, and for parts without annotation.
// Writers of /ActualText spans may omit parts for which it is false.
func (l *GlyphLine) NeedsActualText(part Part) bool {
	if !part.Annotated {
		return false
	}
	chars := make([]rune, 0, part.End-part.Start)
	for _, s := range l.buf.slots[part.Start:part.End] {
		if !s.glyph.HasValidUnicode() {
			return true
		}
		chars = append(chars, s.glyph.Unicode)
	}
	return string(chars) != part.ActualText
}
