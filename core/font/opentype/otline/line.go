package otline

import (
	"strings"
)

// ActualText is the source text a range of glyphs represents, independent of
// the characters recovered from the glyphs themselves.
//
// Every call to SetActualText creates a new ActualText. Runs of glyphs are
// coalesced if they share the same *ActualText, not if they have equal texts.
type ActualText struct {
	Value string
}

// slot is a single glyph position of a buffer. text is nil for glyphs
// without an annotation.
type slot struct {
	glyph *Glyph
	text  *ActualText
}

// arena is a buffer of glyphs, possibly shared by more than one GlyphLine.
// annotated tells if the annotation channel has been created.
type arena struct {
	slots     []slot
	annotated bool
}

func (a *arena) insert(at int, glyphs ...*Glyph) {
	n := len(glyphs)
	a.slots = append(a.slots, make([]slot, n)...)
	copy(a.slots[at+n:], a.slots[at:])
	for i, g := range glyphs {
		a.slots[at+i] = slot{glyph: g}
	}
}

func (a *arena) remove(at int) {
	copy(a.slots[at:], a.slots[at+1:])
	a.slots[len(a.slots)-1] = slot{}
	a.slots = a.slots[:len(a.slots)-1]
}

func (a *arena) duplicate(left, right int) *arena {
	slots := make([]slot, right-left)
	copy(slots, a.slots[left:right])
	return &arena{slots: slots, annotated: a.annotated}
}

// GlyphLine is a sequence of glyphs with an active window [Start(),End())
// and a cursor, used by the substitution operations.
//
// Indices of a glyph line always address its buffer, not its window.
type GlyphLine struct {
	buf        *arena
	start, end int
	idx        int
}

// NewGlyphLine creates a glyph line from a list of glyphs. The line's window
// spans all the glyphs. The line does not share glyphs with the slice.
func NewGlyphLine(glyphs []*Glyph) *GlyphLine {
	buf := &arena{slots: make([]slot, len(glyphs))}
	for i, g := range glyphs {
		buf.slots[i].glyph = g
	}
	return &GlyphLine{buf: buf, end: len(glyphs)}
}

// View returns a glyph line sharing the buffer, window and cursor of l.
func (l *GlyphLine) View() *GlyphLine {
	view := *l
	return &view
}

// Narrow returns a glyph line sharing the buffer of l, with window [start,end).
// The cursor is copied from l.
func (l *GlyphLine) Narrow(start, end int) *GlyphLine {
	checkRange(start, end, l.Size())
	return &GlyphLine{buf: l.buf, start: start, end: end, idx: l.idx}
}

// Copy returns an independent glyph line holding the glyphs [left,right) of l,
// including their annotations. Its window is [0,right-left).
func (l *GlyphLine) Copy(left, right int) *GlyphLine {
	checkRange(left, right, l.Size())
	return &GlyphLine{buf: l.buf.duplicate(left, right), end: right - left}
}

// SubLine is like Copy, but translates the cursor of l into the new line.
func (l *GlyphLine) SubLine(left, right int) *GlyphLine {
	sub := l.Copy(left, right)
	sub.idx = l.idx - left
	return sub
}

// Size returns the number of glyphs in the buffer, regardless of the window.
func (l *GlyphLine) Size() int {
	return len(l.buf.slots)
}

// Start is the start of the window.
func (l *GlyphLine) Start() int { return l.start }

// End is the end of the window (exclusive).
func (l *GlyphLine) End() int { return l.end }

// Len is the length of the window.
func (l *GlyphLine) Len() int { return l.end - l.start }

// SetWindow sets the window to [start,end).
func (l *GlyphLine) SetWindow(start, end int) {
	checkRange(start, end, l.Size())
	l.start, l.end = start, end
}

// checkWindow fails if the buffer has shrunk below the window, e.g. through
// another line sharing it.
func (l *GlyphLine) checkWindow() {
	checkRange(l.start, l.end, l.Size())
}

// Cursor is the glyph position the substitution operations work on.
func (l *GlyphLine) Cursor() int { return l.idx }

// SetCursor positions the cursor.
func (l *GlyphLine) SetCursor(i int) {
	checkIndex(i, l.Size(), "cursor")
	l.idx = i
}

// Get returns the glyph at position i.
func (l *GlyphLine) Get(i int) *Glyph {
	checkIndex(i, l.Size(), "glyph index")
	return l.buf.slots[i].glyph
}

// Set replaces the glyph at position i, leaving its annotation alone.
func (l *GlyphLine) Set(i int, g *Glyph) {
	checkIndex(i, l.Size(), "glyph index")
	l.buf.slots[i].glyph = g
}

// Add appends a glyph to the buffer. The window is not changed.
func (l *GlyphLine) Add(g *Glyph) {
	l.buf.insert(l.Size(), g)
}

// Insert inserts a glyph at position i, shifting the glyphs from i on to
// the right. The new glyph has no annotation. The window is not changed.
func (l *GlyphLine) Insert(i int, g *Glyph) {
	if i < 0 || i > l.Size() {
		violated("insert position %d out of range [0,%d]", i, l.Size())
	}
	l.buf.insert(i, g)
}

// Glyphs returns the glyphs of the window as a new slice.
func (l *GlyphLine) Glyphs() []*Glyph {
	l.checkWindow()
	glyphs := make([]*Glyph, l.Len())
	for i, s := range l.buf.slots[l.start:l.end] {
		glyphs[i] = s.glyph
	}
	return glyphs
}

// SetGlyphs replaces the buffer of l by a new one holding a copy of glyphs.
// Annotations are dropped and the window spans all glyphs.
// Lines sharing the old buffer with l will not see the new one.
func (l *GlyphLine) SetGlyphs(glyphs []*Glyph) {
	*l = GlyphLine{buf: NewGlyphLine(glyphs).buf, end: len(glyphs)}
}

// ReplaceContent copies buffer and window of other into l. Unlike SetGlyphs,
// the buffer of l is overwritten in place, so lines sharing it will see the
// new glyphs.
//
// If l had an annotation channel, it keeps it; glyphs coming from an
// unannotated other are unannotated.
func (l *GlyphLine) ReplaceContent(other *GlyphLine) {
	slots := make([]slot, other.Size())
	copy(slots, other.buf.slots)
	l.buf.slots = append(l.buf.slots[:0], slots...)
	l.buf.annotated = l.buf.annotated || other.buf.annotated
	l.start, l.end = other.start, other.end
}

// SetActualText annotates the glyphs [left,right) with text. Any previous
// annotation of these glyphs is replaced.
func (l *GlyphLine) SetActualText(left, right int, text string) {
	checkRange(left, right, l.Size())
	l.buf.annotated = true
	t := &ActualText{Value: text}
	for i := left; i < right; i++ {
		l.buf.slots[i].text = t
	}
}

// HasActualText is true if l has an annotation channel, i.e. SetActualText
// has been called for its buffer.
func (l *GlyphLine) HasActualText() bool {
	return l.buf.annotated
}

// ActualTextAt returns the annotation of the glyph at i, if it has one.
func (l *GlyphLine) ActualTextAt(i int) (*ActualText, bool) {
	checkIndex(i, l.Size(), "glyph index")
	t := l.buf.slots[i].text
	return t, t != nil
}

// Text reconstructs the source text of the glyphs [start,end). Annotated runs
// contribute their actual text, all other glyphs contribute their recovered
// characters or code-point.
func (l *GlyphLine) Text(start, end int) string {
	var b strings.Builder
	parts := l.Parts(start, end)
	for part, ok := parts.Next(); ok; part, ok = parts.Next() {
		if part.Annotated {
			b.WriteString(part.ActualText)
			continue
		}
		for _, s := range l.buf.slots[part.Start:part.End] {
			b.WriteString(s.glyph.Text())
		}
	}
	return b.String()
}

// String returns the source text of the window.
func (l *GlyphLine) String() string {
	return l.Text(l.start, l.end)
}

// Equal is true if the windows of l and other contain the same glyphs and
// annotations with equal texts at the same positions.
func (l *GlyphLine) Equal(other *GlyphLine) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}
	l.checkWindow()
	other.checkWindow()
	if l.Len() != other.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		s, t := l.buf.slots[l.start+i], other.buf.slots[other.start+i]
		if s.glyph != t.glyph {
			return false
		}
		if (s.text == nil) != (t.text == nil) {
			return false
		}
		if s.text != nil && s.text.Value != t.text.Value {
			return false
		}
	}
	return true
}
