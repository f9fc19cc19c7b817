package otline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/glyphline/core"
	"github.com/npillmayer/glyphline/core/font/opentype/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type LineTestEnviron struct {
	suite.Suite
	line *GlyphLine
}

// listen for 'go test' command --> run test methods
func TestLineFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphline.otline")
	defer teardown()
	suite.Run(t, new(LineTestEnviron))
}

// run once, before test suite methods
func (env *LineTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("glyphline.otline").SetTraceLevel(tracing.LevelDebug)
}

// run before each test: a fresh line for "fille"
func (env *LineTestEnviron) SetupTest() {
	env.line = lineFor("fille")
}

// --- Tests -----------------------------------------------------------------

func (env *LineTestEnviron) TestNewLineSpansAllGlyphs() {
	glyphs := glyphsFor("file")
	l := NewGlyphLine(glyphs)
	env.Equal(0, l.Start())
	env.Equal(4, l.End())
	env.Equal(4, l.Size())
	env.False(l.HasActualText())
	glyphs[0] = NewGlyph(99, 'x')
	env.Equal(ot.GlyphIndex(1), l.Get(0).ID, "line must not share the input slice")
	env.Equal("file", l.String())
}

func (env *LineTestEnviron) TestAddAndInsertKeepAnnotationsAligned() {
	l := env.line
	l.SetActualText(1, 3, "LL")
	l.Add(NewGlyph(4, 'e'))
	l.Insert(0, NewGlyph(6, 'A'))
	env.Equal(7, l.Size())
	env.Equal(5, l.End(), "window must not change")
	_, ok := l.ActualTextAt(0)
	env.False(ok, "inserted glyph must not be annotated")
	_, ok = l.ActualTextAt(6)
	env.False(ok, "appended glyph must not be annotated")
	t2, ok := l.ActualTextAt(2)
	env.True(ok)
	t3, _ := l.ActualTextAt(3)
	env.Same(t2, t3, "annotation must have moved with its glyphs")
	env.Equal("AfLLle", l.Text(0, 6))
	env.Equal("AfLLlee", l.Text(0, l.Size()))
}

func (env *LineTestEnviron) TestSetDoesNotTouchAnnotations() {
	l := env.line
	l.SetActualText(0, 1, "F")
	l.Set(0, NewGlyph(6, 'A'))
	env.Equal(ot.GlyphIndex(6), l.Get(0).ID)
	env.Equal("Fille", l.String())
}

func (env *LineTestEnviron) TestCopyDoesNotAlias() {
	l := env.line
	l.SetActualText(0, 2, "FI")
	c := l.Copy(1, 4)
	env.Equal(0, c.Start())
	env.Equal(3, c.End())
	env.Equal(0, c.Cursor())
	env.True(c.HasActualText())
	env.Equal("FIll", c.String())
	c.Set(0, NewGlyph(6, 'A'))
	c.SetActualText(1, 2, "X")
	env.Equal(ot.GlyphIndex(2), l.Get(1).ID, "source changed by mutating the copy")
	env.Equal("FIlle", l.String())
	l.Set(2, NewGlyph(4, 'e'))
	env.Equal(ot.GlyphIndex(3), c.Get(1).ID, "copy changed by mutating the source")
	l.Add(NewGlyph(4, 'e'))
	env.Equal(3, c.Size())
}

func (env *LineTestEnviron) TestViewsAlias() {
	l := env.line
	l.SetCursor(2)
	v := l.View()
	n := l.Narrow(1, 3)
	env.Equal(l.Start(), v.Start())
	env.Equal(l.End(), v.End())
	env.Equal(2, v.Cursor())
	env.Equal(2, n.Cursor())
	env.Equal("il", n.String())
	v.Set(1, NewGlyph(6, 'A'))
	env.Equal(ot.GlyphIndex(6), l.Get(1).ID)
	env.Equal("Al", n.String())
	n.SetActualText(2, 3, "L")
	env.True(l.HasActualText())
	env.Equal("fALle", l.String())
	l.Add(NewGlyph(4, 'e'))
	env.Equal(6, v.Size())
	env.Equal(6, n.Size())
}

func (env *LineTestEnviron) TestSubLineTranslatesCursor() {
	l := env.line
	l.SetCursor(3)
	sub := l.SubLine(2, 5)
	env.Equal(1, sub.Cursor())
	env.Equal(3, sub.Len())
	sub.Set(0, NewGlyph(6, 'A'))
	env.Equal("fille", l.String())
}

func (env *LineTestEnviron) TestSetGlyphsReplacesBuffer() {
	l := env.line
	l.SetActualText(0, 2, "FI")
	v := l.View()
	l.SetGlyphs(glyphsFor("ea"))
	env.False(l.HasActualText())
	env.Equal(0, l.Start())
	env.Equal(2, l.End())
	env.Equal("ea", l.String())
	env.Equal(5, v.Size(), "old views keep the old buffer")
	env.Equal("FIlle", v.String())
}

func (env *LineTestEnviron) TestReplaceContentKeepsBuffer() {
	l := env.line
	v := l.View()
	other := lineFor("Aile")
	other.SetActualText(0, 1, "a")
	other.SetWindow(1, 3)
	l.ReplaceContent(other)
	env.Equal(4, l.Size())
	env.Equal(1, l.Start())
	env.Equal(3, l.End())
	env.True(l.HasActualText())
	env.Equal(4, v.Size(), "views must see the new content")
	env.Equal("aile", l.Text(0, 4))
	l.Set(3, NewGlyph(6, 'A'))
	env.Equal(ot.GlyphIndex(4), other.Get(3).ID, "content must have been copied")
	l.ReplaceContent(l)
	env.Equal("ailA", l.Text(0, 4))
}

func (env *LineTestEnviron) TestActualTextRoundTrip() {
	for left := 0; left < 5; left++ {
		for right := left + 1; right <= 5; right++ {
			l := lineFor("fille")
			l.SetActualText(0, 2, "older")
			l.SetActualText(left, right, "X")
			env.Equal("X", l.Text(left, right), "range [%d,%d)", left, right)
		}
	}
}

func (env *LineTestEnviron) TestOverlappingActualTextsDoNotMerge() {
	l := env.line
	l.SetActualText(0, 3, "abc")
	l.SetActualText(2, 4, "xy")
	env.Equal("abcxye", l.String())
}

func (env *LineTestEnviron) TestTextOfGlyphsWithoutUnicode() {
	l := NewGlyphLine([]*Glyph{
		NewGlyph(20, NoUnicode),
		NewGlyph(6, 'A'),
		NewGlyph(21, NoUnicode),
	})
	env.Equal("A", l.Text(0, 3))
	l.Get(2).Chars = []rune("st")
	env.Equal("Ast", l.Text(0, 3))
}

func (env *LineTestEnviron) TestPartsCoalesceByIdentity() {
	l := lineFor("AAeAAA")
	l.SetActualText(0, 2, "A's text")
	l.SetActualText(3, 6, "B's text")
	want := []Part{
		{Start: 0, End: 2, ActualText: "A's text", Annotated: true},
		{Start: 2, End: 3},
		{Start: 3, End: 6, ActualText: "B's text", Annotated: true},
	}
	if diff := cmp.Diff(want, collect(l.AllParts())); diff != "" {
		env.Failf("unexpected parts", "(-want +got)\n%s", diff)
	}
	l.SetActualText(1, 2, "A's text") // equal text, different annotation
	env.Len(collect(l.AllParts()), 4)
}

func (env *LineTestEnviron) TestPartsWithoutAnnotations() {
	l := env.line
	parts := collect(l.Parts(1, 4))
	env.Equal([]Part{{Start: 1, End: 4}}, parts)
	env.Empty(collect(l.Parts(2, 2)))
	it := l.AllParts()
	_, ok := it.Next()
	env.True(ok)
	_, ok = it.Next()
	env.False(ok, "iterator must be exhausted")
	_, ok = l.AllParts().Next()
	env.True(ok, "new iterator must start over")
}

func (env *LineTestEnviron) TestNeedsActualText() {
	l := lineFor("fille")
	l.SetActualText(0, 2, "fi")
	l.SetActualText(2, 4, "LL")
	parts := collect(l.AllParts())
	env.Require().Len(parts, 3)
	env.False(l.NeedsActualText(parts[0]))
	env.True(l.NeedsActualText(parts[1]))
	env.False(l.NeedsActualText(parts[2]))
}

func (env *LineTestEnviron) TestFilter() {
	l := env.line
	l.SetActualText(3, 5, "LE")
	all := l.Filter(func(*Glyph) bool { return true })
	env.Same(l, all, "filter accepting everything must return the line itself")
	noL := l.Filter(func(g *Glyph) bool { return g.Unicode != 'l' })
	env.NotSame(l, noL)
	env.Equal(3, noL.Size())
	env.Equal(0, noL.Start())
	env.Equal(3, noL.End())
	env.Equal("fiLE", noL.String())
	noL.Set(0, NewGlyph(6, 'A'))
	env.Equal(ot.GlyphIndex(1), l.Get(0).ID)
}

func (env *LineTestEnviron) TestFilterRespectsWindow() {
	l := env.line
	l.SetWindow(1, 4)
	f := l.Filter(func(g *Glyph) bool { return g.Unicode != 'i' })
	env.Equal(2, f.Len())
	env.Equal("ll", f.String())
}

func (env *LineTestEnviron) TestEqual() {
	a, b := env.line, env.line.Copy(0, 5)
	env.True(a.Equal(b))
	b.SetActualText(0, 1, "F")
	env.False(a.Equal(b))
	a.SetActualText(0, 1, "F")
	env.True(a.Equal(b), "annotations compare by text")
	b.Set(4, NewGlyph(4, 'e'))
	env.False(a.Equal(b), "glyphs compare by identity")
}

func (env *LineTestEnviron) TestIndexPreconditions() {
	l := env.line
	for _, op := range []func(){
		func() { l.Get(5) },
		func() { l.Set(-1, NewGlyph(1, 'f')) },
		func() { l.Insert(6, NewGlyph(1, 'f')) },
		func() { l.Copy(3, 2) },
		func() { l.SetActualText(0, 6, "x") },
		func() { l.SetWindow(0, 6) },
		func() { l.SetCursor(5) },
		func() { l.Parts(-1, 2) },
	} {
		err := precondition(op)
		env.ErrorIs(err, ErrPrecondition)
		env.Equal(core.EPRECONDITION, core.Code(err))
	}
	env.False(l.HasActualText(), "failed SetActualText must not create annotations")
}

func (env *LineTestEnviron) TestStaleViewAfterShrinking() {
	l := env.line
	v := l.View()
	l.ReplaceContent(lineFor("fi"))
	env.Equal(2, v.Size())
	env.Equal(5, v.End())
	notI := func(g *Glyph) bool { return g.Unicode != 'i' }
	for _, op := range []func(){
		func() { v.Glyphs() },
		func() { v.Filter(notI) },
		func() { v.AllParts() },
		func() { v.Equal(lineFor("fille")) },
		func() { lineFor("fi").Equal(v) },
	} {
		env.ErrorIs(precondition(op), ErrPrecondition)
	}
	v.SetWindow(0, 2)
	env.Equal("f", v.Filter(notI).String())
}

// --- Helpers ---------------------------------------------------------------

// testFont maps glyph IDs to code-points, like a tiny cmap.
var testFont = map[ot.GlyphIndex]rune{
	1: 'f', 2: 'i', 3: 'l', 4: 'e', 5: '\u0301', 6: 'A', 7: 'a',
	10: NoUnicode, // f_i ligature
	11: NoUnicode, // f_f_i ligature
	12: 'é',
}

func testProvider() GlyphProvider {
	return GlyphProviderFunc(func(gid ot.GlyphIndex) *Glyph {
		if r, ok := testFont[gid]; ok {
			return NewGlyph(gid, r)
		}
		return nil
	})
}

func glyphsFor(s string) []*Glyph {
	var glyphs []*Glyph
	for _, r := range s {
		gid := ot.NOTDEF
		for g, u := range testFont {
			if u == r {
				gid = g
				break
			}
		}
		glyphs = append(glyphs, NewGlyph(gid, r))
	}
	return glyphs
}

func lineFor(s string) *GlyphLine {
	return NewGlyphLine(glyphsFor(s))
}

func collect(it *PartIterator) []Part {
	var parts []Part
	for part, ok := it.Next(); ok; part, ok = it.Next() {
		parts = append(parts, part)
	}
	return parts
}

// precondition runs op and returns the error it panics with, if any.
func precondition(op func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	op()
	return nil
}
