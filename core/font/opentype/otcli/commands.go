package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphline/core"
	"github.com/npillmayer/glyphline/core/font/opentype/ot"
	"github.com/npillmayer/glyphline/core/font/opentype/otline"
	"github.com/npillmayer/glyphline/core/font/opentype/otquery"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	glyphs *otquery.FontGlyphs
	line   *otline.GlyphLine
}

// Op codes of the interpreter
const (
	QUIT int = iota
	HELP
	TEXT
	SHOW
	PARTS
	CURSOR
	WINDOW
	GID
	SUBST
	DECOMPOSE
	LIGA
	ACTUAL
	MARKS
)

// Command is a parsed input line.
type Command struct {
	code int
	args []string
}

var opcodes = map[string]int{
	"quit":      QUIT,
	"help":      HELP,
	"text":      TEXT,
	"show":      SHOW,
	"parts":     PARTS,
	"cursor":    CURSOR,
	"window":    WINDOW,
	"gid":       GID,
	"subst":     SUBST,
	"decompose": DECOMPOSE,
	"liga":      LIGA,
	"actual":    ACTUAL,
	"marks":     MARKS,
}

// argument counts; text arguments are taken verbatim, including colons
var arity = map[int]int{TEXT: 1, CURSOR: 1, WINDOW: 2, GID: 1, SUBST: 1, DECOMPOSE: 1,
	LIGA: 2, ACTUAL: 3}

// parseCommand splits an input line like "actual:0:2:fi" into a command.
func parseCommand(line string) (*Command, error) {
	name, rest, hasArgs := strings.Cut(line, ":")
	code, ok := opcodes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", name)
	}
	cmd := &Command{code: code}
	n := arity[code]
	if n == 0 {
		return cmd, nil
	}
	if hasArgs {
		cmd.args = strings.SplitN(rest, ":", n)
	}
	if len(cmd.args) < n {
		return nil, fmt.Errorf("command %s needs %d argument(s)", name, n)
	}
	tracer().Debugf("parse command = %v", cmd)
	return cmd, nil
}

// execute runs a command. Glyph line operations panic on violated
// preconditions; these panics are turned into errors.
func (intp *Intp) execute(cmd *Command) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, otline.ErrPrecondition) {
				panic(r)
			}
			err = e
		}
	}()
	tracer().Infof("cmd = %v", cmd)
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
		return false, nil
	case TEXT:
		intp.line = otquery.MapText(intp.glyphs, cmd.args[0])
		intp.show()
		return false, nil
	case GID:
		for _, r := range cmd.args[0] {
			pterm.Printfln("%#U -> glyph %d", r, intp.glyphs.GlyphIndex(r))
		}
		return false, nil
	}
	if intp.line == nil {
		return false, core.Error(core.EINVALID, "no glyph line yet, create one with text:<string>")
	}
	switch cmd.code {
	case SHOW:
		intp.show()
	case PARTS:
		intp.parts()
	case CURSOR:
		var i int
		if i, err = number(cmd.args[0]); err == nil {
			intp.line.SetCursor(i)
		}
	case WINDOW:
		var start, end int
		if start, end, err = numbers2(cmd.args[0], cmd.args[1]); err == nil {
			intp.line.SetWindow(start, end)
			intp.show()
		}
	case SUBST:
		var gids []ot.GlyphIndex
		if gids, err = glyphIndices(cmd.args[0]); err == nil {
			intp.line.SubstituteOneToOne(intp.glyphs, gids[0])
			intp.show()
		}
	case DECOMPOSE:
		var gids []ot.GlyphIndex
		if gids, err = glyphIndices(cmd.args[0]); err == nil {
			intp.line.SubstituteOneToMany(intp.glyphs, gids)
			intp.show()
		}
	case LIGA:
		var k int
		var gids []ot.GlyphIndex
		if k, err = number(cmd.args[0]); err != nil {
			break
		}
		if gids, err = glyphIndices(cmd.args[1]); err == nil {
			w := otline.NewClassWalker(intp.line, nil)
			intp.line.SubstituteManyToOne(intp.glyphs, w, ot.LOOKUP_FLAG_IGNORE_MARKS, k, gids[0])
			intp.show()
		}
	case ACTUAL:
		var left, right int
		if left, right, err = numbers2(cmd.args[0], cmd.args[1]); err == nil {
			intp.line.SetActualText(left, right, cmd.args[2])
			intp.parts()
		}
	case MARKS:
		intp.line = intp.line.Filter(func(g *otline.Glyph) bool {
			return otline.UnicodeGlyphClass(g) != ot.MarkGlyph
		})
		intp.show()
	}
	return false, err
}

// show prints the glyphs of the line, marking the window and the cursor.
func (intp *Intp) show() {
	l := intp.line
	data := pterm.TableData{{"", "pos", "glyph", "code-point", "chars", "advance", "actual text"}}
	for i := 0; i < l.Size(); i++ {
		g := l.Get(i)
		mark := ""
		if i == l.Cursor() {
			mark = ">"
		}
		if i < l.Start() || i >= l.End() {
			mark += "-"
		}
		cp := ""
		if g.HasValidUnicode() {
			cp = fmt.Sprintf("%U", g.Unicode)
		}
		chars := ""
		if g.Chars != nil {
			chars = strconv.Quote(string(g.Chars))
		}
		actual := ""
		if a, ok := l.ActualTextAt(i); ok {
			actual = fmt.Sprintf("%q (%p)", a.Value, a)
		}
		data = append(data, []string{mark, strconv.Itoa(i), strconv.Itoa(int(g.ID)),
			cp, chars, strconv.Itoa(int(g.Advance)), actual})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
	pterm.Printfln("text = %q", l.String())
}

// parts prints the parts of the window of the line.
func (intp *Intp) parts() {
	it := intp.line.AllParts()
	for part, ok := it.Next(); ok; part, ok = it.Next() {
		text := intp.line.Text(part.Start, part.End)
		if part.Annotated {
			pterm.Printfln("[%d,%d) actual text %q, needs it = %v", part.Start, part.End,
				text, intp.line.NeedsActualText(part))
		} else {
			pterm.Printfln("[%d,%d) glyph text %q", part.Start, part.End, text)
		}
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	text:<string>             map a text to a new glyph line
	show                      display the glyph line ('>' is the cursor, '-' outside the window)
	parts                     display the annotated and unannotated parts of the line
	cursor:<i>                set the cursor
	window:<start>:<end>      set the window
	gid:<string>              display the glyph IDs for the characters of a string
	subst:<gid>               substitute the glyph at the cursor
	decompose:<gid>,<gid>,…   substitute the glyph at the cursor by a sequence of glyphs
	liga:<k>:<gid>            substitute the glyph at the cursor and k following glyphs
	                          (skipping marks) by a ligature
	actual:<l>:<r>:<text>     annotate glyphs [l,r) with an actual text
	marks                     remove all mark glyphs from the window
	quit                      leave the CLI`)
}

func number(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "not a number: %q", arg)
	}
	return n, nil
}

func numbers2(arg1, arg2 string) (int, int, error) {
	a, err := number(arg1)
	if err != nil {
		return 0, 0, err
	}
	b, err := number(arg2)
	return a, b, err
}

// glyphIndices parses a comma-separated list of glyph IDs.
func glyphIndices(arg string) ([]ot.GlyphIndex, error) {
	var gids []ot.GlyphIndex
	for _, s := range strings.Split(arg, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "not a glyph ID: %q", s)
		}
		gids = append(gids, ot.GlyphIndex(n))
	}
	return gids, nil
}
