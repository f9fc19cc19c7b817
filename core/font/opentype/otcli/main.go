/*
Command otcli is an interactive playground for glyph lines.

It maps a text to glyphs of a font and lets users apply substitutions and
actual-text annotations to the resulting glyph line, step by step, inspecting
the line and the text recovered from it in between. Type 'help' at the prompt
for a list of commands.

Usage:

	otcli [-font name] [-fontpath dir] [-trace level]

Without a font name, the Go Sans fallback font is used.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphline/core"
	"github.com/npillmayer/glyphline/core/font"
	"github.com/npillmayer/glyphline/core/font/opentype/otquery"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glyphline.cli'
func tracer() tracing.Trace {
	return tracing.Select("glyphline.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	fontpath := flag.String("fontpath", "", "Directory to search fonts in")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.glyphline.cli":    *tlevel,
		"trace.glyphline.otline": *tlevel,
		"trace.glyphline.fonts":  "Info",
		"fontpath":               *fontpath,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the glyph line CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// load font to use
	f := font.FallbackFont()
	if *fontname != "" {
		var err error
		if f, err = font.FindOpenTypeFont(conf, *fontname); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	pterm.Printfln("using font %s with %d glyphs", f.Fontname, f.SFNT.NumGlyphs())
	//
	// set up REPL
	repl, err := readline.New("gl > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, glyphs: otquery.NewGlyphProvider(f)}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
