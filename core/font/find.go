package font

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/glyphline/core"
	"github.com/npillmayer/schuko"
)

// FindOpenTypeFont locates a font by name and loads it. It looks into the
// directory configured with key 'fontpath' first, then into the system's font
// directories. Fonts found once are kept in a process-wide registry.
//
// If no font matches name, an error with code core.EMISSING is returned.
func FindOpenTypeFont(conf schuko.Configuration, name string) (*ScalableFont, error) {
	if f := globalRegistry().font(name); f != nil {
		return f, nil
	}
	fpath := findInFontpath(conf, name)
	if fpath == "" {
		var err error
		if fpath, err = findfont.Find(name); err != nil || fpath == "" {
			tracer().Infof("no system font matches %q", name)
			return nil, core.WrapError(err, core.EMISSING, "font not found: %s", name)
		}
		tracer().Debugf("%s is a system font", name)
	}
	f, err := LoadOpenTypeFont(fpath)
	if err != nil {
		return nil, err
	}
	globalRegistry().store(name, f)
	return f, nil
}

func findInFontpath(conf schuko.Configuration, name string) string {
	if conf == nil {
		return ""
	}
	dir := conf.GetString("fontpath")
	if dir == "" {
		return ""
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		tracer().Errorf("cannot read font directory %s: %v", dir, err)
		return ""
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if NormalizeFontname(e.Name()) == NormalizeFontname(name) {
			tracer().Debugf("found font %s in %s", e.Name(), dir)
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}

// NormalizeFontname creates a lookup key from a font's name or file name:
// lower case, blanks replaced by underscores, no file extension.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

// --- Font Registry ---------------------------------------------------------

type registry struct {
	sync.Mutex
	fonts map[string]*ScalableFont
}

var theRegistry *registry

var registryCreation sync.Once

func globalRegistry() *registry {
	registryCreation.Do(func() {
		theRegistry = &registry{fonts: make(map[string]*ScalableFont)}
	})
	return theRegistry
}

func (fr *registry) store(name string, f *ScalableFont) {
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(name)
	tracer().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

func (fr *registry) font(name string) *ScalableFont {
	fr.Lock()
	defer fr.Unlock()
	return fr.fonts[NormalizeFontname(name)]
}
