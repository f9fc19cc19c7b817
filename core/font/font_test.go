package font

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/glyphline/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphline.fonts")
	defer teardown()
	//
	f := FallbackFont()
	require.NotNil(t, f.SFNT)
	assert.Same(t, f, FallbackFont())
	assert.Equal(t, "Go Sans", f.Fontname)
	assert.Greater(t, f.SFNT.NumGlyphs(), 100)
	assert.Equal(t, 2048, int(f.UnitsPerEm()))
}

func TestParseInvalidFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphline.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont([]byte("no font"))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestNormalizeFontname(t *testing.T) {
	assert.Equal(t, "gentiumplus-r", NormalizeFontname(" GentiumPlus-R.ttf"))
	assert.Equal(t, "gill_sans_mt", NormalizeFontname("Gill Sans MT"))
}

func TestFindFontInFontpath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphline.fonts")
	defer teardown()
	//
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "GoRegularCopy.ttf"), goregular.TTF, 0644)
	require.NoError(t, err)
	conf := testconfig.Conf{"fontpath": dir}
	f, err := FindOpenTypeFont(conf, "goregularcopy")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "GoRegularCopy.ttf"), f.Filepath)
	g, err := FindOpenTypeFont(conf, "GoRegularCopy")
	require.NoError(t, err)
	assert.Same(t, f, g, "font should come from the registry")
}

func TestFindMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphline.fonts")
	defer teardown()
	//
	conf := testconfig.Conf{"fontpath": t.TempDir()}
	_, err := FindOpenTypeFont(conf, "no-such-font-4711.otf")
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
