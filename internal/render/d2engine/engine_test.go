package d2engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
	"github.com/alexisbeaulieu97/deck/internal/logger"
	"github.com/alexisbeaulieu97/deck/internal/render"
)

func configured(t *testing.T, cfg render.Config) *Engine {
	t.Helper()
	e := New(nil)
	require.NoError(t, e.Configure(cfg))
	return e
}

func TestRenderProducesSVG(t *testing.T) {
	t.Parallel()

	e := configured(t, render.DefaultConfig())
	svg, err := e.Render(context.Background(), "tok-1", "a -> b: hello")
	require.NoError(t, err)
	assert.True(t, strings.Contains(svg, "<svg"), "output should be svg markup")
	assert.Contains(t, svg, "hello")
}

func TestRenderRejectsMalformedSource(t *testing.T) {
	t.Parallel()

	e := configured(t, render.DefaultConfig())
	_, err := e.Render(context.Background(), "tok-1", "a -> b: {")
	require.Error(t, err)
}

func TestRenderBeforeConfigureFails(t *testing.T) {
	t.Parallel()

	_, err := New(nil).Render(context.Background(), "tok-1", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestConfigureValidatesOptions(t *testing.T) {
	t.Parallel()

	e := New(nil)

	cfg := render.DefaultConfig()
	cfg.Layout = "graphviz"
	require.Error(t, e.Configure(cfg))

	cfg = render.DefaultConfig()
	cfg.Pad = -1
	require.Error(t, e.Configure(cfg))

	cfg = render.DefaultConfig()
	cfg.Layout = ""
	require.NoError(t, e.Configure(cfg))
}

func TestThemeChangesOutput(t *testing.T) {
	t.Parallel()

	light := configured(t, render.DefaultConfig())
	darkCfg := render.DefaultConfig()
	darkCfg.Theme = render.ThemeDark
	dark := configured(t, darkCfg)

	lightSVG, err := light.Render(context.Background(), "l", "a -> b")
	require.NoError(t, err)
	darkSVG, err := dark.Render(context.Background(), "d", "a -> b")
	require.NoError(t, err)

	assert.NotEqual(t, lightSVG, darkSVG)
}

func TestThemeIDMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LightThemeID, themeIDFor(render.ThemeLight))
	assert.Equal(t, DarkThemeID, themeIDFor(render.ThemeDark))
	assert.NotEqual(t, LightThemeID, DarkThemeID)
}

func TestBuiltinCatalogRenders(t *testing.T) {
	if testing.Short() {
		t.Skip("renders every catalog entry")
	}
	t.Parallel()

	cat, err := catalog.Default()
	require.NoError(t, err)

	e := configured(t, render.DefaultConfig())
	for _, d := range cat.All() {
		svg, err := e.Render(context.Background(), d.ID, d.Source)
		require.NoError(t, err, "diagram %s", d.ID)
		assert.Contains(t, svg, "<svg", "diagram %s", d.ID)
	}
}

func TestLogWriterForwardsLines(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	w := logWriter{log: log}
	n, err := w.Write([]byte("first\n\nsecond\n"))
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	out := buf.String()
	assert.Contains(t, out, `"message":"first"`)
	assert.Contains(t, out, `"message":"second"`)
	assert.Equal(t, 2, strings.Count(out, "\n"))

	n, err = logWriter{}.Write([]byte("dropped\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}
