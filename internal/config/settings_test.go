package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deck/internal/render"
)

func withBackground(t *testing.T, dark bool) {
	t.Helper()
	prev := DarkBackground
	DarkBackground = func() bool { return dark }
	t.Cleanup(func() { DarkBackground = prev })
}

func TestResolveTheme(t *testing.T) {
	withBackground(t, true)

	require.Equal(t, render.ThemeDark, Settings{Theme: ThemeAuto}.ResolveTheme())
	require.Equal(t, render.ThemeDark, Settings{}.ResolveTheme())
	require.Equal(t, render.ThemeLight, Settings{Theme: ThemeLight}.ResolveTheme())
	require.Equal(t, render.ThemeDark, Settings{Theme: ThemeDark}.ResolveTheme())
}

func TestResolveThemeAutoOnLightTerminal(t *testing.T) {
	withBackground(t, false)

	require.Equal(t, render.ThemeLight, Settings{Theme: ThemeAuto}.ResolveTheme())
}

func TestRenderConfig(t *testing.T) {
	withBackground(t, false)

	s := Default()
	s.Layout = "elk"
	s.Sketch = true
	s.Pad = 0

	cfg := s.RenderConfig()
	require.Equal(t, render.ThemeLight, cfg.Theme)
	require.Equal(t, "elk", cfg.Layout)
	require.True(t, cfg.Sketch)
	require.Zero(t, cfg.Pad)

	s.Layout = ""
	require.Equal(t, render.LayoutDagre, s.RenderConfig().Layout)
}
