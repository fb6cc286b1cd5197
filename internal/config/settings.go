// Package config loads deck's user settings from YAML.
package config

import (
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/deck/internal/render"
)

// Theme setting values. ThemeAuto follows the terminal background.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is the user configuration document.
type Settings struct {
	Theme     string `yaml:"theme" validate:"omitempty,oneof=auto light dark"`
	Layout    string `yaml:"layout" validate:"omitempty,oneof=dagre elk"`
	Pad       int64  `yaml:"pad" validate:"min=0,max=1000"`
	Sketch    bool   `yaml:"sketch"`
	ExportDir string `yaml:"export_dir"`
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	base := render.DefaultConfig()
	return Settings{
		Theme:     ThemeAuto,
		Layout:    base.Layout,
		Pad:       base.Pad,
		ExportDir: ".",
		LogLevel:  "info",
	}
}

// DarkBackground reports whether the terminal background is dark. Tests
// replace it.
var DarkBackground = termenv.HasDarkBackground

// ResolveTheme maps the theme setting to a render theme.
func (s Settings) ResolveTheme() render.Theme {
	if theme, err := render.ParseTheme(s.Theme); err == nil {
		return theme
	}
	if DarkBackground() {
		return render.ThemeDark
	}
	return render.ThemeLight
}

// RenderConfig builds the engine configuration these settings describe.
func (s Settings) RenderConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.Theme = s.ResolveTheme()
	if s.Layout != "" {
		cfg.Layout = s.Layout
	}
	cfg.Pad = s.Pad
	cfg.Sketch = s.Sketch
	return cfg
}
