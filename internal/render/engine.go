// Package render wraps a diagram rendering engine with the per-view render
// lifecycle: every request gets a token, only the live token may apply its
// result, and anything else that completes is discarded.
package render

import (
	"context"
	"errors"
	"fmt"

	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

// Layout engine names understood by Config.Layout.
const (
	LayoutDagre = "dagre"
	LayoutELK   = "elk"
)

// Config is the engine's global configuration.
type Config struct {
	Theme  Theme
	Layout string
	Pad    int64
	Sketch bool
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Theme:  ThemeLight,
		Layout: LayoutDagre,
		Pad:    40,
	}
}

// Engine turns diagram source into SVG markup.
//
// Configure is called on the caller's goroutine before the first Render and
// whenever the theme changes. Render may be called from worker goroutines, and
// several calls may be in flight at once.
type Engine interface {
	Configure(cfg Config) error
	Render(ctx context.Context, id, source string) (string, error)
}

// ErrEmptyArtifact is reported when an engine returns neither output nor error.
var ErrEmptyArtifact = errors.New("engine produced no output")

// RenderOnce configures engine and renders a single source synchronously.
// Engine failures are returned as *errors.RenderError.
func RenderOnce(ctx context.Context, engine Engine, cfg Config, diagramID, source string) (string, error) {
	if err := engine.Configure(cfg); err != nil {
		return "", fmt.Errorf("configure engine: %w", err)
	}

	svg, err := engine.Render(ctx, diagramID, source)
	if err == nil && svg == "" {
		err = ErrEmptyArtifact
	}
	if err != nil {
		return "", deckerrors.NewRenderError(diagramID, source, err)
	}
	return svg, nil
}
