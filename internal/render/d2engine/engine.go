// Package d2engine renders D2 source to SVG with the terrastruct d2 library.
package d2engine

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2layouts/d2elklayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	d2log "oss.terrastruct.com/d2/lib/log"
	"oss.terrastruct.com/d2/lib/textmeasure"

	"github.com/alexisbeaulieu97/deck/internal/logger"
	"github.com/alexisbeaulieu97/deck/internal/render"
)

// Theme catalog ids used for the two render themes.
var (
	LightThemeID = d2themescatalog.NeutralDefault.ID
	DarkThemeID  = d2themescatalog.DarkMauve.ID
)

// Engine implements render.Engine. Configuration is shared; every Render
// snapshots it on entry and builds its own text ruler, so concurrent renders
// share no mutable state.
type Engine struct {
	mu         sync.RWMutex
	cfg        render.Config
	configured bool
	log        *logger.Logger
}

// New returns an unconfigured engine. Render fails until Configure succeeds.
func New(log *logger.Logger) *Engine {
	return &Engine{log: log.Component("d2engine")}
}

// Configure validates and stores cfg.
func (e *Engine) Configure(cfg render.Config) error {
	if _, err := layoutFor(cfg.Layout); err != nil {
		return err
	}
	if cfg.Pad < 0 {
		return fmt.Errorf("pad must be >= 0, got %d", cfg.Pad)
	}

	e.mu.Lock()
	e.cfg = cfg
	e.configured = true
	e.mu.Unlock()

	e.log.WithFields(map[string]any{
		"theme":  cfg.Theme.String(),
		"layout": cfg.Layout,
		"sketch": cfg.Sketch,
	}).Debug("engine configured")
	return nil
}

// Render compiles source and returns the SVG document.
func (e *Engine) Render(ctx context.Context, id, source string) (string, error) {
	e.mu.RLock()
	cfg, configured := e.cfg, e.configured
	e.mu.RUnlock()
	if !configured {
		return "", fmt.Errorf("engine not configured")
	}

	layout, err := layoutFor(cfg.Layout)
	if err != nil {
		return "", err
	}

	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return "", fmt.Errorf("create text ruler: %w", err)
	}

	started := time.Now()
	themeID := themeIDFor(cfg.Theme)
	pad := cfg.Pad
	sketch := cfg.Sketch
	renderOpts := &d2svg.RenderOpts{
		Pad:     &pad,
		Sketch:  &sketch,
		ThemeID: &themeID,
	}
	compileOpts := &d2lib.CompileOptions{
		LayoutResolver: func(string) (d2graph.LayoutGraph, error) {
			return layout, nil
		},
		Ruler: ruler,
	}

	diagram, _, err := d2lib.Compile(e.withD2Logger(ctx), source, compileOpts, renderOpts)
	if err != nil {
		return "", err
	}

	out, err := d2svg.Render(diagram, renderOpts)
	if err != nil {
		return "", fmt.Errorf("render svg: %w", err)
	}

	e.log.WithFields(map[string]any{
		"token":       id,
		"theme":       cfg.Theme.String(),
		"bytes":       len(out),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("diagram rendered")

	return string(out), nil
}

// withD2Logger attaches the slog logger d2 expects in its context. Its output
// is forwarded line by line to the engine's debug log.
func (e *Engine) withD2Logger(ctx context.Context) context.Context {
	return d2log.With(ctx, slog.Make(sloghuman.Sink(logWriter{log: e.log})))
}

type logWriter struct {
	log *logger.Logger
}

func (w logWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		if len(line) > 0 {
			w.log.Debug(string(line))
		}
	}
	return len(p), nil
}

func layoutFor(name string) (d2graph.LayoutGraph, error) {
	switch name {
	case "", render.LayoutDagre:
		return d2dagrelayout.DefaultLayout, nil
	case render.LayoutELK:
		return d2elklayout.DefaultLayout, nil
	default:
		return nil, fmt.Errorf("unknown layout engine %q (want %s or %s)", name, render.LayoutDagre, render.LayoutELK)
	}
}

func themeIDFor(theme render.Theme) int64 {
	if theme == render.ThemeDark {
		return DarkThemeID
	}
	return LightThemeID
}

var _ render.Engine = (*Engine)(nil)
