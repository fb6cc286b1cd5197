// Package rendertest provides a scripted render.Engine for tests.
package rendertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/deck/internal/render"
)

// Call records one Render invocation.
type Call struct {
	ID     string
	Source string
	Theme  render.Theme
}

// Engine renders "<svg data-theme=...>" for any source not listed in Fail.
// When Gate is set, every Render blocks until the gate is closed or receives.
type Engine struct {
	Fail         map[string]error
	ConfigureErr error
	Gate         chan struct{}

	mu      sync.Mutex
	current render.Config
	configs []render.Config
	calls   []Call
}

// New returns an engine with no scripted failures.
func New() *Engine {
	return &Engine{Fail: map[string]error{}}
}

// Configure records cfg.
func (e *Engine) Configure(cfg render.Config) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ConfigureErr != nil {
		return e.ConfigureErr
	}
	e.current = cfg
	e.configs = append(e.configs, cfg)
	return nil
}

// Render returns a deterministic artifact or the scripted failure.
func (e *Engine) Render(ctx context.Context, id, source string) (string, error) {
	e.mu.Lock()
	theme := e.current.Theme
	e.calls = append(e.calls, Call{ID: id, Source: source, Theme: theme})
	gate := e.Gate
	fail, failing := e.Fail[source]
	e.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if failing {
		return "", fail
	}
	return Artifact(source, theme), nil
}

// Configs returns every configuration applied so far.
func (e *Engine) Configs() []render.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]render.Config(nil), e.configs...)
}

// Calls returns every Render invocation so far.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// Artifact is the output Render produces for source under theme.
func Artifact(source string, theme render.Theme) string {
	return fmt.Sprintf("<svg data-theme=%q><!-- %s --></svg>", theme, source)
}

var _ render.Engine = (*Engine)(nil)
