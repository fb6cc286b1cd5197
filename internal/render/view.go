package render

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

// ErrStaleResult is returned by View.Complete for results that no longer match
// the view's live request. It is control flow, not a user-facing failure.
var ErrStaleResult = errors.New("stale render result discarded")

// State is the lifecycle position of a mounted view.
type State int

const (
	StateIdle State = iota
	StateRendering
	StateRendered
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRendering:
		return "rendering"
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Task is one render invocation. Its liveness flag is cleared by the owning
// view when the request is superseded or the view is unmounted.
type Task struct {
	token     string
	diagramID string
	source    string
	theme     Theme
	engine    Engine
	preErr    error
	alive     atomic.Bool
}

// Token uniquely identifies the task within the process.
func (t *Task) Token() string { return t.token }

// DiagramID is the catalog id the task renders.
func (t *Task) DiagramID() string { return t.diagramID }

// Theme is the theme the engine was configured with for this task.
func (t *Task) Theme() Theme { return t.theme }

// Alive reports whether the task's result may still be applied.
func (t *Task) Alive() bool { return t.alive.Load() }

// Run calls the engine and returns its outcome. It does not touch the view and
// may run on any goroutine. A dead task still runs to completion.
func (t *Task) Run(ctx context.Context) Result {
	if t.preErr != nil {
		return Result{Task: t, Err: t.preErr}
	}
	svg, err := t.engine.Render(ctx, t.token, t.source)
	if err == nil && svg == "" {
		err = ErrEmptyArtifact
	}
	return Result{Task: t, SVG: svg, Err: err}
}

// Result is what a finished Task hands back to the event loop.
type Result struct {
	Task *Task
	SVG  string
	Err  error
}

// Outcome describes a result that was applied to the view.
type Outcome struct {
	State     State
	DiagramID string
	Theme     Theme
	Artifact  string
	Err       *deckerrors.RenderError
}

// View is a mounted diagram view owning a single render slot. All methods
// except Task.Run must be called from the UI event loop.
type View struct {
	mountID    string
	engine     Engine
	cfg        Config
	configured bool
	seq        uint64
	current    *Task
	state      State
	content    string
	unmounted  bool
}

// NewView mounts a view. base supplies everything but the theme, which each
// Request sets.
func NewView(engine Engine, base Config) *View {
	return &View{
		mountID: uuid.NewString(),
		engine:  engine,
		cfg:     base,
		state:   StateIdle,
	}
}

// MountID identifies this mounted instance.
func (v *View) MountID() string { return v.mountID }

// State returns the current lifecycle state.
func (v *View) State() State { return v.state }

// Loading reports whether a live render is outstanding.
func (v *View) Loading() bool { return v.state == StateRendering }

// Content returns the artifact or error panel of the last applied result. It
// is empty while a render is outstanding.
func (v *View) Content() string {
	if v.state == StateRendering {
		return ""
	}
	return v.content
}

// Current returns the most recently issued task, or nil before the first one.
func (v *View) Current() *Task { return v.current }

// Request supersedes any outstanding task and issues exactly one new one.
// The engine is reconfigured first when theme differs from its current
// configuration. Calling Request with unchanged inputs still issues a task.
func (v *View) Request(diagramID, source string, theme Theme) *Task {
	if v.current != nil {
		v.current.alive.Store(false)
	}

	v.seq++
	task := &Task{
		token:     fmt.Sprintf("%s-%d", v.mountID, v.seq),
		diagramID: diagramID,
		source:    source,
		theme:     theme,
		engine:    v.engine,
	}

	if !v.configured || v.cfg.Theme != theme {
		next := v.cfg
		next.Theme = theme
		if err := v.engine.Configure(next); err != nil {
			task.preErr = fmt.Errorf("configure engine: %w", err)
		} else {
			v.cfg = next
			v.configured = true
		}
	}

	v.current = task
	v.content = ""
	if v.unmounted {
		return task
	}

	task.alive.Store(true)
	v.state = StateRendering
	return task
}

// Complete applies res if its task is still the live one. Anything else is
// rejected with ErrStaleResult and leaves the view untouched.
func (v *View) Complete(res Result) (Outcome, error) {
	task := res.Task
	if v.unmounted || task == nil || task != v.current || !task.Alive() {
		return Outcome{}, ErrStaleResult
	}
	task.alive.Store(false)

	if res.Err != nil {
		renderErr := &deckerrors.RenderError{DiagramID: task.diagramID, Source: task.source, Err: res.Err}
		v.state = StateFailed
		v.content = ErrorPanel(renderErr)
		return Outcome{State: StateFailed, DiagramID: task.diagramID, Theme: task.theme, Err: renderErr}, nil
	}

	v.state = StateRendered
	v.content = res.SVG
	return Outcome{State: StateRendered, DiagramID: task.diagramID, Theme: task.theme, Artifact: res.SVG}, nil
}

// Unmount kills the outstanding task. Later results for this view, success or
// failure, are all stale.
func (v *View) Unmount() {
	v.unmounted = true
	if v.current != nil {
		v.current.alive.Store(false)
	}
}
