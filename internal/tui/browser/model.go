// Package browser is the interactive diagram browser: a grouped navigation
// panel beside a main pane showing the active diagram's render.
package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
	"github.com/alexisbeaulieu97/deck/internal/logger"
	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/session"
)

// Options wires the browser to its collaborators.
type Options struct {
	Catalog    *catalog.Catalog
	Engine     render.Engine
	Config     render.Config
	Clipboard  session.Clipboard
	Downloader session.Downloader
	Logger     *logger.Logger
}

// Model is the browser shell. It owns the session state and the mounted
// diagram view; both are only touched from Update.
type Model struct {
	state *session.State
	view  *render.View

	engine     render.Engine
	baseConfig render.Config
	clipboard  session.Clipboard
	downloader session.Downloader
	log        *logger.Logger

	// UI state
	nav        navPanel
	filter     textinput.Model
	filtering  bool
	keys       keyMap
	help       help.Model
	spinner    spinner.Model
	viewport   viewport.Model
	showSource bool
	status     string

	// Dimensions
	width  int
	height int
}

// New builds the browser on the catalog's first diagram. The first render is
// requested by Init.
func New(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter diagrams"
	filter.CharLimit = 64

	state := session.New(opts.Catalog, opts.Config.Theme)

	m := Model{
		state:      state,
		engine:     opts.Engine,
		baseConfig: opts.Config,
		clipboard:  opts.Clipboard,
		downloader: opts.Downloader,
		log:        opts.Logger.Component("browser"),
		nav:        newNavPanel(opts.Catalog),
		filter:     filter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		viewport:   viewport.New(80, 20),
		width:      80,
		height:     24,
	}
	m.view = m.mount()
	m.nav.focus(state.Active().ID)
	return m
}

// Init starts the spinner and the first render.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.requestRender())
}

// State exposes the session for callers that inspect it after the program
// exits.
func (m Model) State() *session.State {
	return m.state
}

// mount creates a view for the active diagram under the current theme.
func (m *Model) mount() *render.View {
	cfg := m.baseConfig
	cfg.Theme = m.state.Theme()
	v := render.NewView(m.engine, cfg)
	m.log.With("mount", v.MountID()).Debug("view mounted")
	return v
}

// remount tears down the current view and mounts a fresh one.
func (m *Model) remount() {
	if m.view != nil {
		m.view.Unmount()
		m.log.With("mount", m.view.MountID()).Debug("view unmounted")
	}
	m.view = m.mount()
}

// requestRender issues one render of the active diagram on the current view.
func (m *Model) requestRender() tea.Cmd {
	active := m.state.Active()
	m.state.BeginRender()
	task := m.view.Request(active.ID, active.Source, m.state.Theme())
	m.log.WithFields(map[string]any{
		"token":   task.Token(),
		"diagram": active.ID,
		"theme":   task.Theme().String(),
	}).Debug("render requested")
	m.syncViewport()
	return renderCmd(task)
}

// syncViewport loads the main pane content into the viewport.
func (m *Model) syncViewport() {
	m.viewport.SetContent(m.mainContent())
}

func (m *Model) mainContent() string {
	if m.showSource {
		return m.state.Active().Source
	}
	switch m.view.State() {
	case render.StateFailed:
		return errorPanelStyle.Render(m.view.Content())
	case render.StateRendered:
		return m.view.Content()
	default:
		return ""
	}
}

func (m *Model) resize() {
	mainWidth := m.width - navWidth - 4
	if mainWidth < 10 {
		mainWidth = 10
	}
	mainHeight := m.height - 7
	if mainHeight < 3 {
		mainHeight = 3
	}
	m.viewport.Width = mainWidth
	m.viewport.Height = mainHeight
	m.help.Width = m.width
	m.filter.Width = navWidth - 4
}
