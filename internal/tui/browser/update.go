package browser

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/session"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKeys(msg)
		}
		return m.handleKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case renderDoneMsg:
		return m.applyRender(msg.Result)

	case selectDiagramMsg:
		return m.selectDiagram(msg.ID)

	case copyResetMsg:
		m.state.ResetCopyLabel(msg.Gen)
		return m, nil

	case exportDoneMsg:
		m.status = fmt.Sprintf("Saving %s.svg", msg.Stem)
		return m, nil
	}

	return m, nil
}

// applyRender hands a finished task to the view. Stale results stop here.
func (m Model) applyRender(res render.Result) (tea.Model, tea.Cmd) {
	outcome, err := m.view.Complete(res)
	if errors.Is(err, render.ErrStaleResult) {
		log := m.log
		if res.Task != nil {
			log = log.With("token", res.Task.Token())
		}
		log.Debug("stale render result dropped")
		return m, nil
	}

	switch outcome.State {
	case render.StateFailed:
		m.state.RecordFailure()
		m.log.With("diagram", outcome.DiagramID).Error(outcome.Err, "render failed")
	case render.StateRendered:
		title := ""
		if d, ok := m.state.Catalog().Lookup(outcome.DiagramID); ok {
			title = d.Title
		}
		m.state.RecordArtifact(session.Artifact{
			DiagramID: outcome.DiagramID,
			Title:     title,
			Theme:     outcome.Theme,
			SVG:       outcome.Artifact,
		})
		m.log.WithFields(map[string]any{
			"diagram": outcome.DiagramID,
			"bytes":   len(outcome.Artifact),
		}).Debug("render applied")
	}

	m.viewport.GotoTop()
	m.syncViewport()
	return m, nil
}

// selectDiagram mounts a new view for a different diagram. Reselecting the
// active diagram re-renders on the current view.
func (m Model) selectDiagram(id string) (tea.Model, tea.Cmd) {
	previous := m.state.Active().ID
	if err := m.state.SelectDiagram(id); err != nil {
		m.log.Warn(err.Error())
		m.status = err.Error()
		return m, nil
	}

	m.status = ""
	if id != previous {
		m.remount()
	}
	m.nav.focus(id)
	return m, m.requestRender()
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keys.Export.SetEnabled(m.state.CanExport())

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.view.Unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.nav.moveUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.nav.moveDown()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if d, ok := m.nav.selected(); ok {
			return m, selectCmd(d.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Theme):
		theme := m.state.ToggleTheme()
		m.log.With("theme", theme.String()).Info("theme toggled")
		return m, m.requestRender()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.requestRender()

	case key.Matches(msg, m.keys.Copy):
		gen, err := m.state.CopyActiveSource(m.clipboard)
		if err != nil {
			m.log.Error(err, "copy failed")
			return m, nil
		}
		return m, copyResetCmd(gen)

	case key.Matches(msg, m.keys.Export):
		var queued queuedDownload
		if !m.state.ExportActive(&queued) {
			return m, nil
		}
		return m, exportCmd(m.downloader, queued)

	case key.Matches(msg, m.keys.Source):
		m.showSource = !m.showSource
		m.viewport.GotoTop()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case msg.String() == "esc":
		if m.nav.query != "" {
			m.filter.SetValue("")
			m.nav.setQuery("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleFilterKeys routes keys to the filter input while it has focus.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.nav.setQuery("")
		return m, nil

	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil

	case "up", "down":
		if msg.String() == "up" {
			m.nav.moveUp()
		} else {
			m.nav.moveDown()
		}
		return m, nil

	case "ctrl+c":
		m.view.Unmount()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.nav.setQuery(m.filter.Value())
	return m, cmd
}
