package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/session"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderNav(),
		m.renderMain(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("deck")
	active := m.state.Active()
	info := mutedStyle.Render(fmt.Sprintf("%s · theme %s", active.Title, m.state.Theme()))
	return headerStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Left, title, " ", info))
}

func (m Model) renderNav() string {
	var b strings.Builder
	height := m.viewport.Height + 1
	if m.filtering || m.nav.query != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
		height--
	}
	b.WriteString(m.nav.view(m.state.Active().ID, height))
	return navStyle.Height(m.viewport.Height + 2).Render(b.String())
}

func (m Model) renderMain() string {
	active := m.state.Active()

	heading := active.Title
	if m.showSource {
		heading += mutedStyle.Render("  (source)")
	}

	var pane string
	switch {
	case m.showSource:
		pane = m.viewport.View()
	case m.view.Loading():
		pane = fmt.Sprintf("%s Rendering %s...", m.spinner.View(), active.ID)
	case m.view.State() == render.StateIdle:
		pane = mutedStyle.Render("Waiting for first render")
	default:
		pane = m.viewport.View()
	}

	return mainStyle.Width(m.viewport.Width + 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, mainTitleStyle.Render(heading), pane),
	)
}

func (m Model) renderFooter() string {
	keys := m.keys
	keys.Export.SetEnabled(m.state.CanExport())

	label := m.state.CopyButtonLabel()
	keys.Copy.SetHelp("c", label)

	line := m.help.View(keys)
	if label == session.CopiedLabel {
		line = copiedStyle.Render(label) + "  " + line
	}
	if !m.state.CanExport() {
		line += mutedStyle.Render("  • export unavailable")
	}
	if m.status != "" {
		line = statusStyle.Render(m.status) + "\n" + line
	}

	return footerStyle.Render(line)
}
