package browser

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/session"
)

// renderCmd runs task off the event loop. A superseded task still runs to
// completion; View.Complete drops its result.
func renderCmd(task *render.Task) tea.Cmd {
	return func() tea.Msg {
		return renderDoneMsg{Result: task.Run(context.Background())}
	}
}

// selectCmd emits the navigation panel's selection event.
func selectCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return selectDiagramMsg{ID: id}
	}
}

// copyResetCmd restores the copy label after the acknowledgement period.
func copyResetCmd(gen int) tea.Cmd {
	return tea.Tick(session.CopyAckDuration, func(time.Time) tea.Msg {
		return copyResetMsg{Gen: gen}
	})
}

// queuedDownload captures what State.ExportActive hands over so the actual
// write happens inside a command rather than on the event loop.
type queuedDownload struct {
	stem    string
	payload []byte
}

func (q *queuedDownload) Download(stem string, payload []byte) {
	q.stem = stem
	q.payload = payload
}

// exportCmd passes a queued export to dl.
func exportCmd(dl session.Downloader, q queuedDownload) tea.Cmd {
	return func() tea.Msg {
		dl.Download(q.stem, q.payload)
		return exportDoneMsg{Stem: q.stem}
	}
}
