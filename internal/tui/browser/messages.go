package browser

import (
	"github.com/alexisbeaulieu97/deck/internal/render"
)

// renderDoneMsg carries a finished render task back to the event loop.
type renderDoneMsg struct {
	Result render.Result
}

// selectDiagramMsg is emitted by the navigation panel.
type selectDiagramMsg struct {
	ID string
}

// copyResetMsg fires when a copy acknowledgement expires.
type copyResetMsg struct {
	Gen int
}

// exportDoneMsg reports that the export was handed to the downloader. The
// downloader gives no completion signal, so it says nothing about success.
type exportDoneMsg struct {
	Stem string
}
