// Package session owns the interactive selection state: the active diagram,
// the theme flag, the last rendered artifact and the copy acknowledgement.
// It is mutated only through the methods below, from the UI event loop.
package session

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
	"github.com/alexisbeaulieu97/deck/internal/render"
	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

// Copy button labels.
const (
	CopyLabel   = "Copy source"
	CopiedLabel = "Copied!"
)

// CopyAckDuration is how long CopiedLabel stays up after a successful copy.
const CopyAckDuration = 2 * time.Second

// Clipboard is the host clipboard boundary.
type Clipboard interface {
	WriteText(text string) error
}

// Downloader is the host download boundary. Completion is not reported.
type Downloader interface {
	Download(stem string, payload []byte)
}

// Artifact is a rendered diagram kept for export.
type Artifact struct {
	DiagramID string
	Title     string
	Theme     render.Theme
	SVG       string
}

// State is the session's single source of truth.
type State struct {
	catalog     *catalog.Catalog
	active      catalog.Diagram
	theme       render.Theme
	artifact    Artifact
	exportReady bool
	copied      bool
	copyGen     int
}

// New starts a session on the catalog's first diagram with export disabled.
func New(c *catalog.Catalog, theme render.Theme) *State {
	return &State{
		catalog: c,
		active:  c.First(),
		theme:   theme,
	}
}

// Catalog returns the catalog the session browses.
func (s *State) Catalog() *catalog.Catalog { return s.catalog }

// Active returns the selected diagram.
func (s *State) Active() catalog.Diagram { return s.active }

// Theme returns the current theme flag.
func (s *State) Theme() render.Theme { return s.theme }

// Artifact returns the last successfully rendered artifact, possibly empty.
func (s *State) Artifact() Artifact { return s.artifact }

// SelectDiagram makes id active. Re-selecting the active id is allowed; the
// caller treats it as a forced refresh.
func (s *State) SelectDiagram(id string) error {
	d, ok := s.catalog.Lookup(id)
	if !ok {
		return deckerrors.NewNotFoundError(id)
	}
	s.active = d
	return nil
}

// ToggleTheme flips the theme flag and returns the new value.
func (s *State) ToggleTheme() render.Theme {
	s.theme = s.theme.Toggle()
	return s.theme
}

// BeginRender disables export until the next successful render.
func (s *State) BeginRender() {
	s.exportReady = false
}

// RecordArtifact stores a successful render and enables export.
func (s *State) RecordArtifact(a Artifact) {
	s.artifact = a
	s.exportReady = a.SVG != ""
}

// RecordFailure keeps the previous artifact; export stays disabled.
func (s *State) RecordFailure() {
	s.exportReady = false
}

// CanExport reports whether ExportActive would trigger a download.
func (s *State) CanExport() bool {
	return s.exportReady && s.artifact.SVG != ""
}

// ExportStem returns the export file name stem for the active diagram.
func (s *State) ExportStem() string {
	return StemFor(s.active.Title)
}

// StemFor derives an export file name stem from a diagram title.
func StemFor(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}

// ExportActive hands the last artifact to dl. It returns false, and does
// nothing, when no exportable artifact exists.
func (s *State) ExportActive(dl Downloader) bool {
	if !s.CanExport() {
		return false
	}
	dl.Download(s.ExportStem(), []byte(s.artifact.SVG))
	return true
}

// CopyActiveSource writes the active source to clip. On success the label
// switches to CopiedLabel and the returned generation must be passed to
// ResetCopyLabel once CopyAckDuration has elapsed. On failure the label is
// unchanged and the error is returned for logging.
func (s *State) CopyActiveSource(clip Clipboard) (int, error) {
	if err := clip.WriteText(s.active.Source); err != nil {
		return s.copyGen, deckerrors.NewClipboardError(err)
	}
	s.copyGen++
	s.copied = true
	return s.copyGen, nil
}

// ResetCopyLabel restores the default label if gen belongs to the latest copy.
// A newer copy restarts the acknowledgement, so older timers are ignored.
func (s *State) ResetCopyLabel(gen int) bool {
	if gen != s.copyGen || !s.copied {
		return false
	}
	s.copied = false
	return true
}

// CopyButtonLabel returns the label the copy action currently shows.
func (s *State) CopyButtonLabel() string {
	if s.copied {
		return CopiedLabel
	}
	return CopyLabel
}
