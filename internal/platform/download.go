package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/deck/internal/logger"
)

// Export file conventions.
const (
	ExportExtension = ".svg"
	ExportMIMEType  = "image/svg+xml"
)

// FileDownloader saves exports into Dir as <stem>.svg. Download gives the
// caller no completion signal; outcomes are logged.
type FileDownloader struct {
	Dir string
	Log *logger.Logger
}

// Download writes payload and logs the result.
func (d FileDownloader) Download(stem string, payload []byte) {
	path, err := d.Save(stem, payload)
	log := d.Log.Component("export").With("path", path)
	if err != nil {
		log.Error(err, "export failed")
		return
	}
	log.WithFields(map[string]any{"bytes": len(payload), "mime": ExportMIMEType}).Info("diagram exported")
}

// Save writes payload to the export path for stem and returns that path.
func (d FileDownloader) Save(stem string, payload []byte) (string, error) {
	path := d.Path(stem)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return path, fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Path returns where stem would be exported.
func (d FileDownloader) Path(stem string) string {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, stem+ExportExtension)
}
