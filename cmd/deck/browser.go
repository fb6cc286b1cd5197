package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deck/internal/platform"
	"github.com/alexisbeaulieu97/deck/internal/tui/browser"
)

func runBrowser(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags, false, "launch browser")
	if err != nil {
		return err
	}
	defer app.Close()

	app.Log.Info("launching browser")

	m := browser.New(browser.Options{
		Catalog:    app.Catalog,
		Engine:     app.Engine,
		Config:     app.Settings.RenderConfig(),
		Clipboard:  platform.SystemClipboard{},
		Downloader: platform.FileDownloader{Dir: app.Settings.ExportDir, Log: app.Log},
		Logger:     app.Log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	app.Log.Info("browser closed")
	return nil
}
