package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deck/internal/platform"
	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/session"
)

type exportOptions struct {
	dir string
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every diagram in the catalog to SVG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, rootFlags, true, "export diagrams")
			if err != nil {
				return err
			}
			defer app.Close()
			return runExport(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Export directory (default from settings)")

	return cmd
}

type exportFailure struct {
	id  string
	err error
}

func runExport(cmd *cobra.Command, app *AppContext, opts *exportOptions) error {
	dir := opts.dir
	if dir == "" {
		dir = app.Settings.ExportDir
	}
	dl := platform.FileDownloader{Dir: dir, Log: app.Log}
	cfg := app.Settings.RenderConfig()
	diagrams := app.Catalog.All()

	progress := newProgressReporter(cmd.ErrOrStderr())
	progress.Start(len(diagrams))

	var failures []exportFailure
	for i, d := range diagrams {
		svg, err := render.RenderOnce(cmd.Context(), app.Engine, cfg, d.ID, d.Source)
		if err == nil {
			_, err = dl.Save(session.StemFor(d.Title), []byte(svg))
		}
		if err != nil {
			app.Log.With("diagram", d.ID).Error(err, "export failed")
			failures = append(failures, exportFailure{id: d.ID, err: err})
		}
		progress.Update(i+1, d.ID)
	}
	progress.Finish()

	out := cmd.OutOrStdout()
	summary := color.New(color.FgGreen).SprintfFunc()
	if len(failures) > 0 {
		summary = color.New(color.FgYellow).SprintfFunc()
	}
	skipped := color.New(color.FgRed).SprintFunc()

	fmt.Fprintln(out, summary("Exported %d of %d diagrams to %s", len(diagrams)-len(failures), len(diagrams), dir))
	for _, f := range failures {
		fmt.Fprintf(out, "  %s %s: %v\n", skipped("skipped"), f.id, f.err)
	}

	if len(diagrams) > 0 && len(failures) == len(diagrams) {
		return newCommandError("export diagrams", "rendering the catalog", failures[0].err, "Check the layout settings; no diagram could be rendered.")
	}
	return nil
}
