package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
	"github.com/alexisbeaulieu97/deck/internal/render"
	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

type renderOptions struct {
	out string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <id|query>",
		Short: "Render one diagram to SVG",
		Long:  "Render a catalog diagram to SVG. The argument is a diagram id or a fuzzy query; the best match is rendered.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, rootFlags, true, "render diagram")
			if err != nil {
				return err
			}
			defer app.Close()
			return runRender(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the SVG to this file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, app *AppContext, query string, opts *renderOptions) error {
	d, err := resolveDiagram(app.Catalog, query)
	if err != nil {
		return newCommandError("render diagram", fmt.Sprintf("resolving %q", query), err, "Run 'deck list' to see the available diagrams.")
	}

	log := app.Log.With("diagram", d.ID)
	if d.ID != query {
		log.With("query", query).Info("query resolved")
	}

	svg, err := render.RenderOnce(cmd.Context(), app.Engine, app.Settings.RenderConfig(), d.ID, d.Source)
	if err != nil {
		log.Error(err, "render failed")
		return newCommandError("render diagram", d.ID, err, "Fix the diagram source in the catalog.")
	}

	if opts.out == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}

	if err := os.WriteFile(opts.out, []byte(svg), 0o644); err != nil {
		return newCommandError("render diagram", "writing "+opts.out, err, "Choose a writable --out path.")
	}
	log.With("path", opts.out).Info("diagram written")
	return nil
}

// resolveDiagram returns the diagram with id query, or the best fuzzy match.
func resolveDiagram(cat *catalog.Catalog, query string) (catalog.Diagram, error) {
	if d, ok := cat.Lookup(query); ok {
		return d, nil
	}
	matches := cat.Search(query)
	if len(matches) == 0 {
		return catalog.Diagram{}, deckerrors.NewNotFoundError(query)
	}
	return matches[0], nil
}
