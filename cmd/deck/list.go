package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the diagrams in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, rootFlags, true, "list diagrams")
			if err != nil {
				return err
			}
			defer app.Close()
			return runList(cmd, app.Catalog, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, cat *catalog.Catalog, opts *listOptions) error {
	if opts.jsonOutput {
		return renderListJSON(cmd, cat.Groups())
	}
	return renderListTable(cmd, cat.Groups())
}

func renderListTable(cmd *cobra.Command, groups []catalog.Group) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "GROUP\tID\tTITLE\tLINES")

	marker := "> "
	if supportsUnicode(cmd.OutOrStdout()) {
		marker = "▸ "
	}

	for _, g := range groups {
		for i, d := range g.Diagrams {
			label := ""
			if i == 0 {
				label = marker + g.Label
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%d\n", label, d.ID, d.Title, lineCount(d.Source))
		}
	}

	return writer.Flush()
}

type listJSONDiagram struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Lines int    `json:"lines"`
}

type listJSONGroup struct {
	Label    string            `json:"label"`
	Diagrams []listJSONDiagram `json:"diagrams"`
}

type listJSONPayload struct {
	Version string          `json:"version"`
	Count   int             `json:"count"`
	Groups  []listJSONGroup `json:"groups"`
}

func renderListJSON(cmd *cobra.Command, groups []catalog.Group) error {
	payload := listJSONPayload{
		Version: "1",
		Groups:  make([]listJSONGroup, len(groups)),
	}

	for i, g := range groups {
		out := listJSONGroup{Label: g.Label, Diagrams: make([]listJSONDiagram, len(g.Diagrams))}
		for j, d := range g.Diagrams {
			out.Diagrams[j] = listJSONDiagram{ID: d.ID, Title: d.Title, Lines: lineCount(d.Source)}
		}
		payload.Count += len(g.Diagrams)
		payload.Groups[i] = out
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func lineCount(source string) int {
	trimmed := strings.TrimRight(source, "\n")
	if trimmed == "" {
		return 0
	}
	return strings.Count(trimmed, "\n") + 1
}
