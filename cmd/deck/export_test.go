package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/render/rendertest"
)

func TestExportCommand_WritesEveryDiagram(t *testing.T) {
	useEngine(t, rendertest.New())
	dir := filepath.Join(t.TempDir(), "out")

	stdout, stderr, err := executeCommand(t, "export", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, "Exported 7 of 7 diagrams")
	require.Contains(t, stderr, "[7/7] release-train")

	data, err := os.ReadFile(filepath.Join(dir, "System_Context.svg"))
	require.NoError(t, err)
	d := builtinDiagram(t, "system-context")
	require.Equal(t, rendertest.Artifact(d.Source, render.ThemeLight), string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 7)
}

func TestExportCommand_SkipsFailures(t *testing.T) {
	engine := rendertest.New()
	d := builtinDiagram(t, "order-schema")
	engine.Fail[d.Source] = errors.New("bad shape")
	useEngine(t, engine)
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "export", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, "Exported 6 of 7 diagrams")
	require.Contains(t, stdout, "skipped order-schema")

	_, err = os.Stat(filepath.Join(dir, "Order_Schema.svg"))
	require.True(t, os.IsNotExist(err))
}

func TestExportCommand_FailsWhenNothingRenders(t *testing.T) {
	engine := rendertest.New()
	cat, err := catalog.Default()
	require.NoError(t, err)
	for _, d := range cat.All() {
		engine.Fail[d.Source] = errors.New("engine down")
	}
	useEngine(t, engine)

	stdout, _, err := executeCommand(t, "export", "--dir", t.TempDir())
	require.Error(t, err)
	require.Contains(t, stdout, "Exported 0 of 7 diagrams")
	require.Contains(t, err.Error(), "engine down")
}
