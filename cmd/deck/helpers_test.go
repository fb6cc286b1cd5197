package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deck/internal/catalog"
	"github.com/alexisbeaulieu97/deck/internal/logger"
	"github.com/alexisbeaulieu97/deck/internal/render"
	"github.com/alexisbeaulieu97/deck/internal/render/rendertest"
)

func init() {
	color.NoColor = true
}

// useEngine replaces the rendering engine for the duration of the test.
func useEngine(t *testing.T, engine *rendertest.Engine) {
	t.Helper()
	original := newEngine
	newEngine = func(*logger.Logger) render.Engine { return engine }
	t.Cleanup(func() { newEngine = original })
}

// executeCommand runs the root command with an absent settings file and a
// light theme, so results do not depend on the host.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)

	base := []string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "--theme", "light"}
	root.SetArgs(append(base, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func builtinDiagram(t *testing.T, id string) catalog.Diagram {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	d, ok := cat.Lookup(id)
	require.True(t, ok)
	return d
}
