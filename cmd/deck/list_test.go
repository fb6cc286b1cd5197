package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/deck/internal/render/rendertest"
)

func TestListCommand_TableOutput(t *testing.T) {
	useEngine(t, rendertest.New())

	stdout, _, err := executeCommand(t, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "GROUP")
	require.Contains(t, stdout, "TITLE")
	// Buffers are not terminals, so the ASCII group marker is used.
	require.Contains(t, stdout, "> Architecture")
	require.Contains(t, stdout, "> Operations")
	require.NotContains(t, stdout, "▸")
	require.Contains(t, stdout, "system-context")
	require.Contains(t, stdout, "Release Train")
}

func TestListCommand_JSONOutput(t *testing.T) {
	useEngine(t, rendertest.New())

	stdout, _, err := executeCommand(t, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1", payload.Version)
	require.Equal(t, 7, payload.Count)

	labels := make([]string, len(payload.Groups))
	for i, g := range payload.Groups {
		labels[i] = g.Label
	}
	require.Equal(t, []string{"Architecture", "Flows", "Data", "Operations"}, labels)
	require.Equal(t, "system-context", payload.Groups[0].Diagrams[0].ID)
	require.Positive(t, payload.Groups[0].Diagrams[0].Lines)
}

func TestLineCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, lineCount(""))
	require.Equal(t, 1, lineCount("a -> b"))
	require.Equal(t, 2, lineCount("a -> b\nb -> c\n"))
}
