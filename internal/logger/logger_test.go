package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeSingle(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"diagram": "checkout-flow", "theme": "dark"})
	log.Info("render issued")

	entry := decodeSingle(t, buf)
	require.Equal(t, "render issued", entry["message"])
	require.Equal(t, "checkout-flow", entry["diagram"])
	require.Equal(t, "dark", entry["theme"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerComponentAndWith(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Component("render").With("token", "abc-1").Debug("stale result dropped")

	entry := decodeSingle(t, buf)
	require.Equal(t, "render", entry["component"])
	require.Equal(t, "abc-1", entry["token"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("action", "copy").Error(errors.New("boom"), "clipboard write failed")

	entry := decodeSingle(t, buf)
	require.Equal(t, "clipboard write failed", entry["message"])
	require.Equal(t, "copy", entry["action"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.With("k", "v"))
		require.Nil(t, log.Component("c"))
	})
}

func TestDiscardWritesNothing(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		Discard().Component("tui").Warn("dropped")
	})
}
