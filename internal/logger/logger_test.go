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

func decodeLines(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"run_id": "abc", "model": "resnet"})
	log.Info("starting registration")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "starting registration", entries[0]["message"])
	require.Equal(t, "abc", entries[0]["run_id"])
	require.Equal(t, "resnet", entries[0]["model"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerGlyphLines(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Progress("checking resource group 'rg'")
	log.Success("resource group found", `{"name":"rg"}`)
	log.Failure(errors.New("exit status 3"), "resource group not found", "ResourceGroupNotFound")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)

	require.Equal(t, GlyphProgress+" checking resource group 'rg'", entries[0]["message"])

	require.Equal(t, "info", entries[1]["level"])
	require.Equal(t, GlyphSuccess+" resource group found", entries[1]["message"])
	require.Equal(t, `{"name":"rg"}`, entries[1]["output"])

	require.Equal(t, "error", entries[2]["level"])
	require.Equal(t, GlyphFailure+" resource group not found", entries[2]["message"])
	require.Equal(t, "ResourceGroupNotFound", entries[2]["detail"])
	require.Equal(t, "exit status 3", entries[2]["error"])
}

func TestLoggerFailureFallsBackToErrorMessage(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Failure(errors.New("executable file not found in $PATH"), "model not registered", "")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "executable file not found in $PATH", entries[0]["detail"])
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, NoColor: true, Writer: buf})
	require.NoError(t, err)

	log.Success("model registered", "")
	require.Contains(t, buf.String(), GlyphSuccess+" model registered")
	require.Contains(t, buf.String(), "INF")
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("x")
		log.Progress("x")
		log.Success("x", "y")
		log.Failure(errors.New("boom"), "x", "")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
}
