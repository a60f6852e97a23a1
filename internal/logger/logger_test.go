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

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"command": "audit", "source": "git"})
	log.Info("scan started")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "scan started", entry["message"])
	require.Equal(t, "audit", entry["command"])
	require.Equal(t, "git", entry["source"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "web/index.html"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "web/index.html", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Format: FormatConsole, Writer: buf})
	require.NoError(t, err)

	log.Warn("cache disabled")
	require.Contains(t, buf.String(), "cache disabled")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNilAndNopLoggers(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("ignored")
		nilLog.Error(errors.New("x"), "ignored")
		nilLog.Zerolog().Info().Msg("ignored")
	})
	require.Nil(t, nilLog.WithFields(map[string]any{"a": 1}))

	require.NotPanics(t, func() {
		Nop().Warn("ignored")
		Nop().Zerolog().Debug().Msg("ignored")
	})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		value    string
		fallback Format
		want     Format
		wantErr  bool
	}{
		{name: "empty defers to config", value: "", fallback: FormatConsole, want: FormatConsole},
		{name: "json", value: "json", fallback: FormatConsole, want: FormatJSON},
		{name: "console any case", value: " Console ", fallback: FormatJSON, want: FormatConsole},
		{name: "unknown", value: "xml", fallback: FormatJSON, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tc.value, tc.fallback)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	require.Equal(t, FormatConsole, FormatFor(true))
	require.Equal(t, FormatJSON, FormatFor(false))
}

func TestLoggerRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestLoggerComponent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Component("audit").Info("file skipped")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "audit", entry["component"])
	require.Equal(t, "file skipped", entry["message"])

	var nilLog *Logger
	require.Nil(t, nilLog.Component("server"))
}
