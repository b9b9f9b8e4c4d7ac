package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestLogger_Fields(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	buf := &bytes.Buffer{}
	logger := NewZerologLoggerWithWriter("dispatcher", buf)
	logger.SetLevel("debug")

	logger.Info("gate decision", "outcome", "forward", 42, "ignored", "dangling")
	logger.Error("dispatch failed", "error", errors.New("resource not found"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "gate decision", lines[0]["message"])
	assert.Equal(t, "dispatcher", lines[0]["service"])
	assert.Equal(t, "forward", lines[0]["outcome"])
	assert.NotContains(t, lines[0], "dangling")

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "resource not found", lines[1]["error"])
}

func TestLogger_SetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "unknown falls back to info", level: "verbose", want: zerolog.InfoLevel},
	}
	logger := NewZerologLoggerWithWriter("dispatcher", &bytes.Buffer{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger.SetLevel(tt.level)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestLogger_WithContext(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	buf := &bytes.Buffer{}
	logger := NewZerologLoggerWithWriter("dispatcher", buf).
		WithContext(map[string]interface{}{"request_id": "abc"})

	logger.Debug("request started")
	logger.Warn("request slow")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "abc", line["request_id"])
	}
}
