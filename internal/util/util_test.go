package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferOutput struct {
	entries []LogEntry
}

func (b *bufferOutput) Write(entry LogEntry) error {
	b.entries = append(b.entries, entry)
	return nil
}

func (b *bufferOutput) Close() error { return nil }

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	out := &bufferOutput{}
	logger := &Logger{level: LevelWarn}
	logger.AddOutput(out)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown", F("well", "A374_01"))
	logger.Errorf("failed %d", 2)

	require.Len(t, out.entries, 2)
	assert.Equal(t, "WARN", out.entries[0].Level)
	assert.Equal(t, "A374_01", out.entries[0].Fields["well"])
	assert.Equal(t, "failed 2", out.entries[1].Message)
}

func TestLoggerWithAddsFields(t *testing.T) {
	out := &bufferOutput{}
	logger := &Logger{level: LevelDebug}
	logger.AddOutput(out)

	child := logger.With(F("phase", "build"))
	child.Info("done", F("traces", 13))
	logger.Info("plain")

	require.Len(t, out.entries, 2)
	assert.Equal(t, "build", out.entries[0].Fields["phase"])
	assert.Equal(t, 13, out.entries[0].Fields["traces"])
	assert.Nil(t, out.entries[1].Fields)
}

func TestConsoleOutputFormats(t *testing.T) {
	entry := LogEntry{Level: "INFO", Message: "loaded", Fields: map[string]interface{}{"rows": 15, "file": "wells.csv"}}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConsoleOutput(&buf, FormatText).Write(entry))
		line := buf.String()
		assert.Contains(t, line, "[INFO] loaded file=wells.csv rows=15")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConsoleOutput(&buf, FormatJSON).Write(entry))

		var decoded map[string]interface{}
		require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded))
		assert.Equal(t, "loaded", decoded["message"])
	})
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellviz.log")
	logger, err := NewLogger("info", path, false, FormatText)
	require.NoError(t, err)

	logger.Info("render complete")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "render complete"))
}

func TestFingerprintChangesWithContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wells.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

	first, err := FingerprintFile(path)
	require.NoError(t, err)
	again, err := FingerprintFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,3\n"), 0644))
	changed, err := FingerprintFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, first.Tail, changed.Tail)

	_, err = FingerprintFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
