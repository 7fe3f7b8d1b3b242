package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []LogData {
	t.Helper()
	var entries []LogData
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var entry LogData
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger_WritesEntries(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, LevelDebug)

	log.Info("fetch started")
	log.Error("fetch failed", errors.New("quota exceeded"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "fetch started", entries[0].Message)
	assert.Equal(t, "logger_test.go", entries[0].File)
	assert.Empty(t, entries[0].Err)
	assert.NotEmpty(t, entries[0].Timestamp)

	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "quota exceeded", entries[1].Err)
}

func TestJSONLogger_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, LevelWarning)

	log.Debug("noise")
	log.Info("noise")
	log.Warning("careful")
	log.Error("broken", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARNING", entries[0].Level)
	assert.Equal(t, "ERROR", entries[1].Level)
}

func TestJSONLogger_ClosedDropsEntries(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, LevelDebug)
	log.Close()

	assert.NotPanics(t, func() { log.Info("after close") })
	assert.Zero(t, buf.Len())
}

func TestNewFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := NewFileLogger(dir, "channel_filter", LevelInfo)
	require.NoError(t, err)
	log.Info("hello")
	log.Close()

	files, err := filepath.Glob(filepath.Join(dir, "channel_filter_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"", LevelInfo, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarning, false},
		{"Warning", LevelWarning, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
