package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_CONSOLE_FORMAT", "json")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("LOG_FILE_PATH", "/tmp/x.log")

	c := DefaultConfig().ApplyEnv()
	assert.Equal(t, "DEBUG", c.Level)
	assert.Equal(t, "json", c.ConsoleFormat)
	assert.True(t, c.FileEnabled)
	assert.Equal(t, "/tmp/x.log", c.FilePath)

	t.Setenv("LOG_FILE_ENABLED", "maybe")
	assert.False(t, DefaultConfig().ApplyEnv().FileEnabled)
}

func TestConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "WARN"
	require.NoError(t, InitializeWriter(cfg, &buf))

	Debug("hidden")
	Info("hidden too")
	Warning("careful", "cells", 12)
	Error("broken")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=careful cells=12")
	assert.Contains(t, out, "level=ERROR")
}

func TestJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "json"
	require.NoError(t, InitializeWriter(cfg, &buf))

	Logger().Info("generated", "algorithm", "wilson")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "generated", rec["msg"])
	assert.Equal(t, "wilson", rec["algorithm"])
}

func TestFileAndConsoleFanOut(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "maze.log")
	cfg := DefaultConfig()
	cfg.FileEnabled, cfg.FilePath = true, path
	require.NoError(t, InitializeWriter(cfg, &buf))

	Logger().With("run", "abc").Info("saved")
	assert.Contains(t, buf.String(), "run=abc")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "msg=saved run=abc"))
}

func TestNoOutputsDiscards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	require.NoError(t, InitializeWriter(cfg, nil))
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestFileWithoutPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FileEnabled, cfg.FilePath = true, ""
	assert.Error(t, InitializeWriter(cfg, &bytes.Buffer{}))
}

func TestReinitializeClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	cfg.FileEnabled, cfg.FilePath = true, filepath.Join(dir, "first.log")
	require.NoError(t, InitializeWriter(cfg, nil))
	Info("first")
	first := logFile
	require.NotNil(t, first)

	cfg.FilePath = filepath.Join(dir, "second.log")
	require.NoError(t, InitializeWriter(cfg, nil))
	assert.NotSame(t, first, logFile)
	Info("second")

	data, err := os.ReadFile(filepath.Join(dir, "first.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=first")
	assert.NotContains(t, string(data), "msg=second")

	cfg.FileEnabled = false
	require.NoError(t, InitializeWriter(cfg, nil))
	assert.Nil(t, logFile)
	assert.NoError(t, Close())
}
