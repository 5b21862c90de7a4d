package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/deputui/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, want := range tests {
		t.Run("level="+input, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(input))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("debug"))
	assert.True(t, ValidLevel("error"))
	assert.False(t, ValidLevel("verbose"))
	assert.False(t, ValidLevel(""))
}

func TestLogger_Info(t *testing.T) {
	// Setup
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("resolve", "resolved 3 packages")

	// Verify
	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[resolve]")
	assert.Contains(t, string(content), "resolved 3 packages")
}

func TestLogger_LevelFiltering(t *testing.T) {
	// Setup
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Debug("notes", "debug message")
	logger.Info("notes", "info message")
	logger.Warn("notes", "warn message")
	logger.Error("notes", "error message")

	// Verify
	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyStateDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	// Should not panic or create anything
	logger.Info("resolve", "message")
	logger.Error("resolve", "message")

	assert.Empty(t, logger.Path())
}

func TestLogger_LogFormat(t *testing.T) {
	// Setup
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Warn("cache", `write failed: "disk full"`)

	// Verify
	content, err := os.ReadFile(logger.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `[2025-12-30 09:32:51] [WARN] [cache] write failed: "disk full"`, lines[0])
}

func TestLogger_ReopensAfterClose(t *testing.T) {
	// Setup
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)

	// Execute
	logger.Info("review", "first")
	require.NoError(t, logger.Close())
	logger.Info("review", "second")
	require.NoError(t, logger.Close())

	// Verify
	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first")
	assert.Contains(t, string(content), "second")
}

func TestLogger_CreateLogsDir(t *testing.T) {
	// Setup - stateDir exists but logs subdir doesn't
	stateDir := t.TempDir()
	logsDir := filepath.Join(stateDir, "logs")
	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	// Execute
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("resolve", "test message")

	// Verify
	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
