package app

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandler(t *testing.T) {
	t.Parallel()

	newLogger := func(level slog.Level) (*slog.Logger, *bytes.Buffer) {
		var buf bytes.Buffer
		lv := &slog.LevelVar{}
		lv.Set(level)
		return slog.New(&consoleHandler{w: &buf, level: lv}), &buf
	}

	t.Run("info is just the message", func(t *testing.T) {
		t.Parallel()
		logger, buf := newLogger(slog.LevelInfo)
		logger.Info("Watching for changes", "path", "params.yaml")
		assert.Equal(t, "Watching for changes\n", buf.String())
	})

	t.Run("warnings and errors are prefixed", func(t *testing.T) {
		t.Parallel()
		logger, buf := newLogger(slog.LevelInfo)
		logger.Warn("logging to file disabled")
		logger.Error("Validation failed")
		assert.Contains(t, buf.String(), "Warning: logging to file disabled")
		assert.Contains(t, buf.String(), "Error: Validation failed")
	})

	t.Run("error attributes always shown", func(t *testing.T) {
		t.Parallel()
		logger, buf := newLogger(slog.LevelInfo)
		logger.Error("Validation failed", "error", "boom")
		assert.Contains(t, buf.String(), ": boom")
	})

	t.Run("attributes only in debug mode", func(t *testing.T) {
		t.Parallel()
		logger, buf := newLogger(slog.LevelInfo)
		logger.Info("validating document", "path", "params.yaml")
		assert.NotContains(t, buf.String(), "path=")

		logger, buf = newLogger(slog.LevelDebug)
		logger.Info("validating document", "path", "params.yaml")
		assert.Contains(t, buf.String(), "path=params.yaml")
	})

	t.Run("debug suppressed at info level", func(t *testing.T) {
		t.Parallel()
		logger, buf := newLogger(slog.LevelInfo)
		logger.Debug("noise")
		assert.Empty(t, buf.String())
	})
}

func TestSetupLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ltx-test.log")
	t.Setenv(LogEnvVar, logPath)

	var stderr bytes.Buffer
	lv := &slog.LevelVar{}
	logger, closer, err := setupLogger(&stderr, lv)
	require.NoError(t, err)
	require.NotNil(t, closer)
	defer closer.Close()

	logger.Info("hello")
	assert.Contains(t, stderr.String(), "hello")
	assert.FileExists(t, logPath)
}
