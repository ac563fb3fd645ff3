package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLevel("debug"))
	assert.Equal(t, LevelWarn, parseLevel("warning"))
	assert.Equal(t, LevelError, parseLevel("error"))
	assert.Equal(t, LevelInfo, parseLevel("unknown"))
	assert.Equal(t, LevelInfo, parseLevel(""))
}

func TestLoggerWritesToFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	l, err := New(LevelInfo, logPath, false)
	require.NoError(t, err)

	l.Info("hello %s", "world")
	l.Debug("should be filtered")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[INFO] hello world")
	assert.NotContains(t, content, "should be filtered")
}

func TestLoggerLevelFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	l, err := New(LevelError, logPath, false)
	require.NoError(t, err)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error happened")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ERROR] error happened")
}

func TestLoggerPreserveAppends(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	l, err := New(LevelInfo, logPath, true)
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, l.Close())

	l, err = New(LevelInfo, logPath, true)
	require.NoError(t, err)
	l.Info("second")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestPackageFunctionsNoopBeforeInit(t *testing.T) {
	saved := defaultLogger
	defaultLogger = nil
	defer func() { defaultLogger = saved }()

	// Must not panic.
	Debug("a")
	Info("b")
	Warn("c")
	Error("d")
}
