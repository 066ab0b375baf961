package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, base)
}

func captureOutput(level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	base = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureOutput(slog.LevelInfo)

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithArgs(t *testing.T) {
	buf := captureOutput(slog.LevelInfo)

	Info("request handled", "method", "GET", "status", 200)

	output := buf.String()
	assert.Contains(t, output, "request handled")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "status=200")
}

func TestError(t *testing.T) {
	buf := captureOutput(slog.LevelInfo)

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebug(t *testing.T) {
	buf := captureOutput(slog.LevelDebug)

	Debug("test debug")

	assert.Contains(t, buf.String(), "test debug")
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := captureOutput(slog.LevelInfo)

	Debug("should not appear")

	assert.Empty(t, buf.String())
}

func TestInfof(t *testing.T) {
	buf := captureOutput(slog.LevelInfo)

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestErrorf(t *testing.T) {
	buf := captureOutput(slog.LevelInfo)

	Errorf("test %s: %d", "error", 42)

	output := buf.String()
	assert.Contains(t, output, "test error: 42")
}

func TestDebugf(t *testing.T) {
	buf := captureOutput(slog.LevelDebug)

	Debugf("test %s", "debug")

	assert.Contains(t, buf.String(), "test debug")
}
