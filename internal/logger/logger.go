package logger

import (
	"fmt"
	"log/slog"
	"os"
)

var base *slog.Logger

func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	base = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func logger() *slog.Logger {
	if base == nil {
		Init()
	}
	return base
}

func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

func Infof(format string, v ...any) {
	logger().Info(fmt.Sprintf(format, v...))
}

func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

func Errorf(format string, v ...any) {
	logger().Error(fmt.Sprintf(format, v...))
}

func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}

func Debugf(format string, v ...any) {
	logger().Debug(fmt.Sprintf(format, v...))
}

func Fatal(msg string) {
	logger().Error(msg)
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	logger().Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
