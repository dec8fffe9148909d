package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var globalLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Config holds logger configuration.
type Config struct {
	Level      string
	Format     string // "json" or "text"
	OutputPath string // file path, "stdout", "stderr" or "" to discard
	MaxSizeMB  int
	MaxBackups int
}

var rotating *lumberjack.Logger

// InitWithConfig installs the global logger. File outputs are rotated.
func InitWithConfig(cfg Config) error {
	var output io.Writer
	switch strings.ToLower(strings.TrimSpace(cfg.OutputPath)) {
	case "":
		output = io.Discard
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
			return err
		}
		if rotating != nil {
			_ = rotating.Close()
		}
		rotating = &lumberjack.Logger{
			Filename:   cfg.OutputPath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		output = rotating
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
	return nil
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close flushes and closes a rotating log file if one is open.
func Close() error {
	if rotating == nil {
		return nil
	}
	err := rotating.Close()
	rotating = nil
	return err
}

func Get() *slog.Logger {
	return globalLogger
}

func With(args ...any) *slog.Logger {
	return globalLogger.With(args...)
}

func Debug(msg string, args ...any) {
	globalLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	globalLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	globalLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	globalLogger.Error(msg, args...)
}
