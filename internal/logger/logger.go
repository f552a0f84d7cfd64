// Package logger configures the process-wide slog logger: console and
// rotating file (lumberjack) outputs, text or JSON, fanned out through one
// handler. Library packages never call it; they take a *slog.Logger.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu      sync.RWMutex
	logger  *slog.Logger
	logFile *lumberjack.Logger
)

// Initialize installs a logger built from config, with the console on stderr.
func Initialize(config Config) error {
	return InitializeWriter(config, os.Stderr)
}

// InitializeWriter is Initialize with an explicit console writer. The
// rotating file of a previous call is closed once the new logger is live.
func InitializeWriter(config Config, console io.Writer) error {
	level := parseLogLevel(config.Level)
	opts := &slog.HandlerOptions{Level: level}
	var handlers []slog.Handler
	var file *lumberjack.Logger

	if config.ConsoleEnabled {
		handlers = append(handlers, newHandler(console, config.ConsoleFormat, opts))
	}
	if config.FileEnabled {
		if config.FilePath == "" {
			return errors.New("logger: file logging enabled without file_path")
		}
		file = &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.FileMaxSizeMB,
			MaxBackups: config.FileMaxBackups,
			MaxAge:     config.FileMaxAgeDays,
		}
		handlers = append(handlers, newHandler(file, config.FileFormat, opts))
	}

	var l *slog.Logger
	switch len(handlers) {
	case 0:
		l = slog.New(slog.DiscardHandler)
	case 1:
		l = slog.New(handlers[0])
	default:
		l = slog.New(newMultiHandler(handlers...))
	}

	mu.Lock()
	prev := logFile
	logger, logFile = l, file
	mu.Unlock()
	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close releases the rotating log file, if any. The logger stays installed;
// a later write reopens the file.
func Close() error {
	mu.RLock()
	f := logFile
	mu.RUnlock()
	if f == nil {
		return nil
	}
	return f.Close()
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLogLevel maps DEBUG, INFO, WARN(ING) and ERROR; anything else is INFO.
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns the installed logger, or a discarding one before Initialize.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { Logger().Info(msg, args...) }

// Warning logs a warning message.
func Warning(msg string, args ...any) { Logger().Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { Logger().Error(msg, args...) }

// multiHandler writes each record to every enabled handler.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
