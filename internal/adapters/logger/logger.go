// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/sift/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+). If zerr's API changes, errors gracefully fall
// back to standard formatting.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr at info level.
func New() *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{
		logger: slog.New(handler),
		level:  level,
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, preserving the current
// JSON mode. If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging. The output destination
// is preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(l.newHandler(w, enable))
}

// SetVerbose lowers the log level to debug when enable is true and restores
// info level otherwise.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

func (l *Logger) newHandler(w io.Writer, jsonMode bool) slog.Handler {
	if jsonMode {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l.level})
	}
	return NewPrettyHandler(w, &slog.HandlerOptions{Level: l.level})
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. When the error carries a zerr-style Message(), that
// message becomes the log line and the full chain is attached as an
// attribute.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var m messager
	if errors.As(err, &m) {
		l.logger.Error(m.Message(), "error", err.Error())
		return
	}
	l.logger.Error("operation failed", "error", err.Error())
}

var _ ports.Logger = (*Logger)(nil)
