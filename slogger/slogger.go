// Package slogger provides the small structured-logging interface used
// throughout memoforge, with an slog-backed implementation for the CLI and
// a no-op default for library embedding.
package slogger

import (
	"context"
	"strings"
)

// DefaultLogger is used when no logger is configured. Libraries stay quiet
// by default.
var DefaultLogger Logger = NewDevNullLogger()

// Logger is the logging interface accepted across memoforge. It supports
// structured key-value logging and is compatible in shape with slog and
// zerolog wrappers.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level with optional key-value pairs
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level with optional key-value pairs
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level with optional key-value pairs
	Error(msg string, keysAndValues ...any)

	// With returns a Logger that adds the key-value pairs to every entry
	With(keysAndValues ...any) Logger
}

type contextKey string

const loggerKey contextKey = "memoforge.logger"

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the logger carried by the context, or a default terminal
// logger when none is set.
func Ctx(ctx context.Context) Logger {
	if ctx == nil {
		return New(DefaultLogLevel)
	}
	logger, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		return New(DefaultLogLevel)
	}
	return logger
}

// LevelFromString converts a string to a LogLevel, falling back to the
// default for unrecognized values.
func LevelFromString(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return DefaultLogLevel
	}
}
