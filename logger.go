package vecmmap

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecmmap-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDir adds a dir field to the logger.
func (l *Logger) WithDir(dir string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dir", dir),
	}
}

// WithSlot adds a slot field to the logger.
func (l *Logger) WithSlot(slot Slot) *Logger {
	return &Logger{
		Logger: l.Logger.With("slot", slot.String()),
	}
}

// WithChunk adds a chunk id field to the logger.
func (l *Logger) WithChunk(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunk", id),
	}
}

func (l *Logger) slogger() *slog.Logger {
	if l == nil {
		return nil
	}
	return l.Logger
}
