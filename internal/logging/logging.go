// Package logging provides zerolog-based structured logging for huruf.
//
// Loggers travel on the context: command setup attaches a configured logger
// plus a per-invocation trace ID, and every component retrieves it with
// FromContext. Components never construct their own root loggers.
package logging

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level string ("debug", "info", "warn", "error").
	Level string

	// Format selects "console" (human-readable) or "json" output.
	Format string

	// File is an optional log file path. When set, output goes to the file
	// instead of stderr; on open failure the logger falls back to stderr.
	File string
}

// LogPathResult reports where a constructed logger writes and carries the
// file handle for cleanup.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds a logger from cfg, resolving the output target.
// A configured file that cannot be opened degrades to stderr with the reason
// recorded in FallbackReason rather than failing the command.
func NewLoggerWithPath(cfg Config) LogPathResult {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	result := LogPathResult{}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
		} else {
			out = f
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = f
		}
	}

	if cfg.Format != "json" && !result.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	result.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// none is attached. Safe to call with a nil-value context chain.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user which file logs are going to.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user why file logging was not used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}

type traceIDKey struct{}

// ContextWithTraceID attaches a trace ID to ctx for cross-component correlation.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID attached to ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the context's trace ID, generating a fresh
// ULID when none is present.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	entropy := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // Trace IDs are not security sensitive.
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
