package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Option configures the logger factory.
type Option func(*options)

type options struct {
	output     io.Writer
	level      slog.Level
	format     string
	extractors []ContextExtractor
}

// WithLevel sets the minimum log level.
// Default: info.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat selects the output format: "json" or "text".
// Default: json.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithOutput redirects log output.
// Default: stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithExtractors adds context extractors whose attributes are injected into
// every record logged with a context.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// New creates a structured logger.
func New(opts ...Option) *slog.Logger {
	o := &options{
		output: os.Stdout,
		level:  slog.LevelInfo,
		format: "json",
	}
	for _, opt := range opts {
		opt(o)
	}

	var handler slog.Handler
	if o.format == "text" {
		handler = slog.NewTextHandler(o.output, &slog.HandlerOptions{Level: o.level})
	} else {
		handler = slog.NewJSONHandler(o.output, &slog.HandlerOptions{Level: o.level})
	}

	return slog.New(NewHandlerDecorator(handler, o.extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
