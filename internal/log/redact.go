package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// personalKeys contains attribute keys whose values name people.
var personalKeys = map[string]bool{
	"person":  true,
	"people":  true,
	"name":    true,
	"names":   true,
	"trainee": true,
}

// MaskValue is the string used to replace personnel names.
const MaskValue = "***REDACTED***"

// RedactingHandler wraps an slog.Handler to mask personnel names.
// It intercepts log records and replaces attribute values keyed by a
// personal key before passing them to the underlying handler. Groups are
// walked recursively; slices of names are masked as a whole.
type RedactingHandler struct {
	// handler is the underlying slog handler that receives redacted records.
	handler slog.Handler

	// reveal disables masking.
	reveal bool
}

// NewRedactingHandler creates a new RedactingHandler wrapping the given handler.
// Names are masked unless reveal is true.
// If handler is nil, the returned RedactingHandler will use slog.Default().Handler().
func NewRedactingHandler(handler slog.Handler, reveal bool) *RedactingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactingHandler{handler: handler, reveal: reveal}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle redacts the record's attributes and passes it to the underlying handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.reveal {
		return h.handler.Handle(ctx, r)
	}

	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(redactAttr(a))
		return true
	})

	return h.handler.Handle(ctx, redacted)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are redacted before being added.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if !h.reveal {
		redacted := make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			redacted[i] = redactAttr(a)
		}
		attrs = redacted
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(attrs), reveal: h.reveal}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name), reveal: h.reveal}
}

// redactAttr masks a single attribute, recursively handling groups.
func redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			redacted[i] = redactAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	if isPersonalKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	return a
}

// isPersonalKey reports whether an attribute key names a person.
// "training" and "training_name" are not personal; only the person-related
// keywords are matched as substrings.
func isPersonalKey(key string) bool {
	key = strings.ToLower(key)
	if personalKeys[key] {
		return true
	}
	return strings.Contains(key, "person") || strings.Contains(key, "people")
}

// NewLogger creates a new slog.Logger writing text records with names redacted.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug and reveals names; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewTextHandler(w, handlerOptions(verbose)), verbose))
}

// NewJSONLogger creates a new slog.Logger writing JSON records with names
// redacted. It backs --log-format json.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewJSONHandler(w, handlerOptions(verbose)), verbose))
}

// handlerOptions returns the level settings shared by both loggers.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
