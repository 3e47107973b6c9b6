package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/msglog/core"
	"github.com/philipp01105/msglog/logger"
)

// CallerKey is the attribute key that overrides the tag of a line
const CallerKey = "caller"

// DefaultName is the tag used when neither Options.Name nor a caller
// attribute is given
const DefaultName = "slog"

// Options configures a Handler
type Options struct {
	// Name is the caller name lines are tagged with (default: DefaultName)
	Name string
	// Level is the minimum level handled (default: slog.LevelDebug)
	Level slog.Leveler
}

// Handler is a slog.Handler that routes records through a msglog Logger.
// The record message is the catalog key and attribute values are the
// positional arguments, in order. Attribute keys and groups only serve to
// order values and are not rendered.
type Handler struct {
	log    *logger.Logger
	name   string
	level  slog.Leveler
	values []any
}

// New creates a Handler writing through l
func New(l *logger.Logger, opts *Options) *Handler {
	h := &Handler{log: l, name: DefaultName, level: slog.LevelDebug}
	if opts != nil {
		if opts.Name != "" {
			h.name = opts.Name
		}
		if opts.Level != nil {
			h.level = opts.Level
		}
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle resolves record.Message against the catalog and logs the result.
// The record time is ignored; lines carry the Logger's clock.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	name := h.name
	args := make([]any, len(h.values), len(h.values)+record.NumAttrs())
	copy(args, h.values)

	record.Attrs(func(a slog.Attr) bool {
		if a.Key == CallerKey {
			name = a.Value.Resolve().String()
			return true
		}
		args = appendValues(args, a)
		return true
	})

	h.log.Log(levelFromSlog(record.Level), name, record.Message, args...)
	return nil
}

// WithAttrs returns a new Handler whose lines start with the values of attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.values = make([]any, len(h.values), len(h.values)+len(attrs))
	copy(h2.values, h.values)
	for _, a := range attrs {
		if a.Key == CallerKey {
			h2.name = a.Value.Resolve().String()
			continue
		}
		h2.values = appendValues(h2.values, a)
	}
	return &h2
}

// WithGroup returns h; group names are not rendered.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

// appendValues appends the value of a, flattening groups
func appendValues(dst []any, a slog.Attr) []any {
	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		if a.Equal(slog.Attr{}) {
			return dst
		}
		return append(dst, v.Any())
	}
	for _, ga := range v.Group() {
		dst = appendValues(dst, ga)
	}
	return dst
}

// levelFromSlog converts a slog.Level to a core.Level.
func levelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
