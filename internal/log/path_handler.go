package log

import (
	"context"
	"log/slog"
	"path/filepath"
)

// pathKeys contains attribute keys whose values are file paths and should be
// shown relative to the run's base directory.
var pathKeys = map[string]bool{
	"path": true,
	"file": true,
	"dir":  true,
}

// PathHandler wraps an slog.Handler and rewrites path-valued attributes to
// be relative to a base directory.
//
// Design decision: We use a handler wrapper rather than rewriting paths at
// each log call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free to log the paths they actually operate on
type PathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// base is the directory paths are made relative to.
	base string
}

// NewPathHandler creates a PathHandler that rewrites paths relative to base.
// If handler is nil, the returned PathHandler uses slog.Default().Handler().
func NewPathHandler(handler slog.Handler, base string) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PathHandler{handler: handler, base: base}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's path attributes and passes it on.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are rewritten before being added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), base: h.base}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), base: h.base}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *PathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			rewritten[i] = h.rewriteAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}

	if !pathKeys[a.Key] || a.Value.Kind() != slog.KindString {
		return a
	}

	rel, err := filepath.Rel(h.base, a.Value.String())
	if err != nil || rel == "" {
		// Different volume or unrelated root: leave the original value.
		return a
	}
	return slog.String(a.Key, rel)
}
