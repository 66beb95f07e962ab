package logging

import (
	"context"
	"log/slog"
	"strings"
)

// BufferHandler is an slog.Handler that captures every record into a Buffer
// in addition to a wrapped base handler (typically stderr).
type BufferHandler struct {
	base   slog.Handler
	buffer *Buffer
	attrs  []slog.Attr
	groups []string
}

// NewBufferHandler wraps a base slog.Handler with ring-buffer capture.
func NewBufferHandler(base slog.Handler, buffer *Buffer) *BufferHandler {
	return &BufferHandler{base: base, buffer: buffer}
}

// Enabled implements slog.Handler.
func (h *BufferHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *BufferHandler) Handle(ctx context.Context, r slog.Record) error {
	err := h.base.Handle(ctx, r)

	attrs := make(map[string]string, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if len(h.groups) > 0 {
			key = strings.Join(h.groups, ".") + "." + key
		}
		attrs[key] = a.Value.String()
		return true
	})

	h.buffer.Add(Record{
		Time:    r.Time,
		Level:   r.Level.String(),
		Message: r.Message,
		Attrs:   attrs,
	})
	return err
}

// WithAttrs implements slog.Handler.
func (h *BufferHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &BufferHandler{
		base:   h.base.WithAttrs(attrs),
		buffer: h.buffer,
		attrs:  append(append([]slog.Attr{}, h.attrs...), attrs...),
		groups: h.groups,
	}
}

// WithGroup implements slog.Handler.
func (h *BufferHandler) WithGroup(name string) slog.Handler {
	return &BufferHandler{
		base:   h.base.WithGroup(name),
		buffer: h.buffer,
		attrs:  h.attrs,
		groups: append(append([]string{}, h.groups...), name),
	}
}
