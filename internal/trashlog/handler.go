package trashlog

import (
	"context"
	"log/slog"
)

// wrapFunc returns extra attributes to stamp onto every record, e.g.
// a run id shared by every entry emitted during one CLI invocation.
type wrapFunc func() []slog.Attr

// wrapHandler decorates an slog.Handler with attributes computed at
// handle-time rather than bind-time, so a single run id can be
// attached without threading it through every call site.
type wrapHandler struct {
	handler slog.Handler
	fn      wrapFunc
}

func newWrapHandler(h slog.Handler, fn wrapFunc) *wrapHandler {
	if wh, ok := h.(*wrapHandler); ok {
		h = wh.handler
	}
	return &wrapHandler{handler: h, fn: fn}
}

func (h *wrapHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *wrapHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(h.fn()...)
	return h.handler.Handle(ctx, r)
}

func (h *wrapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newWrapHandler(h.handler.WithAttrs(attrs), h.fn)
}

func (h *wrapHandler) WithGroup(name string) slog.Handler {
	return newWrapHandler(h.handler.WithGroup(name), h.fn)
}
