package logging

import (
	"context"
	"log/slog"
)

// sessionHandler stamps every record with the CLI session id and with the
// recorder id carried by the record's context, unless the logger already
// bound one through With.
type sessionHandler struct {
	next        slog.Handler
	sessionID   string
	boundDevice bool
}

func newSessionHandler(next slog.Handler, sessionID string) slog.Handler {
	if next == nil {
		return NoopHandler{}
	}
	return &sessionHandler{next: next, sessionID: sessionID}
}

func (h *sessionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sessionHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.sessionID != "" {
		record.AddAttrs(slog.String(FieldSessionID, h.sessionID))
	}
	if !h.boundDevice {
		if id, ok := DeviceIDFromContext(ctx); ok {
			record.AddAttrs(slog.String(FieldDeviceID, id))
		}
	}
	return h.next.Handle(ctx, record)
}

func (h *sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := h.boundDevice
	for _, attr := range attrs {
		if attr.Key == FieldDeviceID {
			bound = true
		}
	}
	return &sessionHandler{next: h.next.WithAttrs(attrs), sessionID: h.sessionID, boundDevice: bound}
}

func (h *sessionHandler) WithGroup(name string) slog.Handler {
	return &sessionHandler{next: h.next.WithGroup(name), sessionID: h.sessionID, boundDevice: h.boundDevice}
}
