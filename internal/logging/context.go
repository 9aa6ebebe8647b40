package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to check next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldDeviceID is the registry identifier of the recorder a line concerns.
	FieldDeviceID = "device_id"
	// FieldSessionID identifies one CLI invocation.
	FieldSessionID = "session_id"
	// FieldCommitID identifies one committed set of burn options.
	FieldCommitID = "commit_id"
	// FieldProfile is the media profile token.
	FieldProfile = "profile"
	// FieldWriteMethod is the write method token.
	FieldWriteMethod = "write_method"
	// FieldSpeed is a write speed in kB/s.
	FieldSpeed = "speed"
)

type deviceIDKey struct{}

// WithDeviceID returns a context tagged with a recorder identifier.
func WithDeviceID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, deviceIDKey{}, id)
}

// DeviceIDFromContext returns the recorder identifier stored by WithDeviceID.
func DeviceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(deviceIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if id, ok := DeviceIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldDeviceID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
