package erroz

import (
	"log/slog"

	"github.com/rs/zerolog"
)

// LogValue implements slog.LogValuer.
// The instance is logged as a group of its identity, message and data.
//
// Example:
//
//	slog.Error("request failed", "error", err)
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", e.Name),
		slog.String("code", e.Code),
		slog.String("status", string(e.Status)),
		slog.Int("statusCode", e.StatusCode),
		slog.String("message", e.Message),
		slog.Any("data", map[string]any(e.Data)),
	}
	if e.includeStack {
		attrs = append(attrs, slog.String("stack", e.stack))
	}
	return slog.GroupValue(attrs...)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
//
// Example:
//
//	log.Error().Object("error", err).Msg("request failed")
func (e *Error) MarshalZerologObject(event *zerolog.Event) {
	event.
		Str("name", e.Name).
		Str("code", e.Code).
		Str("status", string(e.Status)).
		Int("statusCode", e.StatusCode).
		Str("message", e.Message).
		Interface("data", e.Data)
	if e.includeStack {
		event.Str("stack", e.stack)
	}
}
