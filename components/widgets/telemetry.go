package widgets

import (
	"context"
	"log/slog"
	"strings"
)

// Telemetry records widget events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// SlogTelemetry writes widget events as structured debug logs. Events ending in
// "_error" are logged at warn level.
type SlogTelemetry struct {
	Logger *slog.Logger
}

// NewSlogTelemetry wraps logger; a nil logger uses slog.Default().
func NewSlogTelemetry(logger *slog.Logger) *SlogTelemetry {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogTelemetry{Logger: logger}
}

// Record satisfies Telemetry.
func (t *SlogTelemetry) Record(ctx context.Context, event string, payload map[string]any) {
	if t == nil || t.Logger == nil {
		return
	}
	attrs := make([]slog.Attr, 0, len(payload))
	for key, value := range payload {
		attrs = append(attrs, slog.Any(key, value))
	}
	level := slog.LevelDebug
	if strings.HasSuffix(event, "_error") {
		level = slog.LevelWarn
	}
	t.Logger.LogAttrs(ctx, level, event, attrs...)
}
