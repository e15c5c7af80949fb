package log

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Event is the structured record emitted for application events such as
// searches and malformed ledger rows.
type Event struct {
	Level     string         `json:"level"`
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// EventSink receives events after they are written to the log, e.g. a kafka publisher.
type EventSink interface {
	PublishEvent(ctx context.Context, event Event) error
}

type EventLogger struct {
	logger zerolog.Logger
	sink   EventSink
}

func NewEventLogger(logger zerolog.Logger, sink EventSink) *EventLogger {
	return &EventLogger{logger: logger, sink: sink}
}

// Log writes the event through zerolog and forwards it to the sink, if any.
// Sink failures are logged and otherwise ignored.
func (l *EventLogger) Log(ctx context.Context, level zerolog.Level, eventType string, message string, fields map[string]any) {
	if l == nil {
		return
	}
	l.logger.WithLevel(level).Str("event", eventType).Fields(fields).Msg(message)

	if l.sink == nil || level < zerolog.GlobalLevel() {
		return
	}
	event := Event{
		Level:     level.String(),
		Type:      eventType,
		Message:   message,
		Context:   fields,
		Timestamp: time.Now().UTC(),
	}
	if err := l.sink.PublishEvent(ctx, event); err != nil {
		l.logger.Warn().Err(err).Str("event", eventType).Msg("failed to publish event")
	}
}

func (l *EventLogger) Info(ctx context.Context, eventType string, message string, fields map[string]any) {
	l.Log(ctx, zerolog.InfoLevel, eventType, message, fields)
}

func (l *EventLogger) Warn(ctx context.Context, eventType string, message string, fields map[string]any) {
	l.Log(ctx, zerolog.WarnLevel, eventType, message, fields)
}

func (l *EventLogger) Error(ctx context.Context, eventType string, message string, fields map[string]any) {
	l.Log(ctx, zerolog.ErrorLevel, eventType, message, fields)
}
