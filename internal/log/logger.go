package log

import (
	"io"
	"os"
	"time"

	config "github.com/integra/explorer/configs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const DefaultServiceName = "integra-explorer"

// InitLogger overrides the zerolog global logger.
func InitLogger() {
	log.Logger = NewLogger("default")
}

// NewLogger returns a logger tagged with the service and the given component.
func NewLogger(component string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(parseLevel(config.Cfg.Log.Level))
	return newLogger(output(config.Cfg.Log.Prettify), serviceName(), component)
}

// NewEventsLogger builds the event logger for search and export events.
// Events are forwarded to sink when one is given.
func NewEventsLogger(sink EventSink) *EventLogger {
	return NewEventLogger(NewLogger("events"), sink)
}

func newLogger(w io.Writer, service string, component string) zerolog.Logger {
	return zerolog.New(w).With().
		Timestamp().
		Str("service", service).
		Str("component", component).
		Caller().
		Logger()
}

// unknown or empty levels fall back to warn
func parseLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(value)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

func output(prettify bool) io.Writer {
	if prettify {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return os.Stderr
}

func serviceName() string {
	if config.Cfg.Tracing.ServiceName != "" {
		return config.Cfg.Tracing.ServiceName
	}
	return DefaultServiceName
}
