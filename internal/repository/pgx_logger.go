package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("module", "repository").Str("component", "pgx").Logger()}
}

// Log implements tracelog.Logger. SQL text, arguments and durations are lifted
// into typed fields; whatever is left goes in as-is.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}
	if !event.Enabled() {
		return
	}

	rest := make(map[string]any, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case string:
			if k == "sql" {
				event = event.Str("sql", val)
				continue
			}
		case time.Duration:
			if k == "time" {
				event = event.Dur("took", val)
				continue
			}
		case error:
			if k == "err" {
				event = event.Err(val)
				continue
			}
		}
		if k == "args" && level > tracelog.LogLevelTrace {
			// bind arguments may carry personal data; only trace level sees them
			continue
		}
		rest[k] = v
	}
	if len(rest) > 0 {
		event = event.Fields(rest)
	}
	event.Msg(msg)
}
