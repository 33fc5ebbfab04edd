package engine

import (
	"context"
	"log/slog"
)

// LoggingObserver logs query lifecycle events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer. A nil logger uses slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface.
// Start events are logged at debug level, end events at info.
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("event", string(event.Type)),
		slog.String("query_id", event.QueryID),
		slog.Uint64("seq", event.Seq),
		slog.String("op", string(event.Op)),
	}

	if event.Type == EventQueryEnd {
		level = slog.LevelInfo
		attrs = append(attrs,
			slog.Int("rows", event.Rows),
			slog.Duration("duration", event.Duration),
		)
	}
	if event.Data != nil {
		attrs = append(attrs, slog.Any("data", event.Data))
	}

	lo.logger.LogAttrs(context.Background(), level, "query_lifecycle", attrs...)
}
