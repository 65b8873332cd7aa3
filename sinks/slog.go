package sinks

import (
	"context"
	"log/slog"

	"github.com/Station-Manager/logcontent"
)

// LevelTrace is the slog level used for logcontent.TraceLevel.
const LevelTrace = slog.LevelDebug - 4

// Slog writes to a slog.Logger.
type Slog struct {
	logger *slog.Logger
}

var _ logcontent.Sink = (*Slog)(nil)

func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{logger: logger}
}

func (s *Slog) Log(level logcontent.Level, msg string) {
	if s == nil || s.logger == nil {
		return
	}
	var lvl slog.Level
	switch level {
	case logcontent.ErrorLevel:
		lvl = slog.LevelError
	case logcontent.WarnLevel:
		lvl = slog.LevelWarn
	case logcontent.InfoLevel:
		lvl = slog.LevelInfo
	case logcontent.DebugLevel:
		lvl = slog.LevelDebug
	case logcontent.TraceLevel:
		lvl = LevelTrace
	default:
		return
	}
	s.logger.Log(context.Background(), lvl, msg)
}
