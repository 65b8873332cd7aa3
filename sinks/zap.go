package sinks

import (
	"github.com/Station-Manager/logcontent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap writes to a zap.Logger. zap has no trace level, so Trace is logged
// at Debug.
type Zap struct {
	logger *zap.Logger
}

var _ logcontent.Sink = (*Zap)(nil)

func NewZap(logger *zap.Logger) *Zap {
	return &Zap{logger: logger}
}

func (z *Zap) Log(level logcontent.Level, msg string) {
	if z == nil || z.logger == nil {
		return
	}
	lvl, ok := zapLevel(level)
	if !ok {
		return
	}
	if ce := z.logger.Check(lvl, msg); ce != nil {
		ce.Write()
	}
}

func zapLevel(level logcontent.Level) (zapcore.Level, bool) {
	switch level {
	case logcontent.ErrorLevel:
		return zapcore.ErrorLevel, true
	case logcontent.WarnLevel:
		return zapcore.WarnLevel, true
	case logcontent.InfoLevel:
		return zapcore.InfoLevel, true
	case logcontent.DebugLevel, logcontent.TraceLevel:
		return zapcore.DebugLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}
