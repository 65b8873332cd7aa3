package sinks

import (
	"github.com/Station-Manager/logcontent"
	"github.com/go-logr/logr"
)

// Logr writes to a logr.Logger.
//
// Levels are mapped as follows:
//   - Error → Logger.Error with a nil error
//   - Warn, Info → V(0)
//   - Debug → V(1)
//   - Trace → V(2)
//
// logr has no warn level; warnings carry a "level"="warn" key so they can
// still be told apart from info lines.
type Logr struct {
	logger logr.Logger
}

var _ logcontent.Sink = (*Logr)(nil)

func NewLogr(logger logr.Logger) *Logr {
	return &Logr{logger: logger}
}

func (l *Logr) Log(level logcontent.Level, msg string) {
	if l == nil {
		return
	}
	switch level {
	case logcontent.ErrorLevel:
		l.logger.Error(nil, msg)
	case logcontent.WarnLevel:
		l.logger.V(0).Info(msg, "level", logcontent.WarnLevel.String())
	case logcontent.InfoLevel:
		l.logger.V(0).Info(msg)
	case logcontent.DebugLevel:
		l.logger.V(1).Info(msg)
	case logcontent.TraceLevel:
		l.logger.V(2).Info(msg)
	}
}
