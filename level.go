package logcontent

import (
	"strings"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// Level is the severity a value is logged at. The set is closed: policies
// switch over all five values and treat anything else as silent.
type Level uint8

const (
	// NoLevel is the zero value and never triggers rendering.
	NoLevel Level = iota
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

var levels = [...]Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}

// Levels returns every severity, least verbose first.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// Valid reports whether l is one of the five severities.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	default:
		return emptyString
	}
}

// ZerologLevel maps l onto the zerolog level of the same name.
func (l Level) ZerologLevel() zerolog.Level {
	switch l {
	case ErrorLevel:
		return zerolog.ErrorLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case TraceLevel:
		return zerolog.TraceLevel
	default:
		return zerolog.NoLevel
	}
}

// ParseLevel parses a case-insensitive level name. "warning" is accepted
// as an alias of "warn".
func ParseLevel(s string) (Level, error) {
	const op errors.Op = "logcontent.ParseLevel"
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	}
	return NoLevel, errors.New(op).Msg(errMsgUnknownLevel + " " + s)
}
