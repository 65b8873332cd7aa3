package logcontent

// Sink performs the actual emission of a formatted line. It must accept
// all five levels and be safe for whatever concurrency its callers use.
type Sink interface {
	Log(level Level, msg string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(level Level, msg string)

func (f SinkFunc) Log(level Level, msg string) {
	f(level, msg)
}

// Discard is a Sink that drops everything.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Log(Level, string) {}
