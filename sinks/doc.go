// Package sinks adapts common logging backends to logcontent.Sink.
//
// Each adapter maps the five logcontent levels onto the backend's own
// levels; Trace falls back to the most verbose level the backend has.
package sinks
