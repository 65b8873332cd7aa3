package logcontent

import (
	"fmt"
)

// Renderer turns a payload into text for the given level. Implementations
// must not fail: anything that goes wrong belongs in the returned string.
type Renderer[T any] func(v T, level Level) string

// Displayer is implemented by payload types that render themselves.
type Displayer interface {
	LogDisplay(level Level) string
}

// Display adapts a Displayer type to a Renderer.
func Display[T Displayer]() Renderer[T] {
	return func(v T, level Level) string {
		return v.LogDisplay(level)
	}
}

// Render calls r and recovers from a panicking renderer, returning a
// description of the failure instead.
func Render[T any](r Renderer[T], v T, level Level) (out string) {
	if r == nil {
		return unrenderablePrefix + "no renderer"
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = fmt.Sprintf("%s%v", unrenderablePrefix, rec)
		}
	}()
	return r(v, level)
}

// Sprint renders with the %v verb at every level.
func Sprint[T any]() Renderer[T] {
	return func(v T, _ Level) string {
		return fmt.Sprint(v)
	}
}

// Stringer renders with the value's String method.
func Stringer[T fmt.Stringer]() Renderer[T] {
	return func(v T, _ Level) string {
		return v.String()
	}
}

// Verbose uses compact at Error, Warn and Info and a full field dump (see
// Dump) at Debug and Trace.
func Verbose[T any](compact Renderer[T]) Renderer[T] {
	return func(v T, level Level) string {
		switch level {
		case DebugLevel, TraceLevel:
			return dumpString(v)
		default:
			return Render(compact, v, level)
		}
	}
}
