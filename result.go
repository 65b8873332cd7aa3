package logcontent

// Result holds either a success value or a failure value.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Fail returns a failed Result.
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// ResultOf converts a Go (value, error) pair. A non-nil err is a failure.
func ResultOf[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool { return r.ok }

// Value returns the success value, or the zero T on failure.
func (r Result[T, E]) Value() T { return r.value }

// Err returns the failure value, or the zero E on success.
func (r Result[T, E]) Err() E { return r.err }

// Get returns both payloads and whether the Result is a success.
func (r Result[T, E]) Get() (T, E, bool) { return r.value, r.err, r.ok }

// ResultPolicy logs the failure at Error and Warn and the success at Info,
// Debug and Trace.
type ResultPolicy[T, E any] struct {
	Ok  Renderer[T]
	Err Renderer[E]
}

func NewResultPolicy[T, E any](ok Renderer[T], err Renderer[E]) ResultPolicy[T, E] {
	return ResultPolicy[T, E]{Ok: ok, Err: err}
}

func (p ResultPolicy[T, E]) Decide(r Result[T, E], level Level) (string, bool) {
	switch level {
	case ErrorLevel, WarnLevel:
		if !r.ok {
			return Render(p.Err, r.err, level), true
		}
	case InfoLevel, DebugLevel, TraceLevel:
		if r.ok {
			return Render(p.Ok, r.value, level), true
		}
	}
	return emptyString, false
}

// FailurePolicy logs the failure at Error and Warn. Successes are never
// logged.
type FailurePolicy[T, E any] struct {
	Err Renderer[E]
}

func NewFailurePolicy[T, E any](err Renderer[E]) FailurePolicy[T, E] {
	return FailurePolicy[T, E]{Err: err}
}

func (p FailurePolicy[T, E]) Decide(r Result[T, E], level Level) (string, bool) {
	switch level {
	case ErrorLevel, WarnLevel:
		if !r.ok {
			return Render(p.Err, r.err, level), true
		}
	case InfoLevel, DebugLevel, TraceLevel:
	}
	return emptyString, false
}
