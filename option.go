package logcontent

// Option holds a value that may be absent.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf converts a comma-ok pair, e.g. the result of os.LookupEnv.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool { return o.some }

func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// OrElse returns the value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// OptionPolicy logs "None" at Error and Warn when the value is absent and
// the value itself at Info, Debug and Trace when present.
type OptionPolicy[T any] struct {
	Some Renderer[T]
}

func NewOptionPolicy[T any](some Renderer[T]) OptionPolicy[T] {
	return OptionPolicy[T]{Some: some}
}

func (p OptionPolicy[T]) Decide(o Option[T], level Level) (string, bool) {
	switch level {
	case ErrorLevel, WarnLevel:
		if !o.some {
			return NoneText, true
		}
	case InfoLevel, DebugLevel, TraceLevel:
		if o.some {
			return Render(p.Some, o.value, level), true
		}
	}
	return emptyString, false
}

// AbsencePolicy logs "None" at Error and Warn when the value is absent and
// nothing otherwise. Use it for payloads that have no renderer.
type AbsencePolicy[T any] struct{}

func NewAbsencePolicy[T any]() AbsencePolicy[T] {
	return AbsencePolicy[T]{}
}

func (AbsencePolicy[T]) Decide(o Option[T], level Level) (string, bool) {
	switch level {
	case ErrorLevel, WarnLevel:
		if !o.some {
			return NoneText, true
		}
	case InfoLevel, DebugLevel, TraceLevel:
	}
	return emptyString, false
}
