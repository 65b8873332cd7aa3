package logcontent

// LogAt asks policy whether v has anything to say at level and, if so,
// sends "msg: text" to sink. It always returns v unchanged.
func LogAt[V any](sink Sink, policy Policy[V], v V, level Level, msg string) V {
	if sink == nil || policy == nil {
		return v
	}
	if text, ok := decide(policy, v, level); ok {
		sink.Log(level, msg+separator+text)
	}
	return v
}

// decide treats a panicking policy as silent.
func decide[V any](policy Policy[V], v V, level Level) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = emptyString, false
		}
	}()
	return policy.Decide(v, level)
}

// Logged threads a value through a chain of logging calls:
//
//	v := logcontent.Log(sink, policy, parse(s)).
//		Info("parsed").
//		Error("parse failed").
//		Value()
type Logged[V any] struct {
	value  V
	sink   Sink
	policy Policy[V]
}

// Log starts a chain over v.
func Log[V any](sink Sink, policy Policy[V], v V) Logged[V] {
	return Logged[V]{value: v, sink: sink, policy: policy}
}

// At logs at an arbitrary level.
func (l Logged[V]) At(level Level, msg string) Logged[V] {
	l.value = LogAt(l.sink, l.policy, l.value, level, msg)
	return l
}

func (l Logged[V]) Error(msg string) Logged[V] { return l.At(ErrorLevel, msg) }
func (l Logged[V]) Warn(msg string) Logged[V]  { return l.At(WarnLevel, msg) }
func (l Logged[V]) Info(msg string) Logged[V]  { return l.At(InfoLevel, msg) }
func (l Logged[V]) Debug(msg string) Logged[V] { return l.At(DebugLevel, msg) }
func (l Logged[V]) Trace(msg string) Logged[V] { return l.At(TraceLevel, msg) }

// Value ends the chain and returns the original value.
func (l Logged[V]) Value() V {
	return l.value
}

// Logger binds a sink and a policy for repeated use with one value shape.
type Logger[V any] struct {
	sink   Sink
	policy Policy[V]
}

func NewLogger[V any](sink Sink, policy Policy[V]) *Logger[V] {
	return &Logger[V]{sink: sink, policy: policy}
}

// Of starts a chain over v.
func (l *Logger[V]) Of(v V) Logged[V] {
	if l == nil {
		return Logged[V]{value: v}
	}
	return Log(l.sink, l.policy, v)
}

// At logs v once and returns it.
func (l *Logger[V]) At(v V, level Level, msg string) V {
	if l == nil {
		return v
	}
	return LogAt(l.sink, l.policy, v, level, msg)
}
