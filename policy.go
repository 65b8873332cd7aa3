package logcontent

// Policy decides, for a value of shape V and a level, whether anything is
// logged and what. A false result means silent; it is never an error.
type Policy[V any] interface {
	Decide(v V, level Level) (string, bool)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc[V any] func(v V, level Level) (string, bool)

func (f PolicyFunc[V]) Decide(v V, level Level) (string, bool) {
	return f(v, level)
}

// Content is implemented by types that carry their own decision table.
type Content interface {
	CheckContent(level Level) (string, bool)
}

// SelfPolicy delegates to the value's own CheckContent.
type SelfPolicy[V Content] struct{}

func (SelfPolicy[V]) Decide(v V, level Level) (string, bool) {
	return v.CheckContent(level)
}

// Always renders the value at every valid level.
func Always[V any](r Renderer[V]) Policy[V] {
	return PolicyFunc[V](func(v V, level Level) (string, bool) {
		if !level.Valid() {
			return emptyString, false
		}
		return Render(r, v, level), true
	})
}
