package logcontent

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// levelTagged makes the level visible in the rendered text.
func levelTagged[T any]() Renderer[T] {
	return func(v T, level Level) string {
		return level.String() + ":" + Sprint[T]()(v, level)
	}
}

func TestResultConstructors(t *testing.T) {
	ok := Ok[int, string](1)
	assert.True(t, ok.IsOk())
	assert.Equal(t, 1, ok.Value())
	assert.Equal(t, "", ok.Err())

	failed := Fail[int]("bad")
	assert.False(t, failed.IsOk())
	assert.Equal(t, 0, failed.Value())
	assert.Equal(t, "bad", failed.Err())

	v, e, isOk := failed.Get()
	assert.Equal(t, 0, v)
	assert.Equal(t, "bad", e)
	assert.False(t, isOk)

	parsed := ResultOf(strconv.Atoi("42"))
	require.True(t, parsed.IsOk())
	assert.Equal(t, 42, parsed.Value())
	assert.NoError(t, parsed.Err())

	notParsed := ResultOf(strconv.Atoi("forty two"))
	require.False(t, notParsed.IsOk())
	assert.Error(t, notParsed.Err())
}

func TestResultPolicy(t *testing.T) {
	p := NewResultPolicy(levelTagged[int](), levelTagged[string]())

	t.Run("failure renders the error at error and warn only", func(t *testing.T) {
		r := Fail[int]("boom")
		for _, l := range Levels() {
			text, ok := p.Decide(r, l)
			switch l {
			case ErrorLevel, WarnLevel:
				require.True(t, ok, l.String())
				assert.Equal(t, l.String()+":boom", text)
			default:
				assert.False(t, ok, l.String())
				assert.Empty(t, text)
			}
		}
	})

	t.Run("success renders the value at info, debug and trace only", func(t *testing.T) {
		r := Ok[int, string](42)
		for _, l := range Levels() {
			text, ok := p.Decide(r, l)
			switch l {
			case InfoLevel, DebugLevel, TraceLevel:
				require.True(t, ok, l.String())
				assert.Equal(t, l.String()+":42", text)
			default:
				assert.False(t, ok, l.String())
				assert.Empty(t, text)
			}
		}
	})

	t.Run("invalid levels are silent", func(t *testing.T) {
		for _, r := range []Result[int, string]{Ok[int, string](1), Fail[int]("x")} {
			for _, l := range []Level{NoLevel, Level(99)} {
				_, ok := p.Decide(r, l)
				assert.False(t, ok)
			}
		}
	})

	t.Run("zero value is a failure", func(t *testing.T) {
		var r Result[int, string]
		text, ok := p.Decide(r, ErrorLevel)
		require.True(t, ok)
		assert.Equal(t, "error:", text)
	})
}

func TestFailurePolicy(t *testing.T) {
	// int has no renderer here: the success side is never touched
	p := NewFailurePolicy[int](ErrorText())

	failed := Fail[int](errors.New("disk full"))
	succeeded := Ok[int, error](7)

	for _, l := range Levels() {
		text, ok := p.Decide(failed, l)
		switch l {
		case ErrorLevel, WarnLevel:
			require.True(t, ok, l.String())
			assert.Equal(t, "disk full", text)
		default:
			assert.False(t, ok, l.String())
		}

		_, ok = p.Decide(succeeded, l)
		assert.False(t, ok, l.String())
	}
}

func TestResultPolicy_PanickingRenderer(t *testing.T) {
	p := NewResultPolicy(
		Renderer[int](func(int, Level) string { panic(errors.New("no digits")) }),
		Sprint[string](),
	)
	text, ok := p.Decide(Ok[int, string](1), InfoLevel)
	require.True(t, ok)
	assert.Equal(t, "value unrenderable: no digits", text)
}
