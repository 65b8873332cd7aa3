package logcontent

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionConstructors(t *testing.T) {
	s := Some("x")
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.True(t, s.IsSome())
	assert.Equal(t, "x", s.OrElse("y"))

	n := None[string]()
	assert.False(t, n.IsSome())
	assert.Equal(t, "y", n.OrElse("y"))

	assert.True(t, OptionOf(1, true).IsSome())
	assert.False(t, OptionOf(1, false).IsSome())

	i := 5
	assert.Equal(t, Some(5), FromPtr(&i))
	assert.Equal(t, None[int](), FromPtr[int](nil))
}

func TestOptionPolicy(t *testing.T) {
	p := NewOptionPolicy(levelTagged[string]())

	t.Run("absent emits None at error and warn only", func(t *testing.T) {
		for _, l := range Levels() {
			text, ok := p.Decide(None[string](), l)
			switch l {
			case ErrorLevel, WarnLevel:
				require.True(t, ok, l.String())
				assert.Equal(t, "None", text)
			default:
				assert.False(t, ok, l.String())
				assert.Empty(t, text)
			}
		}
	})

	t.Run("present renders at info, debug and trace only", func(t *testing.T) {
		for _, l := range Levels() {
			text, ok := p.Decide(Some("v"), l)
			switch l {
			case InfoLevel, DebugLevel, TraceLevel:
				require.True(t, ok, l.String())
				assert.Equal(t, l.String()+":v", text)
			default:
				assert.False(t, ok, l.String())
				assert.Empty(t, text)
			}
		}
	})

	t.Run("invalid levels are silent", func(t *testing.T) {
		_, ok := p.Decide(None[string](), NoLevel)
		assert.False(t, ok)
		_, ok = p.Decide(Some("v"), Level(7))
		assert.False(t, ok)
	})
}

func TestAbsencePolicy(t *testing.T) {
	type opaque struct{ ch chan int }
	p := NewAbsencePolicy[opaque]()

	for _, l := range Levels() {
		text, ok := p.Decide(None[opaque](), l)
		switch l {
		case ErrorLevel, WarnLevel:
			require.True(t, ok, l.String())
			assert.Equal(t, NoneText, text)
		default:
			assert.False(t, ok, l.String())
		}

		_, ok = p.Decide(Some(opaque{}), l)
		assert.False(t, ok, l.String())
	}
}

func TestOptionPolicy_Env(t *testing.T) {
	t.Setenv("LOGCONTENT_PACKAGE", "logging_content")
	sink := &recordingSink{}
	p := NewOptionPolicy(Sprint[string]())

	_ = Log(sink, p, OptionOf(os.LookupEnv("LOGCONTENT_PACKAGE"))).
		Info("loaded package name").
		Warn("package name not present")
	_ = Log(sink, p, OptionOf(os.LookupEnv("LOGCONTENT_SURELY_UNSET_DIR"))).
		Info("config dir loaded from env").
		Warn("LOGCONTENT_SURELY_UNSET_DIR not present")

	assert.Equal(t, []entry{
		{InfoLevel, "loaded package name: logging_content"},
		{WarnLevel, "LOGCONTENT_SURELY_UNSET_DIR not present: None"},
	}, sink.entries)
}
