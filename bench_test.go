package logcontent

import (
	"io"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// newBenchSink builds a zerolog sink on a discard writer at the given level.
func newBenchSink(level zerolog.Level) *ZerologSink {
	return NewZerologSink(zerolog.New(io.Discard).Level(level))
}

func BenchmarkLog_SilentDecision(b *testing.B) {
	sink := newBenchSink(zerolog.TraceLevel)
	policy := intResultPolicy()
	v := Ok[int, error](42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Log[Result[int, error]](sink, policy, v).Error("failed").Value()
	}
}

func BenchmarkLog_Emitting(b *testing.B) {
	sink := newBenchSink(zerolog.TraceLevel)
	policy := intResultPolicy()
	v := Ok[int, error](42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Log[Result[int, error]](sink, policy, v).Info("parsed").Value()
	}
}

func BenchmarkLog_FilteredBySink(b *testing.B) {
	sink := newBenchSink(zerolog.ErrorLevel)
	policy := intResultPolicy()
	v := Ok[int, error](42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Log[Result[int, error]](sink, policy, v).Info("parsed").Value()
	}
}

func BenchmarkErrorText_DetailedChain(b *testing.B) {
	err := smerrors.New("op_0").Msg("root cause message")
	for i := 0; i < 5; i++ {
		err = smerrors.New("op_n").Err(err).Msg("wrapped message")
	}
	r := ErrorText()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r(err, DebugLevel)
	}
}

func BenchmarkDump_Struct(b *testing.B) {
	p := newProduct()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dumpString(p)
	}
}

