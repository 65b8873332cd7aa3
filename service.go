package logcontent

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/Station-Manager/utils"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultShutdownTimeout = time.Second

// Service is a Sink backed by zerolog. Lines go to a rolling log file,
// the console, and/or Writer depending on LoggingConfig.
type Service struct {
	WorkingDir    string
	LoggingConfig *types.LoggingConfig
	// FileName is the log file name without extension. Defaults to the
	// executable's name.
	FileName string
	// Writer, when set, receives every line in addition to the configured channels.
	Writer io.Writer

	logger        atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool
	closed        atomic.Bool
	initOnce      sync.Once
	initErr       error

	mu         sync.RWMutex
	activeOps  atomic.Int32
	fileWriter *lumberjack.Logger
}

var _ Sink = (*Service)(nil)

// Initialize builds the zerolog logger. It is safe to call more than once;
// only the first call does any work. It fails once the Service is closed.
func (s *Service) Initialize() error {
	const op errors.Op = "logcontent.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}
	if s.closed.Load() {
		return errors.New(op).Msg(errMsgClosed)
	}
	s.initOnce.Do(func() {
		s.initErr = s.initialize()
	})
	return s.initErr
}

func (s *Service) initialize() error {
	const op errors.Op = "logcontent.Service.initialize"
	if err := validateConfig(s.LoggingConfig); err != nil {
		return err
	}
	cfg := s.LoggingConfig

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgUnknownLevel)
	}

	writers, err := s.initializeWriters()
	if err != nil {
		return errors.New(op).Err(err).Msg("initializing writers")
	}
	if len(writers) == 0 {
		return errors.New(op).Msg(errMsgNoChannels)
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level)
	if cfg.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	if cfg.SkipFrameCount > 0 {
		logger = logger.With().CallerWithSkipFrameCount(cfg.SkipFrameCount).Logger()
	}

	s.logger.Store(&logger)
	s.isInitialized.Store(true)
	return nil
}

// Log writes msg at level. Lines are dropped before Initialize, after
// Close, and when the configured level filters them out.
func (s *Service) Log(level Level, msg string) {
	if s == nil || !s.isInitialized.Load() || !level.Valid() {
		return
	}

	s.activeOps.Add(1)
	defer s.activeOps.Add(-1)

	// Hold the read lock so Close cannot release the file writer mid-write
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Double-check after acquiring lock
	if !s.isInitialized.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}
	logger.WithLevel(level.ZerologLevel()).Msg(msg)
}

// Close waits for in-flight lines and releases the file writer. The wait,
// including any write still holding the sink, is bounded by
// ShutdownTimeoutMS; a write that outlives it keeps the file writer open.
// It's safe to call Close multiple times. A closed Service cannot be
// initialized again.
func (s *Service) Close() error {
	const op errors.Op = "logcontent.Service.Close"
	if s == nil || !s.isInitialized.CompareAndSwap(true, false) {
		return nil
	}
	s.closed.Store(true)

	timeout := defaultShutdownTimeout
	if s.LoggingConfig != nil && s.LoggingConfig.ShutdownTimeoutMS > 0 {
		timeout = time.Duration(s.LoggingConfig.ShutdownTimeoutMS) * time.Millisecond
	}
	deadline := time.Now().Add(timeout)

	timedOut := !s.waitIdle(deadline)

	if !s.lockUntil(deadline) {
		// a write is stuck in a writer; it keeps the file writer
		s.warnShutdownTimeout(nil, timeout)
		s.logger.Store(nil)
		return nil
	}
	defer s.mu.Unlock()

	if timedOut {
		s.warnShutdownTimeout(s.logger.Load(), timeout)
	}

	s.logger.Store(nil)
	if s.fileWriter != nil {
		err := s.fileWriter.Close()
		s.fileWriter = nil
		if err != nil {
			return errors.New(op).Err(err).Msg("closing log file")
		}
	}
	return nil
}

// waitIdle polls until no line is in flight, giving up at deadline.
func (s *Service) waitIdle(deadline time.Time) bool {
	for s.activeOps.Load() > 0 {
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
	return true
}

// lockUntil takes the write lock, giving up at deadline.
func (s *Service) lockUntil(deadline time.Time) bool {
	for {
		if s.mu.TryLock() {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

// warnShutdownTimeout reports lines still in flight at shutdown. With no
// usable logger the warning goes to stderr.
func (s *Service) warnShutdownTimeout(logger *zerolog.Logger, timeout time.Duration) {
	if s.LoggingConfig == nil || !s.LoggingConfig.ShutdownTimeoutWarning {
		return
	}
	active := s.activeOps.Load()
	if logger == nil {
		_, _ = fmt.Fprintf(os.Stderr, "WARN: %s active_operations=%d timeout=%s\n", msgShutdownTimeout, active, timeout)
		return
	}
	logger.Warn().
		Int32("active_operations", active).
		Dur("timeout", timeout).
		Msg(msgShutdownTimeout)
}

// ZerologSink adapts an existing zerolog.Logger to Sink.
type ZerologSink struct {
	logger zerolog.Logger
}

func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

func (z *ZerologSink) Log(level Level, msg string) {
	if z == nil || !level.Valid() {
		return
	}
	z.logger.WithLevel(level.ZerologLevel()).Msg(msg)
}

func (s *Service) initializeRollingFileLogger(dir string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, s.logFileName()+".log"),
		MaxBackups: s.LoggingConfig.LogFileMaxBackups,
		MaxAge:     s.LoggingConfig.LogFileMaxAgeDays,
		MaxSize:    s.LoggingConfig.LogFileMaxSizeMB,
		Compress:   s.LoggingConfig.LogFileCompress,
	}
}

// logFileName is FileName, else the executable's name, else "content".
func (s *Service) logFileName() string {
	if s.FileName != emptyString {
		return s.FileName
	}
	exeName, err := utils.ExecName(true)
	if err != nil || exeName == emptyString {
		return defaultFileName
	}
	return exeName
}

func (s *Service) initializeWriters() ([]io.Writer, error) {
	const op errors.Op = "logcontent.Service.initializeWriters"
	cfg := s.LoggingConfig
	var writers []io.Writer

	if cfg.FileLogging {
		if s.WorkingDir == emptyString {
			return nil, errors.New(op).Msg(errMsgWorkingDir)
		}
		dir := filepath.Join(s.WorkingDir, cfg.RelLogFileDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, errors.New(op).Err(err).Msg("failed to create logs directory")
		}
		s.fileWriter = s.initializeRollingFileLogger(dir)
		writers = append(writers, s.fileWriter)
	}
	if cfg.ConsoleLogging {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    cfg.ConsoleNoColor,
			TimeFormat: cfg.ConsoleTimeFormat,
		})
	}
	if s.Writer != nil {
		writers = append(writers, s.Writer)
	}
	return writers, nil
}
