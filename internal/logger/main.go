// Package logger sets up the global zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter splits log output by level. See WriteLevel about the separation.
type LevelWriter struct {
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel writes p to the writer responsible for level l.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	// disabled logging
	if l == zerolog.Disabled {
		return 0, nil
	}

	switch {
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel: // error and fatal panic go to error
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter // debug and info go to info
	}

	return w.Write(p) //nolint:wrapcheck
}

// Write sends level-less events to the info writer.
func (lw *LevelWriter) Write(p []byte) (int, error) {
	return lw.InfoWriter.Write(p) //nolint:wrapcheck
}

// Init the zerolog logger.
// Depending on the config it enables the console logger, the file logger,
// both or none. Without any enabled logger all events are dropped.
func Init(cfg Log) error {
	var (
		logLevel, err = zerolog.ParseLevel(cfg.LogLevel)
		writers       []io.Writer
		stack         bool
	)

	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	if cfg.File.Enabled && cfg.File.Path == "" {
		return ErrFilePathIsEmpty
	}

	// use zerolog stack marshal func if trace level is set
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	ph := NewPrometheusHook(cfg.ServiceName)

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		fw, err := newRollingFile(cfg)
		if err != nil {
			return err
		}

		writers = append(writers, fw)
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	mw := zerolog.MultiLevelWriter(writers...)
	ctx := zerolog.New(mw).Hook(ph).With().Timestamp().Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		log.Logger = ctx.Stack().Caller().Logger()
	case cfg.ReportCaller:
		log.Logger = ctx.Caller().Logger()
	case stack:
		log.Logger = ctx.Stack().Logger()
	default:
		log.Logger = ctx.Logger()
	}

	return nil
}

// newRollingFile uses LevelWriter and lumberjack to create file based logs.
func newRollingFile(cfg Log) (io.Writer, error) {
	if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint: mnd
		return nil, errors.Wrapf(err, "can't create log directory %s", cfg.File.Path)
	}

	roll := func(name string, maxSize, maxAge, maxBackups int) io.Writer {
		return &lumberjack.Logger{
			Filename:   path.Join(cfg.File.Path, name),
			MaxSize:    maxSize,
			MaxAge:     maxAge,
			MaxBackups: maxBackups,
			LocalTime:  false,
			Compress:   false,
		}
	}

	f := cfg.File

	return &LevelWriter{
		ErrorWriter: roll(f.ErrorLog, f.ErrorMaxSize, f.ErrorMaxAge, f.ErrorMaxBackups),
		InfoWriter:  roll(f.InfoLog, f.InfoMaxSize, f.InfoMaxAge, f.InfoMaxBackups),
		TraceWriter: roll(f.TraceLog, f.TraceMaxSize, f.TraceMaxAge, f.TraceMaxBackups),
		WarnWriter:  roll(f.WarnLog, f.WarnMaxSize, f.WarnMaxAge, f.WarnMaxBackups),
	}, nil
}

// NewConsoleWriter creates a console writer sending every level to stderr,
// either as JSON lines or through zerolog.ConsoleWriter.
func NewConsoleWriter(cfg Log) io.Writer {
	var out io.Writer = os.Stderr

	if cfg.Console.UseConsoleWriter {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    cfg.Console.NoColor,
			TimeFormat: zerolog.TimeFieldFormat,
		}
	}

	return &LevelWriter{
		ErrorWriter: out,
		InfoWriter:  out,
		TraceWriter: out,
		WarnWriter:  out,
	}
}
