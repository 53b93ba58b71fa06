package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a minimal printf-style logger used by the SDK.
//
// Implement this interface to plug in your own logging, or wrap an existing zap logger with Wrap.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Level controls what gets written by ZapLogger.
//
// The ordering is: Debug < Info < Warn < Error < Off.
// Any message below the configured level is ignored.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		// Above fatal: nothing the SDK logs is enabled.
		return zapcore.FatalLevel + 1
	}
}

// ZapLogger is the default Logger, backed by zap.
type ZapLogger struct {
	s     *zap.SugaredLogger
	level zap.AtomicLevel
}

// NewLogger writes console-encoded entries to w (stderr when nil).
func NewLogger(w io.Writer, level Level) *ZapLogger {
	if w == nil {
		w = os.Stderr
	}
	atom := zap.NewAtomicLevelAt(level.zapLevel())

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), atom)
	return &ZapLogger{
		s:     zap.New(core).Named("MoIP").Sugar(),
		level: atom,
	}
}

func NewDefault() *ZapLogger {
	return NewLogger(os.Stderr, LevelInfo)
}

// Wrap adapts an existing zap logger. Its level is governed by the caller's core, so
// SetLevel can only raise the threshold further.
func Wrap(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	atom := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core := l.Core()
	return &ZapLogger{
		s:     zap.New(&levelCore{Core: core, level: atom}).Sugar(),
		level: atom,
	}
}

func (z *ZapLogger) SetLevel(level Level) {
	if z == nil {
		return
	}
	z.level.SetLevel(level.zapLevel())
}

func (z *ZapLogger) Debugf(format string, args ...any) {
	if z == nil {
		return
	}
	z.s.Debugf(format, args...)
}

func (z *ZapLogger) Infof(format string, args ...any) {
	if z == nil {
		return
	}
	z.s.Infof(format, args...)
}

func (z *ZapLogger) Warnf(format string, args ...any) {
	if z == nil {
		return
	}
	z.s.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(format string, args ...any) {
	if z == nil {
		return
	}
	z.s.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	if z == nil {
		return nil
	}
	return z.s.Sync()
}

// levelCore gates a foreign core with our own atomic level.
type levelCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c *levelCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), level: c.level}
}

func (c *levelCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.level.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
