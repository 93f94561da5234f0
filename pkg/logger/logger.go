package logger

import (
	"errors"
	"io"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"
)

func NewAppLogger() (*zap.SugaredLogger, error) {
	return NewLogger("info", false)
}

// NewLogger builds a JSON logger, or a development console logger when
// debug is set.
func NewLogger(level string, debug bool) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

// Writer logs every line written to it at lvl. It is used as the output
// of emitters so the max listeners warning lands in the application log.
func Writer(l *zap.SugaredLogger, lvl zapcore.Level) io.WriteCloser {
	return &zapio.Writer{Log: l.Desugar(), Level: lvl}
}

// Sync flushes l, ignoring the error returned when stderr is a terminal.
func Sync(l *zap.SugaredLogger) {
	if err := l.Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		l.Warnf("cannot sync logger: %v", err)
	}
}
