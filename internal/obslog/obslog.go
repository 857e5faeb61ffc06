// Package obslog provides a structured-logging wrapper around
// go.uber.org/zap for diagnostic traces. Neither the reasoning engine nor
// cmd/qualra calls it: library code is silent and command results are plain
// fmt output in cmd/qualra.
package obslog

import (
	"go.uber.org/zap"
)

// Logger wraps a zap.SugaredLogger, defaulting to a no-op so that library
// callers never pay for logging they didn't ask for.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a Logger. verbose selects a human-friendly development
// encoder at debug level; otherwise an info-level production encoder is
// used.
func New(verbose bool) (*Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: base.Sugar()}, nil
}

// Noop returns a Logger that discards everything, for callers that never
// want diagnostic output (the default for library use of this package).
func Noop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(template string, args ...interface{}) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Debugf(template, args...)
}

// Infof logs a formatted info-level message.
func (l *Logger) Infof(template string, args ...interface{}) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Infof(template, args...)
}

// Warnf logs a formatted warn-level message.
func (l *Logger) Warnf(template string, args ...interface{}) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Warnf(template, args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil || l.sugar == nil {
		return nil
	}
	return l.sugar.Sync()
}
