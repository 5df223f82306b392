// Package logging builds the structured loggers used by clients, assertions and the suite.
package logging

import (
	"fmt"

	"github.com/coursesqa/courses-api-tests/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for the configured level and format ("json" or "console").
func New(cfg config.Log) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Component returns a child logger for one part of the harness, e.g. Component(l, "courses")
// logs as "courses".
func Component(base *zap.Logger, name string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(name)
}

// PrintfLogger adapts a zap logger to the Printf-style logger interface of the test
// framework. Messages are logged at debug level.
type PrintfLogger struct {
	sugar *zap.SugaredLogger
}

func NewPrintfLogger(l *zap.Logger) PrintfLogger {
	return PrintfLogger{sugar: l.Sugar()}
}

func (l PrintfLogger) Printf(message string, args ...interface{}) {
	l.sugar.Debugf(message, args...)
}
