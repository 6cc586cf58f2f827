// SPDX-License-Identifier: MIT

package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a *zap.Logger to Logger through the sugared API.
// Level filtering is left to the zap core.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger wraps logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

// NewZapDevelopment builds a console zap logger at level.
func NewZapDevelopment(level LogLevel) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(logger), nil
}

func (l *ZapLogger) Debug(format string, v ...any) { l.sugar.Debugf(format, v...) }

func (l *ZapLogger) Info(format string, v ...any) { l.sugar.Infof(format, v...) }

func (l *ZapLogger) Warn(format string, v ...any) { l.sugar.Warnf(format, v...) }

func (l *ZapLogger) Error(format string, v ...any) { l.sugar.Errorf(format, v...) }

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// zapLevel maps LogLevel to zapcore.Level. LogLevelNone maps above Fatal.
func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelNone:
		return zapcore.FatalLevel + 1
	default:
		return zap.InfoLevel
	}
}
