// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// LogLevel orders log records by severity.
type LogLevel int

const (
	// LogLevelDebug for detailed tracing of mutations and searches
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for verbose-mode mutation messages
	LogLevelInfo
	// LogLevelWarn for rejected operations
	LogLevelWarn
	// LogLevelError for failures that need attention
	LogLevelError
	// LogLevelNone disables all logging
	LogLevelNone
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("log: unknown level")

// Logger is the leveled logging surface consumed by graphz packages.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

var _ Logger = NoOpLogger{}

func (NoOpLogger) Debug(format string, v ...any) {}

func (NoOpLogger) Info(format string, v ...any) {}

func (NoOpLogger) Warn(format string, v ...any) {}

func (NoOpLogger) Error(format string, v ...any) {}

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelNone:
		return "NONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", l)
	}
}

// ParseLevel maps a case-insensitive level name to a LogLevel.
// "warning" and "disable" are accepted as aliases.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "none", "disable":
		return LogLevelNone, nil
	default:
		return LogLevelNone, errors.Wrapf(ErrUnknownLevel, "%q", s)
	}
}

// OrNop returns l, or NoOpLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NoOpLogger{}
	}
	return l
}
