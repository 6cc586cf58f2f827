// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LogLevelDebug,
		"INFO":    LogLevelInfo,
		"":        LogLevelInfo,
		"warning": LogLevelWarn,
		" error ": LogLevelError,
		"disable": LogLevelNone,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "UNKNOWN(42)", LogLevel(42).String())
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, NoOpLogger{}, OrNop(nil))

	l := NewGologLogger(golog.New())
	assert.Same(t, l, OrNop(l))
}

func TestGologLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	glogger := golog.New()
	glogger.SetOutput(&buf)
	glogger.SetTimeFormat("")

	logger := NewGologLogger(glogger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())

	logger.SetLevel(LogLevelWarn)
	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("edge %s rejected", "1-2")
	logger.Error("boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "edge 1-2 rejected")
	assert.Contains(t, out, "boom")

	buf.Reset()
	logger.SetLevel(LogLevelNone)
	logger.Error("silenced")
	assert.Empty(t, buf.String())
}

func TestZapLogger_Records(t *testing.T) {
	obsCore, logs := observer.New(zapcore.InfoLevel)
	logger := NewZapLogger(zap.New(obsCore))

	logger.Debug("dropped")
	logger.Info("vertex %d added", 3)
	logger.Warn("duplicate id %d", 3)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "vertex 3 added", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.NoError(t, logger.Sync())
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, zapLevel(LogLevelDebug))
	assert.Equal(t, zap.InfoLevel, zapLevel(LogLevelInfo))
	assert.False(t, zap.NewAtomicLevelAt(zapLevel(LogLevelNone)).Enabled(zapcore.FatalLevel))
}
