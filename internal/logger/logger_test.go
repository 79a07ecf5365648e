package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observe swaps the global logger for an in-memory one until the test ends.
// Tests using it must not run in parallel.
func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(level)

	original := Logger()
	SetLogger(zap.New(core).Sugar())

	t.Cleanup(func() {
		SetLogger(original)
	})

	return logs
}

// TestParseLogLevel tests level names accepted in the configuration file.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{input: "debug", expected: zapcore.DebugLevel, valid: true},
		{input: "info", expected: zapcore.InfoLevel, valid: true},
		{input: "WARN", expected: zapcore.WarnLevel, valid: true},
		{input: " error ", expected: zapcore.ErrorLevel, valid: true},
		{input: "fatal", expected: zapcore.FatalLevel, valid: true},
		{input: "", expected: zapcore.InfoLevel, valid: false},
		{input: "verbose", expected: zapcore.InfoLevel, valid: false},
		{input: "trace", expected: zapcore.InfoLevel, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, ok := ParseLogLevel(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.expected, level)
		})
	}
}

// TestNew tests that New honors the level it is given.
func TestNew(t *testing.T) {
	t.Parallel()

	warnLogger := New(zapcore.WarnLevel)
	require.NotNil(t, warnLogger)
	assert.False(t, warnLogger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, warnLogger.Desugar().Core().Enabled(zapcore.WarnLevel))

	defaultLogger := New(nil)
	assert.True(t, defaultLogger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, defaultLogger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

// TestSetLevel tests the global level switch that gates request dumps.
func TestSetLevel(t *testing.T) {
	original := Level()
	t.Cleanup(func() {
		SetLevel(original)
	})

	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, IsDebugLevel())

	SetLevel(zapcore.WarnLevel)
	assert.Equal(t, zapcore.WarnLevel, Level())
	assert.False(t, IsDebugLevel())
}

// TestWithKV tests that context fields reach every entry logged through the context.
func TestWithKV(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	ctx := WithKV(context.Background(), "attempt_id", "4b2c", "account", "gaben")
	ctx = WithKV(ctx, "stage", "key fetch")

	DebugKV(ctx, "Authentication state changed", "state", "key requested")
	Warnf(ctx, "Login was not completed: %s", "captcha")

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "Authentication state changed", entries[0].Message)
	assert.Equal(t, "4b2c", first["attempt_id"])
	assert.Equal(t, "gaben", first["account"])
	assert.Equal(t, "key fetch", first["stage"])
	assert.Equal(t, "key requested", first["state"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Login was not completed: captcha", entries[1].Message)
	assert.Equal(t, "4b2c", entries[1].ContextMap()["attempt_id"])
}

// TestWithKV_DoesNotLeak tests that fields stay on the derived context only.
func TestWithKV_DoesNotLeak(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	base := context.Background()
	_ = WithKV(base, "attempt_id", "4b2c")

	Info(base, "plain")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "attempt_id")
}

// TestLevelHelpers tests every level helper against an observed logger.
func TestLevelHelpers(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)
	ctx := context.Background()

	Debug(ctx, "d")
	Debugf(ctx, "d%d", 1)
	Info(ctx, "i")
	Infof(ctx, "i%d", 1)
	InfoKV(ctx, "ikv", "k", 1)
	Warn(ctx, "w")
	WarnKV(ctx, "wkv", "k", 1)
	Error(ctx, "e")
	Errorf(ctx, "e%d", 1)
	ErrorKV(ctx, "ekv", "k", 1)

	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.DebugLevel).Len())
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.InfoLevel).Len())
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("ekv").FilterField(zap.Int("k", 1)).Len())
}

// TestToContext tests that an explicit logger wins over the global one.
func TestToContext(t *testing.T) {
	t.Parallel()

	custom := New(zapcore.ErrorLevel)

	assert.Equal(t, custom, FromContext(ToContext(context.Background(), custom)))
	assert.Equal(t, Logger(), FromContext(context.Background()))
	assert.Equal(t, Logger(), FromContext(nil)) //nolint:staticcheck // A nil context falls back to the global logger.
}

// TestConcurrentContextLogging tests that attempts logging in parallel do not race.
func TestConcurrentContextLogging(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)

		go func(attempt int) {
			defer wg.Done()

			ctx := WithKV(context.Background(), "attempt", attempt)
			Infof(ctx, "attempt %d finished", attempt)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 20, logs.Len())
}
