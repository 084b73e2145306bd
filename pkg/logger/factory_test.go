package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formfield/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("cli")))
		log.Info("msg")
		assert.Equal(t, "cli", decode(t, buf)["component"])
	})

	t.Run("context value", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("run_id", key{}))

		ctx := context.WithValue(context.Background(), key{}, "r-1")
		log.InfoContext(ctx, "with id")
		assert.Equal(t, "r-1", decode(t, buf)["run_id"])

		buf.Reset()
		log.InfoContext(context.Background(), "without id")
		_, ok := decode(t, buf)["run_id"]
		assert.False(t, ok)
	})

	t.Run("context extractors survive WithAttrs and WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(context.Context) (slog.Attr, bool) {
				return slog.String("extra", "yes"), true
			}),
		)
		log.With("a", 1).WithGroup("g").Info("msg")
		entry := decode(t, buf)
		assert.EqualValues(t, 1, entry["a"])
		group, ok := entry["g"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "yes", group["extra"])
	})
}

func TestWithLevelName(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.Warn("shown")
	assert.Equal(t, "WARN", decode(t, buf)["level"])

	assert.Panics(t, func() {
		logger.New(logger.WithLevelName("loud"))
	})
	assert.NotPanics(t, func() {
		logger.New(logger.WithLevelName(""))
	})
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "fieldcheck"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=fieldcheck")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "fieldcheck"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Zero(t, buf.Len())
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "fieldcheck", entry["service"])
	})

	t.Run("later options override", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("production", ""),
			logger.WithFormat(logger.FormatText),
			logger.WithOutput(buf),
		)
		log.Info("msg")
		assert.Contains(t, buf.String(), "env=production")
		assert.NotContains(t, buf.String(), "service=")
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("through default")
	assert.Equal(t, "through default", decode(t, buf)["msg"])
}
