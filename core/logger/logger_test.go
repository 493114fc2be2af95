package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/core/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("production writes json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("demo"), logger.WithOutput(&buf))

		log.Info("hello", logger.Component("test"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "demo", rec["service"])
		assert.Equal(t, "production", rec["env"])
		assert.Equal(t, "test", rec["component"])
	})

	t.Run("level filters", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithOutput(&buf))

		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("config", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithConfig(logger.Config{Level: "debug", Format: "json"}), logger.WithOutput(&buf))

		log.Debug("dbg")
		assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})

	t.Run("context values", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextValue("request_id", ctxKey{}),
		).With("k", "v")

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "handled")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "req-1", rec["request_id"])
		assert.Equal(t, "v", rec["k"])
	})

	t.Run("explicit attr wins over context value", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithContextValue("request_id", ctxKey{}),
		)

		ctx := context.WithValue(context.Background(), ctxKey{}, "from-ctx")
		log.InfoContext(ctx, "handled", logger.RequestID("explicit"))

		assert.Equal(t, 1, strings.Count(buf.String(), "request_id="))
		assert.Contains(t, buf.String(), "request_id=explicit")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("nonsense"))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	grouped := logger.Errors(nil, errors.New("b"))
	assert.Equal(t, "errors", grouped.Key)
	require.Len(t, grouped.Value.Group(), 1)
	assert.Equal(t, "1", grouped.Value.Group()[0].Key)

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.User("").Equal(slog.Attr{}))
	assert.Equal(t, "Admin", logger.User("Admin").Value.String())
	assert.Equal(t, 2*time.Second, logger.Latency(2*time.Second).Value.Duration())
}
