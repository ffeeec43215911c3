package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myaccounts/portalkit/pkg/environment"
	"github.com/myaccounts/portalkit/pkg/logger"
)

type requestIDKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug should be filtered at the default level")

	log.Info("visible", "k", "v")
	entry := decode(t, &buf)
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "v", entry["k"])
}

func TestNew_TextFormatAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)

	log.Debug("rejected", logger.Field("email"))
	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=rejected")
	assert.Contains(t, out, "field=email")
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestWithAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithAttr(logger.Component("safeinput")))

	log.Info("hello")
	assert.Equal(t, "safeinput", decode(t, &buf)["component"])
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", requestIDKey{}),
		logger.WithContextExtractors(nil, environment.LoggerExtractor()),
	)

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-42")
	ctx = environment.WithContext(ctx, environment.Staging)
	log.InfoContext(ctx, "with context")

	entry := decode(t, &buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "staging", entry["env"])

	buf.Reset()
	log.InfoContext(context.Background(), "without context")
	entry = decode(t, &buf)
	assert.NotContains(t, entry, "request_id")
	assert.NotContains(t, entry, "env")
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production is json at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithEnvironment(environment.Production, "accountsctl"),
			logger.WithOutput(&buf),
		)
		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		ctx := environment.WithContext(context.Background(), environment.Production)
		log.InfoContext(ctx, "shown")
		entry := decode(t, &buf)
		assert.Equal(t, "accountsctl", entry["service"])
		assert.Equal(t, "production", entry["env"])

		buf.Reset()
		log.Info("no context")
		entry = decode(t, &buf)
		assert.Equal(t, "accountsctl", entry["service"])
		assert.NotContains(t, entry, "env")
	})

	t.Run("development is text at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithEnvironment("dev", ""),
			logger.WithOutput(&buf),
		)
		log.DebugContext(environment.WithContext(context.Background(), environment.Development), "shown")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "env=development")
		assert.NotContains(t, out, "service=")
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithAttr(logger.Component("test")))
	logger.SetAsDefault(log)

	slog.Info("default")
	entry := decode(t, &buf)
	assert.Equal(t, "default", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, logger.ErrInvalidOption)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)

	f, err = logger.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("logfmt")
	assert.ErrorIs(t, err, logger.ErrInvalidOption)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { log.Error("dropped") })
}

func TestDecorator_WithGroupKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", requestIDKey{}),
	).WithGroup("form").With("name", "signup")

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-7")
	log.InfoContext(ctx, "grouped")

	out := buf.String()
	assert.True(t, strings.Contains(out, `"form":{"name":"signup","request_id":"req-7"}`), out)
}
