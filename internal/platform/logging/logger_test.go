package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerKeyValueFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.InfoContext(context.Background(), "slot assigned", "slot", "ST", "player_id", 9, "error", errors.New("boom"), "dangling")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "slot assigned", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "ST", fields["slot"])
	assert.EqualValues(t, 9, fields["player_id"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields, "dangling")
}

func TestLoggerAddsTraceFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "draft operation rejected")
	logger.DebugContext(ctx, "filtered by level")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, traceID.String(), fields["trace_id"])
	assert.Equal(t, spanID.String(), fields["span_id"])
}

func TestNewJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).Named("draft").With("session_id", "abc")

	logger.Info("draft reset", "phase", "awaiting_formation")
	logger.DebugContext(context.Background(), "hidden")

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "draft", line["logger"])
	assert.Equal(t, "draft reset", line["msg"])
	assert.Equal(t, "abc", line["session_id"])
	assert.Equal(t, "awaiting_formation", line["phase"])
}

func TestNilLoggerUsesDefault(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	previous := Default()
	SetDefault(FromZap(zap.New(core)))
	t.Cleanup(func() { SetDefault(previous) })

	var logger *Logger
	logger.Error("catalog unavailable")

	require.Equal(t, 1, logs.Len())
	assert.NoError(t, logger.Sync())
}
