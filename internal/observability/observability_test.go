package observability_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/PabloGalante/inner-mirror/internal/observability"
)

func TestLoggerFromContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

	ctx := observability.WithRequestID(context.Background(), "req-42")
	observability.LoggerFromContext(ctx).Info("hello")
	observability.LoggerFromContext(context.Background()).Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestMetricsCounters(t *testing.T) {
	m := observability.NewMetrics()
	m.Turns.WithLabelValues("reflection").Inc()
	m.ToolCalls.WithLabelValues("search_video", "success").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Turns.WithLabelValues("reflection")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("search_video", "success")))
}
