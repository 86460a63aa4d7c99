package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))

	//nolint:staticcheck // nil guard
	assert.Equal(t, defaultLogger, FromContext(nil))
	assert.Equal(t, defaultLogger, FromContext(context.Background()))
	assert.Equal(t, custom, FromContext(WithContext(context.Background(), custom)))
}

func TestFromContextOr(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	stored := slog.New(slog.NewJSONHandler(io.Discard, nil))

	//nolint:staticcheck // nil guard
	assert.Equal(t, fallback, FromContextOr(nil, fallback))
	assert.Equal(t, fallback, FromContextOr(context.Background(), fallback))
	assert.Equal(t, stored, FromContextOr(WithContext(context.Background(), stored), fallback))
}

func TestContextIDs(t *testing.T) {
	tests := []struct {
		name string
		with func(context.Context, string) context.Context
		key  string
	}{
		{"request id", WithRequestID, "request_id"},
		{"trace id", WithTraceID, "trace_id"},
		{"correlation id", WithCorrelationID, "correlation_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
			ctx = tt.with(ctx, "id-42")

			FromContext(ctx).InfoContext(ctx, "quote requested")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "id-42", entry[tt.key])
		})
	}
}

func TestContextIDs_Accumulate(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithTraceID(ctx, "trace-2")
	ctx = WithCorrelationID(ctx, "corr-3")

	FromContext(ctx).Info("batch quoted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "trace-2", entry["trace_id"])
	assert.Equal(t, "corr-3", entry["correlation_id"])
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))
	assert.Equal(t, custom, slog.Default())
}
