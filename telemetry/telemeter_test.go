package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testsel/testsel/telemetry"
)

func TestNewTraceExporter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		exporter    string
		expectNil   bool
		expectError bool
	}{
		{name: "default", exporter: "", expectNil: true},
		{name: "none", exporter: "none", expectNil: true},
		{name: "console", exporter: "console"},
		{name: "unsupported", exporter: "otlpGrpc", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			exporter, err := telemetry.NewTraceExporter(t.Context(), new(bytes.Buffer), &telemetry.Options{TraceExporter: tc.exporter})
			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			if tc.expectNil {
				assert.Nil(t, exporter)
			} else {
				assert.NotNil(t, exporter)
			}
		})
	}
}

func TestCollectWithoutTelemeter(t *testing.T) {
	t.Parallel()

	called := false
	err := telemetry.TelemeterFromContext(context.Background()).Collect(t.Context(), "op", nil, func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestCollectConsoleExporter(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	tlm, err := telemetry.NewTelemeter(t.Context(), "testsel", "test", buf, &telemetry.Options{TraceExporter: "console"})
	require.NoError(t, err)

	ctx := telemetry.ContextWithTelemeter(t.Context(), tlm)
	expectedErr := errors.New("boom")

	err = telemetry.TelemeterFromContext(ctx).Collect(ctx, "query_parse", map[string]any{"query": "/asm"}, func(ctx context.Context) error {
		return expectedErr
	})
	require.ErrorIs(t, err, expectedErr)

	require.NoError(t, tlm.Shutdown(t.Context()))
	assert.Contains(t, buf.String(), "query_parse")
	assert.Contains(t, buf.String(), "/asm")
}

func TestInvalidTraceParent(t *testing.T) {
	t.Parallel()

	_, err := telemetry.NewTracer(t.Context(), "testsel", "test", new(bytes.Buffer), &telemetry.Options{
		TraceExporter: "console",
		TraceParent:   "not-a-traceparent",
	})

	var traceParentErr *telemetry.InvalidTraceParentError
	require.ErrorAs(t, err, &traceParentErr)
}
