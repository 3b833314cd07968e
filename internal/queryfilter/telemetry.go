package queryfilter

import (
	"context"

	"github.com/testsel/testsel/telemetry"
)

// Telemetry operation names for query filter operations.
const (
	TelemetryOpQueryParse  = "query_filter_parse"
	TelemetryOpQuerySelect = "query_filter_select"
)

// Telemetry attribute keys for query filter operations.
const (
	AttrQuery         = "query.text"
	AttrQueryCount    = "query.count"
	AttrTestCaseCount = "testcase.count"
)

// TraceParse wraps query parsing with telemetry.
func TraceParse(ctx context.Context, queries []string, fn func(ctx context.Context) error) error {
	attrs := map[string]any{
		AttrQueryCount: len(queries),
	}

	if len(queries) == 1 {
		attrs[AttrQuery] = queries[0]
	}

	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpQueryParse, attrs, fn)
}

// TraceSelect wraps test selection with telemetry.
func TraceSelect(ctx context.Context, filter Filter, testCaseCount int, fn func(ctx context.Context) error) error {
	return telemetry.TelemeterFromContext(ctx).Collect(ctx, TelemetryOpQuerySelect, map[string]any{
		AttrQuery:         filter.String(),
		AttrTestCaseCount: testCaseCount,
	}, fn)
}
