// Package telemetry provides a way to collect traces from function execution.
package telemetry

import (
	"context"
	"io"

	"github.com/testsel/testsel/internal/errors"
)

// Telemeter collects telemetry from function execution.
type Telemeter struct {
	*Tracer
}

// NewTelemeter initializes the telemetry collector.
func NewTelemeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Telemeter, error) {
	tracer, err := NewTracer(ctx, appName, appVersion, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	return &Telemeter{Tracer: tracer}, nil
}

// Shutdown flushes and stops the trace provider.
func (tlm *Telemeter) Shutdown(ctx context.Context) error {
	if tlm.Tracer != nil && tlm.Tracer.provider != nil {
		if err := tlm.Tracer.provider.Shutdown(ctx); err != nil {
			return errors.New(err)
		}

		tlm.Tracer.provider = nil
	}

	return nil
}

// Collect runs fn inside a span named name with the given attributes.
func (tlm *Telemeter) Collect(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	return tlm.Trace(ctx, name, attrs, fn)
}
