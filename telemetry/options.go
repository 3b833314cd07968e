package telemetry

import (
	"slices"
	"strings"
)

// Options holds the telemetry settings.
type Options struct {
	// TraceExporter is the exporter type, `none` or `console`.
	TraceExporter string
	// TraceParent is an optional W3C traceparent value used as the remote parent span.
	TraceParent string
}

// TraceExporterTypes lists the supported exporter names.
var TraceExporterTypes = []string{string(noneTraceExporterType), string(consoleTraceExporterType)}

// Validate returns an error if the exporter is not supported.
func (opts *Options) Validate() error {
	if opts.TraceExporter == "" || slices.Contains(TraceExporterTypes, opts.TraceExporter) {
		return nil
	}

	return &UnsupportedExporterError{Exporter: opts.TraceExporter, Supported: strings.Join(TraceExporterTypes, ", ")}
}
