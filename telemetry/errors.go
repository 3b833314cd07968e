package telemetry

import "fmt"

// UnsupportedExporterError is returned for an unknown trace exporter name.
type UnsupportedExporterError struct {
	Exporter  string
	Supported string
}

func (err *UnsupportedExporterError) Error() string {
	return fmt.Sprintf("unsupported trace exporter %q, supported exporters: %s", err.Exporter, err.Supported)
}

// InvalidTraceParentError is returned when the traceparent value cannot be parsed.
type InvalidTraceParentError struct {
	Value string
}

func (err *InvalidTraceParentError) Error() string {
	return "invalid TRACEPARENT value " + err.Value
}
