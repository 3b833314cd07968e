package log

import (
	"io"
)

// Option is a function to set options for the logger.
type Option func(logger *logger)

// WithLevel sets the log level.
func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the writer for log entries.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)
	}
}

// WithFormatter sets the formatter used to render log entries.
func WithFormatter(formatter Formatter) Option {
	return func(logger *logger) {
		logger.formatter = formatter
		logger.Logger.SetFormatter(&fromLogrusFormatter{Formatter: formatter})
	}
}
