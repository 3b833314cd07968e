// Package log provides a leveled logger with structured logging support.
package log

var (
	// std is the default logger.
	std = New()
)

// Default returns the standard logger used by the package-level output functions.
// It is highly recommended not to use it in tests to avoid conflicts.
func Default() Logger {
	return std
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

// Infof logs a message at level Info on the standard logger.
func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, args ...any) {
	std.Warnf(format, args...)
}

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}

// WithField allocates a new entry and adds a field to it.
func WithField(key string, value any) Logger {
	return std.WithField(key, value)
}

// WithOptions returns a new logger with the given options.
func WithOptions(opts ...Option) Logger {
	return std.WithOptions(opts...)
}
