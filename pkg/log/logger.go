package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps the logrus package to have full control over the log levels and formatting,
// and provides an easier way to clone and set parameters.
type Logger interface {
	// Clone creates a new Logger instance with a copy of the fields from the current one.
	Clone() Logger

	// SetOptions sets the given options to the instance.
	SetOptions(opts ...Option)

	// WithOptions clones and sets the given options for the new instance.
	WithOptions(opts ...Option) Logger

	// Level returns log level.
	Level() Level

	// SetLevel parses and sets log level.
	SetLevel(str string) error

	// Formatter returns the logger formatter.
	Formatter() Formatter

	// WithField adds a single field to the Logger. The field is added to the returned instance only.
	WithField(key string, value any) Logger

	// WithFields adds a struct of fields to the Logger. All it does is call `WithField` for each `Field`.
	WithFields(fields Fields) Logger

	// WithError adds an error as single field to the Logger. The error is added to the returned instance only.
	WithError(err error) Logger

	// WithContext adds a context to the Logger. The context is added to the returned instance only.
	WithContext(ctx context.Context) Logger

	Logf(level Level, format string, args ...any)
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Log(level Level, args ...any)
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type logger struct {
	*logrus.Entry
	formatter Formatter
}

// New returns a new Logger instance.
func New(opts ...Option) Logger {
	logger := &logger{
		Entry: logrus.NewEntry(logrus.New()),
	}
	logger.SetOptions(WithFormatter(NewFormatter()))
	logger.SetOptions(opts...)

	return logger
}

// Clone implements the Logger interface method.
func (logger *logger) Clone() Logger {
	return logger.clone()
}

// SetOptions implements the Logger interface method.
func (logger *logger) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

// WithOptions implements the Logger interface method.
func (logger *logger) WithOptions(opts ...Option) Logger {
	if len(opts) == 0 {
		return logger
	}

	logger = logger.clone()
	logger.SetOptions(opts...)

	return logger
}

// Formatter returns the logger formatter.
func (logger *logger) Formatter() Formatter {
	return logger.formatter
}

// Level returns log level.
func (logger *logger) Level() Level {
	return FromLogrusLevel(logger.Logger.Level)
}

// SetLevel parses and sets log level.
func (logger *logger) SetLevel(str string) error {
	level, err := ParseLevel(str)
	if err != nil {
		return err
	}

	logger.Logger.SetLevel(level.ToLogrusLevel())

	return nil
}

// WithField implements the Logger interface method.
func (logger *logger) WithField(key string, value any) Logger {
	return logger.WithFields(Fields{key: value})
}

// WithFields implements the Logger interface method.
func (logger *logger) WithFields(fields Fields) Logger {
	return logger.setEntry(logger.Entry.WithFields(logrus.Fields(fields)))
}

// WithError implements the Logger interface method.
func (logger *logger) WithError(err error) Logger {
	return logger.setEntry(logger.Entry.WithError(err))
}

// WithContext implements the Logger interface method.
func (logger *logger) WithContext(ctx context.Context) Logger {
	return logger.setEntry(logger.Entry.WithContext(ctx))
}

// Logf implements the Logger interface method.
func (logger *logger) Logf(level Level, format string, args ...any) {
	logger.Entry.Logf(level.ToLogrusLevel(), format, args...)
}

// Log implements the Logger interface method.
func (logger *logger) Log(level Level, args ...any) {
	logger.Entry.Log(level.ToLogrusLevel(), args...)
}

func (logger *logger) Trace(args ...any) { logger.Log(TraceLevel, args...) }
func (logger *logger) Debug(args ...any) { logger.Log(DebugLevel, args...) }
func (logger *logger) Info(args ...any)  { logger.Log(InfoLevel, args...) }
func (logger *logger) Warn(args ...any)  { logger.Log(WarnLevel, args...) }
func (logger *logger) Error(args ...any) { logger.Log(ErrorLevel, args...) }

func (logger *logger) Tracef(format string, args ...any) { logger.Logf(TraceLevel, format, args...) }
func (logger *logger) Debugf(format string, args ...any) { logger.Logf(DebugLevel, format, args...) }
func (logger *logger) Infof(format string, args ...any)  { logger.Logf(InfoLevel, format, args...) }
func (logger *logger) Warnf(format string, args ...any)  { logger.Logf(WarnLevel, format, args...) }
func (logger *logger) Errorf(format string, args ...any) { logger.Logf(ErrorLevel, format, args...) }

func (logger *logger) setEntry(entry *logrus.Entry) *logger {
	newLogger := *logger
	newLogger.Entry = entry

	return &newLogger
}

func (logger *logger) clone() *logger {
	newLogger := *logger

	parentLogger := newLogger.Logger

	newLogger.Logger = logrus.New()
	newLogger.Logger.SetOutput(parentLogger.Out)
	newLogger.Logger.SetLevel(parentLogger.Level)
	newLogger.Logger.SetFormatter(parentLogger.Formatter)
	newLogger.Logger.ReplaceHooks(parentLogger.Hooks)
	newLogger.Entry = newLogger.Dup()
	newLogger.Entry.Logger = newLogger.Logger

	return &newLogger
}
