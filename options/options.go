// Package options provides a set of options that configure the behavior of the testsel program.
package options

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/testsel/testsel/internal/config"
	"github.com/testsel/testsel/internal/errors"
	"github.com/testsel/testsel/pkg/log"
	"github.com/testsel/testsel/telemetry"
)

const ContextKey ctxKey = iota

const (
	// FormatText prints one test per line.
	FormatText = "text"

	// FormatJSON prints the selection result as a JSON document.
	FormatJSON = "json"

	// SortInput keeps the selected tests in manifest order.
	SortInput = "input"

	// SortAlpha orders the selected tests by assembly and fully qualified name.
	SortAlpha = "alpha"

	defaultLogLevel = log.InfoLevel
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON}

// SortOrders lists the supported sort orders.
var SortOrders = []string{SortInput, SortAlpha}

type ctxKey byte

// TestselOptions represents options that configure the behavior of the testsel program.
type TestselOptions struct {
	// Writer receives the command output.
	Writer io.Writer
	// ErrWriter receives log output.
	ErrWriter io.Writer

	Logger log.Logger

	// Telemetry are the tracing options.
	Telemetry *telemetry.Options

	// WorkingDir is where the project config file lookup starts.
	WorkingDir string
	// ConfigPath is the project config file. When empty it is searched for from WorkingDir.
	ConfigPath string
	// Format is the output format of the list command.
	Format string
	// Sort is the order of the tests printed by the list command.
	Sort string
	// LogLevelStr is the raw value of --log-level.
	LogLevelStr string

	// Filters are the query filters, AND-ed together.
	Filters []string
	// Tests are the discovery manifest paths.
	Tests []string

	// Parallelism is the number of workers evaluating test cases.
	Parallelism int

	// NoColor disables colored output.
	NoColor bool
}

// NewTestselOptions returns the default options writing to stdout and stderr.
func NewTestselOptions() *TestselOptions {
	return NewTestselOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewTestselOptionsWithWriters returns the default options writing to the given writers.
func NewTestselOptionsWithWriters(stdout, stderr io.Writer) *TestselOptions {
	return &TestselOptions{
		Writer:      stdout,
		ErrWriter:   stderr,
		Logger:      log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel)),
		Telemetry:   &telemetry.Options{},
		Format:      FormatText,
		Sort:        SortInput,
		LogLevelStr: defaultLogLevel.String(),
		Parallelism: runtime.NumCPU(),
	}
}

// Clone returns a copy of the options with its own slices.
func (opts *TestselOptions) Clone() *TestselOptions {
	newOpts := *opts
	newOpts.Filters = append([]string(nil), opts.Filters...)
	newOpts.Tests = append([]string(nil), opts.Tests...)

	if opts.Telemetry != nil {
		telemetryOpts := *opts.Telemetry
		newOpts.Telemetry = &telemetryOpts
	}

	return &newOpts
}

// ApplyConfig copies the values of the project config file into options that were not set explicitly.
// isSet reports whether a named option was given on the command line or in the environment.
func (opts *TestselOptions) ApplyConfig(cfg *config.Config, isSet func(name string) bool) error {
	if cfg == nil {
		return nil
	}

	if len(cfg.Filters) > 0 && !isSet("filter") {
		opts.Filters = cfg.Filters
	}

	if len(cfg.Tests) > 0 && !isSet("tests") {
		paths, err := cfg.ManifestPaths()
		if err != nil {
			return err
		}

		opts.Tests = paths
	}

	if cfg.Parallelism != nil && !isSet("parallelism") {
		opts.Parallelism = *cfg.Parallelism
	}

	if cfg.LogLevel != nil && !isSet("log-level") {
		if err := opts.SetLogLevel(*cfg.LogLevel); err != nil {
			return err
		}
	}

	return nil
}

// SetLogLevel parses the level name and applies it to the logger.
func (opts *TestselOptions) SetLogLevel(str string) error {
	if err := opts.Logger.SetLevel(str); err != nil {
		return errors.New(err)
	}

	opts.LogLevelStr = str

	return nil
}

// Validate returns an error for unsupported option values.
func (opts *TestselOptions) Validate() error {
	switch opts.Format {
	case FormatText, FormatJSON:
	default:
		return errors.New(NewUnsupportedFormatError(opts.Format))
	}

	switch opts.Sort {
	case SortInput, SortAlpha:
	default:
		return errors.New(NewUnsupportedSortError(opts.Sort))
	}

	if opts.Parallelism < 0 {
		return errors.Errorf("parallelism must not be negative, got %d", opts.Parallelism)
	}

	return opts.Telemetry.Validate()
}

// ContextWithOptions returns a new context carrying opts.
func ContextWithOptions(ctx context.Context, opts *TestselOptions) context.Context {
	return context.WithValue(ctx, ContextKey, opts)
}

// OptionsFromContext returns the options stored in ctx, or nil.
func OptionsFromContext(ctx context.Context) *TestselOptions {
	if opts, ok := ctx.Value(ContextKey).(*TestselOptions); ok {
		return opts
	}

	return nil
}
