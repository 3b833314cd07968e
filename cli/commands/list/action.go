package list

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mgutz/ansi"
	"github.com/testsel/testsel/cli/commands/common"
	"github.com/testsel/testsel/internal/errors"
	"github.com/testsel/testsel/internal/queryfilter"
	"github.com/testsel/testsel/internal/selection"
	"github.com/testsel/testsel/internal/testcase"
	"github.com/testsel/testsel/options"
)

// Run runs the list command.
func Run(ctx context.Context, opts *options.TestselOptions) error {
	filter, err := common.ParseFilter(ctx, opts)
	if err != nil {
		return err
	}

	cases, err := common.LoadTestCases(ctx, opts)
	if err != nil {
		return err
	}

	result, err := selection.Select(ctx, opts.Logger, filter, cases, opts.Parallelism)
	if err != nil {
		return err
	}

	if queryfilter.UsesTraits(filter) && !hasTraits(cases) {
		opts.Logger.Warnf("The query filters match on traits, but no loaded test declares any traits")
	}

	opts.Logger.Infof("Selected %d of %d tests", result.Matched, result.Total)

	if opts.Sort == options.SortAlpha {
		result.Selected = result.Sorted()
	}

	switch opts.Format {
	case options.FormatJSON:
		return outputJSON(opts, result)
	default:
		return outputText(opts, result, NewColorizer(common.UseColor(opts)))
	}
}

func hasTraits(cases testcase.TestCases) bool {
	for _, tc := range cases {
		if len(tc.TraitValues) > 0 {
			return true
		}
	}

	return false
}

// outputJSON outputs the selection result in JSON format.
func outputJSON(opts *options.TestselOptions, result *selection.Result) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.New(err)
	}

	if _, err := opts.Writer.Write(append(jsonBytes, '\n')); err != nil {
		return errors.New(err)
	}

	return nil
}

// outputText prints one selected test per line, prefixed with its assembly.
func outputText(opts *options.TestselOptions, result *selection.Result, colorizer *Colorizer) error {
	for _, tc := range result.Selected {
		if _, err := fmt.Fprintln(opts.Writer, colorizer.Colorize(tc)); err != nil {
			return errors.New(err)
		}
	}

	return nil
}

// Colorizer is a colorizer for the selected tests.
type Colorizer struct {
	assemblyColorizer func(string) string
	classColorizer    func(string) string
	methodColorizer   func(string) string
}

// NewColorizer creates a new Colorizer.
func NewColorizer(shouldColor bool) *Colorizer {
	if !shouldColor {
		return &Colorizer{
			assemblyColorizer: func(s string) string { return s },
			classColorizer:    func(s string) string { return s },
			methodColorizer:   func(s string) string { return s },
		}
	}

	return &Colorizer{
		assemblyColorizer: ansi.ColorFunc("white+d"),
		classColorizer:    ansi.ColorFunc("blue+bh"),
		methodColorizer:   ansi.ColorFunc("green+bh"),
	}
}

// Colorize renders `assembly namespace.class.method`.
func (c *Colorizer) Colorize(tc *testcase.TestCase) string {
	class := tc.Class
	if tc.Namespace != "" {
		class = tc.Namespace + "." + class
	}

	return c.assemblyColorizer(tc.Assembly) + " " + c.classColorizer(class) + "." + c.methodColorizer(tc.Method)
}
