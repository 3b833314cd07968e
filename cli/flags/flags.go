// Package flags provides the flags shared by the selection commands.
package flags

import (
	"github.com/testsel/testsel/options"
	"github.com/urfave/cli/v2"
)

const (
	FilterFlagName  = "filter"
	FilterFlagAlias = "f"

	TestsFlagName  = "tests"
	TestsFlagAlias = "t"

	ParallelismFlagName  = "parallelism"
	ParallelismFlagAlias = "p"

	FormatFlagName = "format"
	SortFlagName   = "sort"
)

// NewFilterFlag returns the repeatable query filter flag.
func NewFilterFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    FilterFlagName,
		Aliases: []string{FilterFlagAlias},
		EnvVars: EnvVarsWithPrefix(FilterFlagName),
		Usage:   "Query filter, e.g. '/MyAssembly/MyNamespace/(Class1)|(Class2)/[Category!=Slow]'. Repeat to require every query to match.",
	}
}

// NewSelectionFlags returns the flags of commands that run a selection.
func NewSelectionFlags(opts *options.TestselOptions) []cli.Flag {
	return []cli.Flag{
		NewFilterFlag(),
		&cli.StringSliceFlag{
			Name:    TestsFlagName,
			Aliases: []string{TestsFlagAlias},
			EnvVars: EnvVarsWithPrefix(TestsFlagName),
			Usage:   "Path to a discovery manifest (.json, .yaml or .yml). Repeat to load several.",
		},
		&cli.IntFlag{
			Name:        ParallelismFlagName,
			Aliases:     []string{ParallelismFlagAlias},
			EnvVars:     EnvVarsWithPrefix(ParallelismFlagName),
			Destination: &opts.Parallelism,
			Value:       opts.Parallelism,
			Usage:       "Number of workers evaluating test cases.",
		},
	}
}

// NewFormatFlag returns the output format flag.
func NewFormatFlag(opts *options.TestselOptions) cli.Flag {
	return &cli.StringFlag{
		Name:        FormatFlagName,
		EnvVars:     EnvVarsWithPrefix(FormatFlagName),
		Destination: &opts.Format,
		Value:       opts.Format,
		Usage:       "Output format. Valid values: text, json.",
	}
}

// NewSortFlag returns the sort order flag.
func NewSortFlag(opts *options.TestselOptions) cli.Flag {
	return &cli.StringFlag{
		Name:        SortFlagName,
		EnvVars:     EnvVarsWithPrefix(SortFlagName),
		Destination: &opts.Sort,
		Value:       opts.Sort,
		Usage:       "Order of the listed tests. Valid values: input (manifest order), alpha (by assembly and name).",
	}
}
