// Package common holds the setup shared by the commands that select tests.
package common

import (
	"context"
	"os"

	"github.com/testsel/testsel/cli/flags"
	"github.com/testsel/testsel/internal/config"
	"github.com/testsel/testsel/internal/errors"
	"github.com/testsel/testsel/internal/queryfilter"
	"github.com/testsel/testsel/internal/testcase"
	"github.com/testsel/testsel/options"
	"github.com/testsel/testsel/pkg/log"
	"github.com/urfave/cli/v2"
)

// InitialSetup merges the command line with the project config file and validates the result.
// Values given on the command line or in the environment take precedence over the config file.
func InitialSetup(cliCtx *cli.Context, opts *options.TestselOptions) error {
	if opts.WorkingDir == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return errors.New(err)
		}

		opts.WorkingDir = currentDir
	}

	if cliCtx.IsSet(flags.FilterFlagName) {
		opts.Filters = cliCtx.StringSlice(flags.FilterFlagName)
	}

	if cliCtx.IsSet(flags.TestsFlagName) {
		opts.Tests = cliCtx.StringSlice(flags.TestsFlagName)
	}

	cfg, err := loadConfig(cliCtx.Context, opts)
	if err != nil {
		return err
	}

	if err := opts.ApplyConfig(cfg, cliCtx.IsSet); err != nil {
		return err
	}

	return opts.Validate()
}

func loadConfig(ctx context.Context, opts *options.TestselOptions) (*config.Config, error) {
	path := opts.ConfigPath

	if path == "" {
		found, err := config.FindConfigFile(ctx, opts.Logger, opts.WorkingDir)
		if err != nil {
			return nil, err
		}

		if found == "" {
			return nil, nil
		}

		path = found
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	opts.ConfigPath = path
	opts.Logger.Debugf("Loaded config file %s", path)

	return cfg, nil
}

// ParseFilter compiles every query of opts and combines them into one filter.
func ParseFilter(ctx context.Context, opts *options.TestselOptions) (queryfilter.Filter, error) {
	var filter queryfilter.Filter

	err := queryfilter.TraceParse(ctx, opts.Filters, func(_ context.Context) error {
		filters, err := queryfilter.ParseQueries(opts.Filters)
		if err != nil {
			return err
		}

		filter = filters.Combine()

		return nil
	})
	if err != nil {
		return nil, err
	}

	opts.Logger.Debugf("Compiled filter %s", filter)

	return filter, nil
}

// LoadTestCases reads the discovery manifests of opts.
func LoadTestCases(ctx context.Context, opts *options.TestselOptions) (testcase.TestCases, error) {
	if len(opts.Tests) == 0 {
		return nil, errors.New(NewNoManifestsError())
	}

	cases, err := testcase.LoadManifests(ctx, opts.Tests)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debugf("Loaded %d tests from %d manifests", len(cases), len(opts.Tests))

	return cases, nil
}

// UseColor reports whether the command output can be colored.
func UseColor(opts *options.TestselOptions) bool {
	return !opts.NoColor && log.IsTerminal(opts.Writer)
}
