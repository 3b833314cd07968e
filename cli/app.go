// Package cli builds the testsel command line application.
package cli

import (
	"github.com/testsel/testsel/cli/commands"
	"github.com/testsel/testsel/cli/commands/version"
	"github.com/testsel/testsel/cli/flags/global"
	"github.com/testsel/testsel/internal/errors"
	"github.com/testsel/testsel/options"
	"github.com/testsel/testsel/pkg/log"
	"github.com/testsel/testsel/telemetry"
	"github.com/urfave/cli/v2"
)

const AppName = "testsel"

// NewApp creates the testsel CLI App.
func NewApp(opts *options.TestselOptions) *cli.App {
	app := &cli.App{
		Name:  AppName,
		Usage: "Select tests from discovery manifests with query filters.",
		Description: `A query filter is a path of up to four segments, assembly/namespace/class/method,
each holding a pattern or a logical expression of parenthesised patterns:

  /MyAssembly/MyNamespace/(Class1)|(Class2)/!(Slow*)

Trait blocks select on trait name and value and may appear in any segment:

  /*/*/*/*/[Category=Unit]/[Owner!=ci]`,
		Version:                   version.Version,
		Writer:                    opts.Writer,
		ErrWriter:                 opts.ErrWriter,
		Flags:                     global.NewFlags(opts),
		Commands:                  commands.NewCommands(opts),
		DisableSliceFlagSeparator: true,
		Before:                    beforeRunningCommand(opts),
		After:                     afterRunningCommand,
		ExitErrHandler:            func(*cli.Context, error) {},
	}

	return app
}

func beforeRunningCommand(opts *options.TestselOptions) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if err := setupLogger(ctx, opts); err != nil {
			return err
		}

		if err := opts.Telemetry.Validate(); err != nil {
			return errors.New(err)
		}

		tlm, err := telemetry.NewTelemeter(ctx.Context, AppName, version.Version, opts.ErrWriter, opts.Telemetry)
		if err != nil {
			return err
		}

		childCtx := telemetry.ContextWithTelemeter(ctx.Context, tlm)
		childCtx = log.ContextWithLogger(childCtx, opts.Logger)
		ctx.Context = options.ContextWithOptions(childCtx, opts)

		return nil
	}
}

func afterRunningCommand(ctx *cli.Context) error {
	return telemetry.TelemeterFromContext(ctx.Context).Shutdown(ctx.Context)
}

func setupLogger(ctx *cli.Context, opts *options.TestselOptions) error {
	if err := opts.SetLogLevel(opts.LogLevelStr); err != nil {
		return err
	}

	formatter, err := log.NewFormatterByName(ctx.String(global.LogFormatFlagName))
	if err != nil {
		return errors.New(err)
	}

	if opts.NoColor || !log.IsTerminal(opts.ErrWriter) {
		formatter.DisableColors()
	}

	opts.Logger.SetOptions(log.WithOutput(opts.ErrWriter), log.WithFormatter(formatter))

	return nil
}
