// Package check provides the `testsel check` command, which validates query filters without running a selection.
package check

import (
	"github.com/testsel/testsel/cli/commands/common"
	"github.com/testsel/testsel/cli/flags"
	"github.com/testsel/testsel/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "check"
)

func NewCommand(opts *options.TestselOptions) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Validate query filters and explain the errors.",
		ArgsUsage: "[query...]",
		Flags:     []cli.Flag{flags.NewFilterFlag()},
		Before: func(ctx *cli.Context) error {
			return common.InitialSetup(ctx, opts)
		},
		Action: func(ctx *cli.Context) error {
			opts.Filters = append(opts.Filters, ctx.Args().Slice()...)

			return Run(ctx.Context, opts)
		},
	}
}
