// Package list provides the ability to print the tests selected by the query filters
// via the `testsel list` command.
package list

import (
	"github.com/testsel/testsel/cli/commands/common"
	"github.com/testsel/testsel/cli/flags"
	"github.com/testsel/testsel/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName  = "list"
	CommandAlias = "ls"
)

func NewCommand(opts *options.TestselOptions) *cli.Command {
	return &cli.Command{
		Name:    CommandName,
		Aliases: []string{CommandAlias},
		Usage:   "List the tests selected by the query filters.",
		Description: `Loads the discovery manifests, compiles every --filter query and prints the tests
that match all of them.

Example:
  testsel list --tests tests.json --filter '/MyAssembly/*.Integration/[Category!=Slow]'`,
		Flags: append(flags.NewSelectionFlags(opts), flags.NewFormatFlag(opts), flags.NewSortFlag(opts)),
		Before: func(ctx *cli.Context) error {
			return common.InitialSetup(ctx, opts)
		},
		Action: func(ctx *cli.Context) error {
			return Run(ctx.Context, opts)
		},
	}
}
