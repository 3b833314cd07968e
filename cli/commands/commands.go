// Package commands assembles the testsel commands.
package commands

import (
	"github.com/testsel/testsel/cli/commands/check"
	"github.com/testsel/testsel/cli/commands/list"
	"github.com/testsel/testsel/cli/commands/version"
	"github.com/testsel/testsel/options"
	"github.com/urfave/cli/v2"
)

// NewCommands returns the testsel commands.
func NewCommands(opts *options.TestselOptions) []*cli.Command {
	return []*cli.Command{
		list.NewCommand(opts),
		check.NewCommand(opts),
		version.NewCommand(),
	}
}
