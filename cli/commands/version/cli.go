// Package version represents the version CLI command that works the same as the `--version` flag.
package version

import (
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "version"
)

// Version is set at build time with `-ldflags "-X github.com/testsel/testsel/cli/commands/version.Version=..."`.
var Version = "dev"

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   CommandName,
		Usage:  "Show testsel version.",
		Action: Action,
	}
}

func Action(ctx *cli.Context) error {
	cli.ShowVersion(ctx)

	return nil
}
