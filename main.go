package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/testsel/testsel/cli"
	"github.com/testsel/testsel/internal/errors"
	"github.com/testsel/testsel/options"
	"github.com/testsel/testsel/pkg/log"
)

// The main entrypoint for testsel
func main() {
	opts := options.NewTestselOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = log.ContextWithLogger(ctx, opts.Logger)

	err := app.RunContext(ctx, os.Args)

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(1)
	}
}
